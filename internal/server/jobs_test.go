package server

import (
	"testing"
)

func TestJobStoreCreate(t *testing.T) {
	store := NewJobStore()

	job := store.Create(ExpandJobRequest{Text: "John 3:16-18", Language: "en"})
	if job.ID == "" {
		t.Fatal("expected job ID to be set")
	}
	if job.Status != JobStatusPending {
		t.Errorf("expected pending status, got %s", job.Status)
	}
	if job.CreatedAt == "" || job.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}
	if job.Request.Text != "John 3:16-18" {
		t.Errorf("unexpected request: %+v", job.Request)
	}

	got, exists := store.Get(job.ID)
	if !exists || got.ID != job.ID {
		t.Error("expected to retrieve created job")
	}
}

func TestJobStoreUpdate(t *testing.T) {
	store := NewJobStore()
	job := store.Create(ExpandJobRequest{Text: "Psalms 23"})

	if err := store.Update(job.ID, JobStatusRunning, 40, nil, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := store.Get(job.ID)
	if got.Status != JobStatusRunning || got.Progress != 40 {
		t.Errorf("unexpected state: %s %d", got.Status, got.Progress)
	}
	if got.CompletedAt != "" {
		t.Error("running job must not have a completion timestamp")
	}

	result := &ExpandSummary{OSIS: "Ps.23", Granularity: "chapter", Total: 1, First: "Ps.23", Last: "Ps.23"}
	if err := store.Update(job.ID, JobStatusCompleted, 100, result, ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = store.Get(job.ID)
	if got.Status != JobStatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if got.Result == nil || got.Result.Total != 1 {
		t.Errorf("unexpected result: %+v", got.Result)
	}
	if got.CompletedAt == "" {
		t.Error("expected completion timestamp")
	}
}

func TestJobStoreUpdateNotFound(t *testing.T) {
	store := NewJobStore()
	if err := store.Update("missing", JobStatusRunning, 0, nil, ""); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestJobStoreCancel(t *testing.T) {
	store := NewJobStore()
	job := store.Create(ExpandJobRequest{Text: "Genesis-Revelation"})

	if err := store.Cancel(job.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	got, _ := store.Get(job.ID)
	if got.Status != JobStatusCancelled {
		t.Errorf("expected cancelled, got %s", got.Status)
	}
	if got.CompletedAt == "" {
		t.Error("expected completion timestamp on cancelled job")
	}

	if err := store.Cancel(job.ID); err == nil {
		t.Error("expected error cancelling a finished job")
	}
}

func TestJobStoreCancelNotFound(t *testing.T) {
	store := NewJobStore()
	if err := store.Cancel("missing"); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestJobStoreList(t *testing.T) {
	store := NewJobStore()
	store.Create(ExpandJobRequest{Text: "John 3:16"})
	store.Create(ExpandJobRequest{Text: "Psalms 23"})

	if got := len(store.List()); got != 2 {
		t.Errorf("expected 2 jobs, got %d", got)
	}
}

func TestProgressPct(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 100, 0},
		{50, 100, 50},
		{176, 176, 100},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := progressPct(tt.done, tt.total); got != tt.want {
			t.Errorf("progressPct(%d, %d) = %d, want %d", tt.done, tt.total, got, tt.want)
		}
	}
}
