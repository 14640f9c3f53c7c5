package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FocuswithJustin/Versicle/core/reftext"
	"github.com/FocuswithJustin/Versicle/internal/logging"
	"github.com/google/uuid"
)

// JobStatus represents the current state of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// ExpandJobRequest describes an asynchronous expansion request.
type ExpandJobRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Verses   bool   `json:"verses,omitempty"`
}

// ExpandSummary is the result of a completed expansion job.
type ExpandSummary struct {
	OSIS        string `json:"osis"`
	Granularity string `json:"granularity"`
	Total       int    `json:"total"`
	First       string `json:"first"`
	Last        string `json:"last"`
}

// Job represents an asynchronous expansion job.
type Job struct {
	ID          string             `json:"id"`
	Status      JobStatus          `json:"status"`
	Progress    int                `json:"progress"` // 0-100
	Result      *ExpandSummary     `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	CompletedAt string             `json:"completed_at,omitempty"`
	Request     ExpandJobRequest   `json:"request"`
	ctx         context.Context    `json:"-"`
	cancel      context.CancelFunc `json:"-"`
}

// JobStore manages expansion jobs in memory.
type JobStore struct {
	jobs map[string]*Job
	mu   sync.RWMutex
}

// NewJobStore creates a new job store.
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
	}
}

var globalJobStore = NewJobStore()

// Create creates a new job and returns it.
func (s *JobStore) Create(req ExpandJobRequest) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	now := time.Now().UTC().Format(time.RFC3339)

	job := &Job{
		ID:        uuid.New().String(),
		Status:    JobStatusPending,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
		Request:   req,
		ctx:       ctx,
		cancel:    cancel,
	}

	s.jobs[job.ID] = job
	return job
}

// Get retrieves a job by ID.
func (s *JobStore) Get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	return job, exists
}

// Update updates a job's status and progress.
func (s *JobStore) Update(id string, status JobStatus, progress int, result *ExpandSummary, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}

	job.Status = status
	job.Progress = progress
	job.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if result != nil {
		job.Result = result
	}

	if errMsg != "" {
		job.Error = errMsg
	}

	if status == JobStatusCompleted || status == JobStatusFailed || status == JobStatusCancelled {
		job.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return nil
}

// List returns all jobs.
func (s *JobStore) List() []*Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// Cancel cancels a pending or running job.
func (s *JobStore) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}

	if job.Status != JobStatusPending && job.Status != JobStatusRunning {
		return fmt.Errorf("job cannot be cancelled (status: %s)", job.Status)
	}

	if job.cancel != nil {
		job.cancel()
	}

	job.Status = JobStatusCancelled
	job.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	job.CompletedAt = job.UpdatedAt

	return nil
}

// expandChunk is the number of points enumerated between progress updates.
const expandChunk = 1000

// runExpandJob enumerates the points of a reference in a goroutine,
// broadcasting progress over the WebSocket hub as it goes.
func runExpandJob(job *Job) {
	go func() {
		globalJobStore.Update(job.ID, JobStatusRunning, 0, nil, "")
		logging.JobEvent(job.ID, "running", "text", job.Request.Text)

		lang := job.Request.Language
		if lang == "" {
			lang = "en"
		}

		r, err := reftext.Parse(job.Request.Text, lang)
		if err != nil {
			globalJobStore.Update(job.ID, JobStatusFailed, 0, nil, err.Error())
			BroadcastError("expand", err.Error())
			logging.JobEvent(job.ID, "failed", "error", err.Error())
			return
		}
		if job.Request.Verses {
			r = r.VerseRange()
		}

		total := r.Count()
		result := &ExpandSummary{
			OSIS:        r.String(),
			Granularity: r.Granularity().String(),
			Total:       total,
		}

		done := 0
		for p := range r.Points() {
			select {
			case <-job.ctx.Done():
				globalJobStore.Update(job.ID, JobStatusCancelled, progressPct(done, total), nil, "job cancelled")
				BroadcastError("expand", "job cancelled")
				logging.JobEvent(job.ID, "cancelled", "done", done)
				return
			default:
			}

			if done == 0 {
				result.First = p.String()
			}
			result.Last = p.String()
			done++

			if done%expandChunk == 0 {
				pct := progressPct(done, total)
				globalJobStore.Update(job.ID, JobStatusRunning, pct, nil, "")
				BroadcastProgress("expand", "enumerate", fmt.Sprintf("%d of %d points", done, total), pct)
			}
		}

		globalJobStore.Update(job.ID, JobStatusCompleted, 100, result, "")
		BroadcastComplete("expand", fmt.Sprintf("expanded %s into %d points", result.OSIS, total),
			map[string]interface{}{"job_id": job.ID, "total": total})
		logging.JobEvent(job.ID, "completed", "total", total)
	}()
}

func progressPct(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}
