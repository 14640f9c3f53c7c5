package canon

import (
	"errors"
	"testing"

	verrors "github.com/FocuswithJustin/Versicle/core/errors"
)

func TestChapterCount(t *testing.T) {
	tests := []struct {
		book Book
		want int
	}{
		{Genesis, 50},
		{Psalms, 150},
		{Obadiah, 1},
		{John, 21},
		{Jude, 1},
		{Revelation, 22},
	}
	for _, tt := range tests {
		got, err := ChapterCount(tt.book)
		if err != nil {
			t.Fatalf("ChapterCount(%v) error: %v", tt.book, err)
		}
		if got != tt.want {
			t.Errorf("ChapterCount(%v) = %d, want %d", tt.book, got, tt.want)
		}
	}

	for _, b := range []Book{0, 67, -1} {
		if _, err := ChapterCount(b); !errors.Is(err, verrors.ErrUnknownBook) {
			t.Errorf("ChapterCount(%v) error = %v, want ErrUnknownBook", b, err)
		}
	}
}

func TestVerseCount(t *testing.T) {
	tests := []struct {
		book    Book
		chapter int
		want    int
	}{
		{Genesis, 1, 31},
		{Psalms, 119, 176},
		{John, 3, 36},
		{Jude, 1, 25},
		{SecondJohn, 1, 13},
		{ThirdJohn, 1, 14},
		{Revelation, 22, 21},
	}
	for _, tt := range tests {
		got, err := VerseCount(tt.book, tt.chapter)
		if err != nil {
			t.Fatalf("VerseCount(%v, %d) error: %v", tt.book, tt.chapter, err)
		}
		if got != tt.want {
			t.Errorf("VerseCount(%v, %d) = %d, want %d", tt.book, tt.chapter, got, tt.want)
		}
	}

	if _, err := VerseCount(Genesis, 0); !errors.Is(err, verrors.ErrChapterOutOfRange) {
		t.Errorf("VerseCount(Genesis, 0) error = %v, want ErrChapterOutOfRange", err)
	}
	if _, err := VerseCount(Genesis, 51); !errors.Is(err, verrors.ErrChapterOutOfRange) {
		t.Errorf("VerseCount(Genesis, 51) error = %v, want ErrChapterOutOfRange", err)
	}
	if _, err := VerseCount(Book(0), 1); !errors.Is(err, verrors.ErrUnknownBook) {
		t.Errorf("VerseCount(Book(0), 1) error = %v, want ErrUnknownBook", err)
	}
}

func TestTotals(t *testing.T) {
	if got := TotalVerses(); got != 31102 {
		t.Errorf("TotalVerses() = %d, want 31102", got)
	}
	if got := TotalChapters(); got != 1189 {
		t.Errorf("TotalChapters() = %d, want 1189", got)
	}
}

func TestVersePosition(t *testing.T) {
	tests := []struct {
		book    Book
		chapter int
		verse   int
		want    int
	}{
		{Genesis, 1, 1, 1},
		{Genesis, 1, 31, 31},
		{Genesis, 2, 1, 32},
		{Malachi, 4, 6, 23145},
		{Matthew, 1, 1, 23146},
		{Revelation, 22, 21, 31102},
		{Genesis, 1, 32, 0},
		{Genesis, 51, 1, 0},
		{Book(0), 1, 1, 0},
	}
	for _, tt := range tests {
		if got := VersePosition(tt.book, tt.chapter, tt.verse); got != tt.want {
			t.Errorf("VersePosition(%v, %d, %d) = %d, want %d",
				tt.book, tt.chapter, tt.verse, got, tt.want)
		}
	}
}

func TestPositionVerse(t *testing.T) {
	tests := []struct {
		pos         int
		wantBook    Book
		wantChapter int
		wantVerse   int
	}{
		{1, Genesis, 1, 1},
		{31, Genesis, 1, 31},
		{32, Genesis, 2, 1},
		{23145, Malachi, 4, 6},
		{23146, Matthew, 1, 1},
		{31102, Revelation, 22, 21},
	}
	for _, tt := range tests {
		b, c, v, ok := PositionVerse(tt.pos)
		if !ok {
			t.Fatalf("PositionVerse(%d) not ok", tt.pos)
		}
		if b != tt.wantBook || c != tt.wantChapter || v != tt.wantVerse {
			t.Errorf("PositionVerse(%d) = %v %d:%d, want %v %d:%d",
				tt.pos, b, c, v, tt.wantBook, tt.wantChapter, tt.wantVerse)
		}
	}

	for _, pos := range []int{0, -1, 31103} {
		if _, _, _, ok := PositionVerse(pos); ok {
			t.Errorf("PositionVerse(%d) ok = true, want false", pos)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	// Sweep the whole canon once in each direction.
	pos := 0
	for _, b := range Books() {
		chapters, err := ChapterCount(b)
		if err != nil {
			t.Fatalf("ChapterCount(%v) error: %v", b, err)
		}
		for c := 1; c <= chapters; c++ {
			verses, err := VerseCount(b, c)
			if err != nil {
				t.Fatalf("VerseCount(%v, %d) error: %v", b, c, err)
			}
			for v := 1; v <= verses; v++ {
				pos++
				if got := VersePosition(b, c, v); got != pos {
					t.Fatalf("VersePosition(%v, %d, %d) = %d, want %d", b, c, v, got, pos)
				}
				gb, gc, gv, ok := PositionVerse(pos)
				if !ok || gb != b || gc != c || gv != v {
					t.Fatalf("PositionVerse(%d) = %v %d:%d %v, want %v %d:%d",
						pos, gb, gc, gv, ok, b, c, v)
				}
			}
		}
	}
	if pos != TotalVerses() {
		t.Errorf("swept %d verses, want %d", pos, TotalVerses())
	}
}

func TestChapterPosition(t *testing.T) {
	tests := []struct {
		book    Book
		chapter int
		want    int
	}{
		{Genesis, 1, 1},
		{Genesis, 50, 50},
		{Exodus, 1, 51},
		{Matthew, 1, 930},
		{Revelation, 22, 1189},
		{Genesis, 51, 0},
		{Book(0), 1, 0},
	}
	for _, tt := range tests {
		if got := ChapterPosition(tt.book, tt.chapter); got != tt.want {
			t.Errorf("ChapterPosition(%v, %d) = %d, want %d", tt.book, tt.chapter, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint()
	if len(fp) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex chars", len(fp))
	}
	if fp != Fingerprint() {
		t.Error("Fingerprint() is not stable across calls")
	}
}
