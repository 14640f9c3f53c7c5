package canon

import (
	"errors"
	"testing"

	verrors "github.com/FocuswithJustin/Versicle/core/errors"
)

func TestBookIdentity(t *testing.T) {
	tests := []struct {
		book      Book
		ordinal   int
		name      string
		osis      string
		testament Testament
	}{
		{Genesis, 1, "Genesis", "Gen", OldTestament},
		{FirstSamuel, 9, "1 Samuel", "1Sam", OldTestament},
		{Psalms, 19, "Psalms", "Ps", OldTestament},
		{SongOfSolomon, 22, "Song of Solomon", "Song", OldTestament},
		{Malachi, 39, "Malachi", "Mal", OldTestament},
		{Matthew, 40, "Matthew", "Matt", NewTestament},
		{Philemon, 57, "Philemon", "Phlm", NewTestament},
		{ThirdJohn, 64, "3 John", "3John", NewTestament},
		{Revelation, 66, "Revelation", "Rev", NewTestament},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Ordinal(); got != tt.ordinal {
				t.Errorf("Ordinal() = %d, want %d", got, tt.ordinal)
			}
			if got := tt.book.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.book.OSIS(); got != tt.osis {
				t.Errorf("OSIS() = %q, want %q", got, tt.osis)
			}
			if got := tt.book.Testament(); got != tt.testament {
				t.Errorf("Testament() = %v, want %v", got, tt.testament)
			}
		})
	}
}

func TestBookValid(t *testing.T) {
	if Book(0).Valid() {
		t.Error("Book(0).Valid() = true, want false")
	}
	if Book(67).Valid() {
		t.Error("Book(67).Valid() = true, want false")
	}
	if !Jude.Valid() {
		t.Error("Jude.Valid() = false, want true")
	}
}

func TestNextPrev(t *testing.T) {
	if next, ok := Malachi.Next(); !ok || next != Matthew {
		t.Errorf("Malachi.Next() = %v, %v, want Matthew, true", next, ok)
	}
	if prev, ok := Matthew.Prev(); !ok || prev != Malachi {
		t.Errorf("Matthew.Prev() = %v, %v, want Malachi, true", prev, ok)
	}
	if _, ok := Revelation.Next(); ok {
		t.Error("Revelation.Next() ok = true, want false")
	}
	if _, ok := Genesis.Prev(); ok {
		t.Error("Genesis.Prev() ok = true, want false")
	}
}

func TestBookFromOSIS(t *testing.T) {
	tests := []struct {
		id   string
		want Book
	}{
		{"Gen", Genesis},
		{"1Sam", FirstSamuel},
		{"Song", SongOfSolomon},
		{"Phlm", Philemon},
		{"Rev", Revelation},
	}
	for _, tt := range tests {
		got, err := BookFromOSIS(tt.id)
		if err != nil {
			t.Fatalf("BookFromOSIS(%q) error: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("BookFromOSIS(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}

	if _, err := BookFromOSIS("Gondor"); !errors.Is(err, verrors.ErrUnknownBook) {
		t.Errorf("BookFromOSIS(Gondor) error = %v, want ErrUnknownBook", err)
	}
}

func TestBookTextRoundTrip(t *testing.T) {
	for _, b := range Books() {
		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error: %v", b, err)
		}
		var back Book
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != b {
			t.Errorf("round trip of %v gave %v", b, back)
		}
	}
}

func TestBooks(t *testing.T) {
	all := Books()
	if len(all) != BookCount {
		t.Fatalf("len(Books()) = %d, want %d", len(all), BookCount)
	}
	if all[0] != Genesis || all[len(all)-1] != Revelation {
		t.Errorf("Books() spans %v..%v, want Genesis..Revelation", all[0], all[len(all)-1])
	}
}
