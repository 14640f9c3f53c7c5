package reftext

import (
	"testing"

	"github.com/FocuswithJustin/Versicle/core/canon"
	verrors "github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/ref"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		from string
		to   string
		want string
	}{
		{"Genesis 1:1", "en", "de", "1. Mose 1,1"},
		{"1. Mose 1,1", "de", "en", "Genesis 1:1"},
		{"John 3:16-18", "en", "zh_sim", "约翰福音3：16-18"},
		{"约翰福音3：16-18", "zh_sim", "en", "John 3:16-18"},
		{"Joshua 3-7", "en", "ru", "Иисус Навин 3-7"},
		{"Malachi 4-Matthew 2", "en", "de", "Maleachi 4-Matthäus 2"},
		{"Psalms 23", "en", "en", "Psalms 23"},
	}
	for _, tt := range tests {
		got, err := Translate(tt.in, tt.from, tt.to)
		if err != nil {
			t.Errorf("Translate(%q, %q, %q) error: %v", tt.in, tt.from, tt.to, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Translate(%q, %q, %q) = %q, want %q", tt.in, tt.from, tt.to, got, tt.want)
		}
	}
}

// Translating a formatted range between any two languages must preserve
// the underlying range.
func TestTranslateConsistency(t *testing.T) {
	samples := []ref.Range{
		mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 18)),
		mustRange(t, mustVerse(t, canon.Matthew, 1, 1), mustVerse(t, canon.Matthew, 2, 12)),
		mustRange(t, mustChapter(t, canon.Joshua, 3), mustChapter(t, canon.Joshua, 7)),
		mustRange(t, mustBook(t, canon.Genesis), mustBook(t, canon.Exodus)),
		mustRange(t, mustVerse(t, canon.Malachi, 4, 6), mustVerse(t, canon.Matthew, 1, 1)),
	}
	codes := []string{"en", "de", "zh_sim", "zh_trad", "fr", "ru", "uk", "es"}
	for _, r := range samples {
		for _, from := range codes {
			text, err := Format(r, from)
			if err != nil {
				t.Fatalf("Format(%v, %q) error: %v", r, from, err)
			}
			for _, to := range codes {
				translated, err := Translate(text, from, to)
				if err != nil {
					t.Fatalf("Translate(%q, %q, %q) error: %v", text, from, to, err)
				}
				got, err := Parse(translated, to)
				if err != nil {
					t.Fatalf("Parse(%q, %q) error: %v", translated, to, err)
				}
				if got != r {
					t.Errorf("Parse(Translate(%q, %q, %q), %q) = %v, want %v", text, from, to, to, got, r)
				}
			}
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	if _, err := Translate("NotABook 1", "en", "de"); !verrors.Is(err, verrors.ErrUnrecognizedBookName) {
		t.Errorf("Translate parse error = %v, want ErrUnrecognizedBookName", err)
	}
	if _, err := Translate("John 3:16", "en", "tlh"); !verrors.Is(err, verrors.ErrUnsupportedLanguage) {
		t.Errorf("Translate format error = %v, want ErrUnsupportedLanguage", err)
	}
	if _, err := Translate("John 3:16", "tlh", "en"); !verrors.Is(err, verrors.ErrUnsupportedLanguage) {
		t.Errorf("Translate lookup error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestValidate(t *testing.T) {
	for _, in := range []string{"John 3:16", "Exodus 3", "Genesis-Exodus", "Psalms 119:176"} {
		if err := Validate(in, "en"); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", in, err)
		}
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", verrors.ErrMalformedInput},
		{"NotABook 1", verrors.ErrUnrecognizedBookName},
		{"Genesis 1:0", verrors.ErrInvalidVerse},
		{"Revelation 24", verrors.ErrChapterOutOfRange},
		{"John 3:18-16", verrors.ErrRangeOrder},
	}
	for _, tt := range tests {
		if err := Validate(tt.in, "en"); !verrors.Is(err, tt.want) {
			t.Errorf("Validate(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}
