package reftext

import (
	"testing"

	"github.com/FocuswithJustin/Versicle/core/canon"
	verrors "github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/ref"
)

func TestFormatEnglish(t *testing.T) {
	tests := []struct {
		r    ref.Range
		want string
	}{
		{mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 16)), "John 3:16"},
		{mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 18)), "John 3:16-18"},
		{mustRange(t, mustVerse(t, canon.Matthew, 1, 1), mustVerse(t, canon.Matthew, 2, 12)), "Matthew 1:1-2:12"},
		{mustRange(t, mustChapter(t, canon.Joshua, 3), mustChapter(t, canon.Joshua, 7)), "Joshua 3-7"},
		{mustRange(t, mustChapter(t, canon.Joshua, 3), mustChapter(t, canon.Joshua, 3)), "Joshua 3"},
		{mustRange(t, mustBook(t, canon.Genesis), mustBook(t, canon.Genesis)), "Genesis"},
		{mustRange(t, mustBook(t, canon.Genesis), mustBook(t, canon.Exodus)), "Genesis-Exodus"},
		{mustRange(t, mustChapter(t, canon.Malachi, 4), mustChapter(t, canon.Matthew, 2)), "Malachi 4-Matthew 2"},
		{mustRange(t, mustVerse(t, canon.Malachi, 4, 6), mustVerse(t, canon.Matthew, 1, 1)), "Malachi 4:6-Matthew 1:1"},
		{mustRange(t, mustVerse(t, canon.FirstSamuel, 17, 4), mustVerse(t, canon.FirstSamuel, 17, 4)), "1 Samuel 17:4"},
		{mustRange(t, mustVerse(t, canon.SongOfSolomon, 2, 1), mustVerse(t, canon.SongOfSolomon, 2, 1)), "Song of Solomon 2:1"},
	}
	for _, tt := range tests {
		got, err := Format(tt.r, "en")
		if err != nil {
			t.Errorf("Format(%v) error: %v", tt.r, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestFormatLanguages(t *testing.T) {
	gen11 := mustRange(t, mustVerse(t, canon.Genesis, 1, 1), mustVerse(t, canon.Genesis, 1, 1))
	john31618 := mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 18))

	tests := []struct {
		code string
		r    ref.Range
		want string
	}{
		{"de", gen11, "1. Mose 1,1"},
		{"de", john31618, "Johannes 3,16-18"},
		{"zh_sim", gen11, "创世记1：1"},
		{"zh_sim", john31618, "约翰福音3：16-18"},
		{"zh_trad", john31618, "約翰福音3：16-18"},
		{"fr", gen11, "Genèse 1:1"},
		{"ru", john31618, "От Иоанна 3:16-18"},
		{"uk", gen11, "Буття 1:1"},
		{"es", john31618, "Juan 3:16-18"},
	}
	for _, tt := range tests {
		got, err := Format(tt.r, tt.code)
		if err != nil {
			t.Errorf("Format(%v, %q) error: %v", tt.r, tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tt.r, tt.code, got, tt.want)
		}
	}
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		code string
		r    ref.Range
		want string
	}{
		{"en", mustRange(t, mustChapter(t, canon.Psalms, 23), mustChapter(t, canon.Psalms, 23)), "Ps 23"},
		{"en", mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 18)), "John 3:16-18"},
		{"en", mustRange(t, mustVerse(t, canon.FirstSamuel, 17, 4), mustVerse(t, canon.FirstSamuel, 17, 4)), "1 Sam 17:4"},
		{"de", mustRange(t, mustVerse(t, canon.Genesis, 1, 1), mustVerse(t, canon.Genesis, 1, 1)), "1Mo 1,1"},
		{"de", mustRange(t, mustChapter(t, canon.Matthew, 5), mustChapter(t, canon.Matthew, 7)), "Mt 5-7"},
	}
	for _, tt := range tests {
		got, err := FormatShort(tt.r, tt.code)
		if err != nil {
			t.Errorf("FormatShort(%v, %q) error: %v", tt.r, tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatShort(%v, %q) = %q, want %q", tt.r, tt.code, got, tt.want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	r := mustRange(t, mustVerse(t, canon.John, 3, 16), mustVerse(t, canon.John, 3, 16))
	if _, err := Format(r, "tlh"); !verrors.Is(err, verrors.ErrUnsupportedLanguage) {
		t.Errorf("Format with unknown language error = %v, want ErrUnsupportedLanguage", err)
	}
	if _, err := Format(ref.Range{}, "en"); !verrors.Is(err, verrors.ErrUnknownBook) {
		t.Errorf("Format of zero range error = %v, want ErrUnknownBook", err)
	}
}
