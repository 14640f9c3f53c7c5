package reftext

import (
	"strings"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/core/ref"
)

// Parse reads a reference in the given language and returns the range it
// denotes. Single points come back as degenerate ranges. Matching ignores
// case and whitespace, accepts any registered name alias, and takes any of
// the language's delimiter variants.
//
//	Parse("John 3:16-18", "en")
//	Parse("1. Mose 1,1", "de")
//	Parse("约翰福音3：16", "zh_sim")
func Parse(text, code string) (ref.Range, error) {
	lang, err := locale.Lookup(code)
	if err != nil {
		return ref.Range{}, err
	}
	return ParseIn(text, lang)
}

// ParseIn is Parse with an already resolved language.
func ParseIn(text string, lang *locale.Language) (ref.Range, error) {
	norm := locale.NormalizeName(text)
	if norm == "" {
		return ref.Range{}, &errors.SyntaxError{Reason: "empty reference"}
	}

	book, n, ok := lang.MatchPrefix(norm)
	if !ok {
		return ref.Range{}, &errors.BookNameError{Name: strings.TrimSpace(text), Language: lang.Code}
	}

	startTail, endText, ranged := splitRange(norm[n:], lang.RangeSeps)
	start, err := makePoint(book, startTail, text, lang)
	if err != nil {
		return ref.Range{}, err
	}
	if !ranged {
		return ref.NewRange(start, start)
	}

	end, err := makeEnd(start, endText, text, lang)
	if err != nil {
		return ref.Range{}, err
	}
	return ref.NewRange(start, end)
}

// splitRange cuts s at the first occurrence of any range separator.
func splitRange(s string, seps []string) (left, right string, found bool) {
	at, size := -1, 0
	for _, sep := range seps {
		if i := strings.Index(s, sep); i >= 0 && (at < 0 || i < at) {
			at, size = i, len(sep)
		}
	}
	if at < 0 {
		return s, "", false
	}
	return s[:at], s[at+size:], true
}

// makePoint builds the point a book name plus numeric tail denotes.
func makePoint(book canon.Book, tail, input string, lang *locale.Language) (ref.Point, error) {
	if tail == "" {
		return ref.BookPoint(book)
	}
	t, err := parseTail(tail, input, lang)
	if err != nil {
		return ref.Point{}, err
	}
	if t.hasVerse {
		return ref.VersePoint(book, t.chapter, t.verse)
	}
	return ref.ChapterPoint(book, t.chapter)
}

// makeEnd builds the end point of a range. An end that names a book is
// parsed like a fresh reference; a bare numeric end inherits the missing
// parts from the start, so "John 3:16-18" ends at John 3:18 and
// "Joshua 3-7" ends at Joshua 7.
func makeEnd(start ref.Point, endText, input string, lang *locale.Language) (ref.Point, error) {
	if endText == "" {
		return ref.Point{}, &errors.SyntaxError{Input: strings.TrimSpace(input), Reason: "missing range end"}
	}

	if book, n, ok := lang.MatchPrefix(endText); ok {
		return makePoint(book, endText[n:], input, lang)
	}

	t, err := parseTail(endText, input, lang)
	if err != nil {
		return ref.Point{}, err
	}
	switch {
	case t.hasVerse:
		return ref.VersePoint(start.Book(), t.chapter, t.verse)
	case start.Granularity() == ref.GranularityVerse:
		return ref.VersePoint(start.Book(), start.Chapter(), t.chapter)
	default:
		return ref.ChapterPoint(start.Book(), t.chapter)
	}
}
