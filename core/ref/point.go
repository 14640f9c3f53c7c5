// Package ref implements the reference model: validated points at book,
// chapter, or verse granularity, ranges between points of equal granularity,
// and the cast and iteration operations over them.
//
// Points and ranges are immutable value types. Construction goes through
// smart constructors that validate against the canonical index, so a value
// of these types is always in bounds.
package ref

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
)

// Granularity tags how much detail a point carries.
type Granularity int

const (
	GranularityBook Granularity = iota + 1
	GranularityChapter
	GranularityVerse
)

func (g Granularity) String() string {
	switch g {
	case GranularityBook:
		return "book"
	case GranularityChapter:
		return "chapter"
	case GranularityVerse:
		return "verse"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// Point is a single validated reference. The zero value is not a valid
// point; use BookPoint, ChapterPoint, or VersePoint.
type Point struct {
	book    canon.Book
	chapter int
	verse   int
	gran    Granularity
}

// BookPoint returns a point naming a whole book.
func BookPoint(b canon.Book) (Point, error) {
	if !b.Valid() {
		return Point{}, &errors.BookError{Book: b.String()}
	}
	return Point{book: b, gran: GranularityBook}, nil
}

// ChapterPoint returns a point naming one chapter of a book.
func ChapterPoint(b canon.Book, chapter int) (Point, error) {
	chapters, err := canon.ChapterCount(b)
	if err != nil {
		return Point{}, err
	}
	if chapter < 1 || chapter > chapters {
		return Point{}, &errors.ChapterError{Book: b.String(), Chapter: chapter, Chapters: chapters}
	}
	return Point{book: b, chapter: chapter, gran: GranularityChapter}, nil
}

// VersePoint returns a point naming one verse.
func VersePoint(b canon.Book, chapter, verse int) (Point, error) {
	chapters, err := canon.ChapterCount(b)
	if err != nil {
		return Point{}, err
	}
	if chapter < 1 || chapter > chapters {
		return Point{}, &errors.VerseChapterError{Book: b.String(), Chapter: chapter, Chapters: chapters}
	}
	verses, err := canon.VerseCount(b, chapter)
	if err != nil {
		return Point{}, err
	}
	if verse < 1 || verse > verses {
		return Point{}, &errors.VerseError{Book: b.String(), Chapter: chapter, Verse: verse, Verses: verses}
	}
	return Point{book: b, chapter: chapter, verse: verse, gran: GranularityVerse}, nil
}

// Book returns the point's book.
func (p Point) Book() canon.Book { return p.book }

// Chapter returns the point's chapter, 0 at book granularity.
func (p Point) Chapter() int { return p.chapter }

// Verse returns the point's verse, 0 below verse granularity.
func (p Point) Verse() int { return p.verse }

// Granularity returns the point's granularity tag.
func (p Point) Granularity() Granularity { return p.gran }

// IsZero reports whether p is the invalid zero point.
func (p Point) IsZero() bool { return p.gran == 0 }

// Compare orders points canonically: book ordinal, then chapter, then verse.
// Levels a granularity does not carry compare as zero.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.book, q.book); c != 0 {
		return c
	}
	if c := cmp.Compare(p.chapter, q.chapter); c != 0 {
		return c
	}
	return cmp.Compare(p.verse, q.verse)
}

// Before reports whether p precedes q under canonical ordering.
func (p Point) Before(q Point) bool { return p.Compare(q) < 0 }

// Position returns the 1-based position of the point among all points of
// its granularity in the canon, or 0 for the zero point.
func (p Point) Position() int {
	switch p.gran {
	case GranularityBook:
		return p.book.Ordinal()
	case GranularityChapter:
		return canon.ChapterPosition(p.book, p.chapter)
	case GranularityVerse:
		return canon.VersePosition(p.book, p.chapter, p.verse)
	default:
		return 0
	}
}

// NextVerse returns the verse after p, crossing chapter and book boundaries.
// ok is false past the last verse of the canon or when p is not verse
// granularity.
func (p Point) NextVerse() (Point, bool) {
	if p.gran != GranularityVerse {
		return Point{}, false
	}
	b, c, v, ok := canon.PositionVerse(p.Position() + 1)
	if !ok {
		return Point{}, false
	}
	return Point{book: b, chapter: c, verse: v, gran: GranularityVerse}, true
}

// PrevVerse returns the verse before p, crossing chapter and book
// boundaries. ok is false before the first verse of the canon or when p is
// not verse granularity.
func (p Point) PrevVerse() (Point, bool) {
	if p.gran != GranularityVerse {
		return Point{}, false
	}
	b, c, v, ok := canon.PositionVerse(p.Position() - 1)
	if !ok {
		return Point{}, false
	}
	return Point{book: b, chapter: c, verse: v, gran: GranularityVerse}, true
}

// String renders the point in dotted OSIS form, e.g. "John.3.16".
func (p Point) String() string {
	switch p.gran {
	case GranularityBook:
		return p.book.OSIS()
	case GranularityChapter:
		return fmt.Sprintf("%s.%d", p.book.OSIS(), p.chapter)
	case GranularityVerse:
		return fmt.Sprintf("%s.%d.%d", p.book.OSIS(), p.chapter, p.verse)
	default:
		return "Point(zero)"
	}
}

type pointJSON struct {
	Book    canon.Book `json:"book"`
	Chapter int        `json:"chapter,omitempty"`
	Verse   int        `json:"verse,omitempty"`
}

// MarshalJSON encodes the point with its OSIS book ID, omitting levels the
// granularity does not carry.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{Book: p.book, Chapter: p.chapter, Verse: p.verse})
}

// UnmarshalJSON decodes and validates a point; granularity follows the
// fields present.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw pointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var pt Point
	var err error
	switch {
	case raw.Verse != 0:
		pt, err = VersePoint(raw.Book, raw.Chapter, raw.Verse)
	case raw.Chapter != 0:
		pt, err = ChapterPoint(raw.Book, raw.Chapter)
	default:
		pt, err = BookPoint(raw.Book)
	}
	if err != nil {
		return err
	}
	*p = pt
	return nil
}
