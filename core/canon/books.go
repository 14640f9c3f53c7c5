// Package canon defines the 66-book Protestant canon with KJV chapter and
// verse counts. It is the single source of truth for book identity, canonical
// order, and reference bounds; every other package validates against it.
package canon

import (
	"fmt"

	"github.com/FocuswithJustin/Versicle/core/errors"
)

// Testament divides the canon at Matthew.
type Testament int

const (
	OldTestament Testament = iota + 1
	NewTestament
)

func (t Testament) String() string {
	switch t {
	case OldTestament:
		return "OT"
	case NewTestament:
		return "NT"
	default:
		return fmt.Sprintf("Testament(%d)", int(t))
	}
}

// Book identifies one canonical book. The zero value is not a valid book;
// constructors reject it with ErrUnknownBook.
type Book int

// The canonical books in order. The constant value is the 1-based ordinal.
const (
	Genesis Book = iota + 1
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	FirstSamuel
	SecondSamuel
	FirstKings
	SecondKings
	FirstChronicles
	SecondChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSolomon
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	FirstCorinthians
	SecondCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	FirstThessalonians
	SecondThessalonians
	FirstTimothy
	SecondTimothy
	Titus
	Philemon
	Hebrews
	James
	FirstPeter
	SecondPeter
	FirstJohn
	SecondJohn
	ThirdJohn
	Jude
	Revelation
)

// BookCount is the number of books in the canon.
const BookCount = 66

// Valid reports whether b names a canonical book.
func (b Book) Valid() bool {
	return b >= Genesis && b <= Revelation
}

// Ordinal returns the book's 1-based position in canonical order.
func (b Book) Ordinal() int {
	return int(b)
}

// String returns the book's English name, e.g. "Song of Solomon".
func (b Book) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Book(%d)", int(b))
	}
	return books[b].name
}

// OSIS returns the book's OSIS identifier, e.g. "1Sam".
func (b Book) OSIS() string {
	if !b.Valid() {
		return ""
	}
	return books[b].osis
}

// Testament returns which testament the book belongs to.
func (b Book) Testament() Testament {
	switch {
	case b >= Genesis && b <= Malachi:
		return OldTestament
	case b >= Matthew && b <= Revelation:
		return NewTestament
	default:
		return 0
	}
}

// Next returns the following book in canonical order. The second return is
// false at Revelation.
func (b Book) Next() (Book, bool) {
	if !b.Valid() || b == Revelation {
		return 0, false
	}
	return b + 1, true
}

// Prev returns the preceding book in canonical order. The second return is
// false at Genesis.
func (b Book) Prev() (Book, bool) {
	if !b.Valid() || b == Genesis {
		return 0, false
	}
	return b - 1, true
}

// MarshalText encodes the book as its OSIS identifier.
func (b Book) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.BookError{Book: fmt.Sprintf("Book(%d)", int(b))}
	}
	return []byte(b.OSIS()), nil
}

// UnmarshalText decodes a book from its OSIS identifier.
func (b *Book) UnmarshalText(text []byte) error {
	bk, err := BookFromOSIS(string(text))
	if err != nil {
		return err
	}
	*b = bk
	return nil
}

var osisIndex = func() map[string]Book {
	m := make(map[string]Book, BookCount)
	for b := Genesis; b <= Revelation; b++ {
		m[books[b].osis] = b
	}
	return m
}()

// BookFromOSIS resolves an OSIS identifier to a book.
func BookFromOSIS(id string) (Book, error) {
	if b, ok := osisIndex[id]; ok {
		return b, nil
	}
	return 0, &errors.BookError{Book: id}
}

// Books returns all books in canonical order.
func Books() []Book {
	out := make([]Book, 0, BookCount)
	for b := Genesis; b <= Revelation; b++ {
		out = append(out, b)
	}
	return out
}
