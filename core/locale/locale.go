// Package locale carries per-language book names and reference delimiters.
//
// Eight languages ship built in: English, German, simplified and
// traditional Chinese, French, Russian, Ukrainian and Spanish. Further
// languages or extra input aliases can be registered at startup, either
// directly with Register or from a Zefania-style names document with
// LoadNamesXML. The registry is populated during initialization and is
// not safe for mutation once lookups begin.
package locale

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
)

// NameForm selects between a book's full name and its abbreviation.
type NameForm int

const (
	FormLong NameForm = iota
	FormShort
)

func (f NameForm) String() string {
	if f == FormShort {
		return "short"
	}
	return "long"
}

// Language holds one language's reference grammar: the book names it
// accepts and emits, and the delimiter tokens shared by the parser and
// formatter.
type Language struct {
	Code string

	// Long and Short list the name aliases per book. The first entry of
	// each list is the spelling the formatter emits; every entry is
	// accepted on input.
	Long  map[canon.Book][]string
	Short map[canon.Book][]string

	// ChapterVerseSeps lists the accepted chapter-verse delimiters, the
	// first being the output form.
	ChapterVerseSeps []string
	// RangeSeps lists the accepted range delimiters, the first being the
	// output form.
	RangeSeps []string
	// SpaceAfterBook tells the formatter to put a space between the book
	// name and the chapter number.
	SpaceAfterBook bool

	index map[string]canon.Book
}

// rangeSeps are the range delimiters every built-in language accepts.
// Output always uses the plain hyphen.
var rangeSeps = []string{"-", "~", "–"}

var registry = map[string]*Language{}

func init() {
	builtins := []*Language{
		english,
		german,
		chineseSimplified,
		chineseTraditional,
		french,
		russian,
		ukrainian,
		spanish,
	}
	for _, l := range builtins {
		if err := Register(l); err != nil {
			panic(err)
		}
	}
}

func (l *Language) normalize() error {
	code := strings.ToLower(strings.TrimSpace(l.Code))
	if code == "" {
		return fmt.Errorf("language has no code")
	}
	l.Code = code
	if l.Short == nil {
		l.Short = make(map[canon.Book][]string, canon.BookCount)
	}
	if len(l.ChapterVerseSeps) == 0 || len(l.RangeSeps) == 0 {
		return fmt.Errorf("language %s: missing delimiters", code)
	}
	for _, b := range canon.Books() {
		if len(l.Long[b]) == 0 {
			return fmt.Errorf("language %s: no name for %s", code, b)
		}
		if len(l.Short[b]) == 0 {
			l.Short[b] = l.Long[b]
		}
	}
	return l.reindex()
}

func (l *Language) reindex() error {
	index := make(map[string]canon.Book, 2*canon.BookCount)
	for _, b := range canon.Books() {
		for _, alias := range append(append([]string{}, l.Long[b]...), l.Short[b]...) {
			key := NormalizeName(alias)
			if key == "" {
				return fmt.Errorf("language %s: empty name for %s", l.Code, b)
			}
			if have, ok := index[key]; ok && have != b {
				return fmt.Errorf("language %s: name %q maps to both %s and %s", l.Code, alias, have, b)
			}
			index[key] = b
		}
	}
	l.index = index
	return nil
}

// Register adds a language to the registry. Every book needs at least one
// long name; missing short names fall back to the long ones. Register is
// meant for startup wiring and must not race with Lookup.
func Register(l *Language) error {
	if err := l.normalize(); err != nil {
		return err
	}
	registry[l.Code] = l
	return nil
}

// Lookup returns the language registered under code. Codes are matched
// after trimming and lowercasing.
func Lookup(code string) (*Language, error) {
	if l, ok := registry[strings.ToLower(strings.TrimSpace(code))]; ok {
		return l, nil
	}
	return nil, &errors.LanguageError{Code: code}
}

// Codes lists the registered language codes in sorted order.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// NormalizeName folds a book name for matching: lowercased with every
// whitespace rune removed, so "1.Mose", "1. mose" and "1. MOSE" all
// compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveBookName finds the book a name refers to in the given language.
// Matching ignores case and whitespace and accepts any registered alias.
func ResolveBookName(text, code string) (canon.Book, error) {
	l, err := Lookup(code)
	if err != nil {
		return 0, err
	}
	return l.ResolveBookName(text)
}

// ResolveBookName finds the book an alias refers to.
func (l *Language) ResolveBookName(text string) (canon.Book, error) {
	if b, ok := l.index[NormalizeName(text)]; ok {
		return b, nil
	}
	return 0, &errors.BookNameError{Name: text, Language: l.Code}
}

// MatchPrefix finds the longest registered book name that is a prefix of
// s, which must already be in NormalizeName form. It returns the book and
// the matched length in bytes.
func (l *Language) MatchPrefix(s string) (canon.Book, int, bool) {
	var (
		book  canon.Book
		size  int
		found bool
	)
	for alias, b := range l.index {
		if len(alias) > size && strings.HasPrefix(s, alias) {
			book, size, found = b, len(alias), true
		}
	}
	return book, size, found
}

// DisplayName returns the name the formatter would emit for a book in the
// given language and form.
func DisplayName(b canon.Book, code string, form NameForm) (string, error) {
	l, err := Lookup(code)
	if err != nil {
		return "", err
	}
	return l.DisplayName(b, form)
}

// DisplayName returns the primary name for a book.
func (l *Language) DisplayName(b canon.Book, form NameForm) (string, error) {
	if !b.Valid() {
		return "", &errors.BookError{Book: b.String()}
	}
	names := l.Long[b]
	if form == FormShort {
		names = l.Short[b]
	}
	return names[0], nil
}
