package locale

import (
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
)

// bookExpr matches the book elements of a Zefania-style names document.
var bookExpr = xpath.MustCompile("//BIBLEBOOK")

// LoadNamesXML reads a Zefania-style document and registers its bname and
// bsname attributes as book names under the given language code. Books are
// identified by their bnumber attribute, counted in canonical order. When
// code is already registered the names become extra input aliases;
// otherwise a new language is created with the delimiters of the base
// language, and the document must then name all 66 books.
func LoadNamesXML(r io.Reader, code, base string) error {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return errors.Wrap(err, "parsing names document")
	}

	long := make(map[canon.Book][]string, canon.BookCount)
	short := make(map[canon.Book][]string, canon.BookCount)
	for _, node := range xmlquery.QuerySelectorAll(doc, bookExpr) {
		num, err := strconv.Atoi(node.SelectAttr("bnumber"))
		if err != nil {
			return errors.Wrapf(err, "book number %q", node.SelectAttr("bnumber"))
		}
		b := canon.Book(num)
		if !b.Valid() {
			return &errors.BookError{Book: strconv.Itoa(num)}
		}
		if name := strings.TrimSpace(node.SelectAttr("bname")); name != "" {
			long[b] = append(long[b], name)
		}
		if name := strings.TrimSpace(node.SelectAttr("bsname")); name != "" {
			short[b] = append(short[b], name)
		}
	}

	if l, err := Lookup(code); err == nil {
		return l.merge(long, short)
	}

	from, err := Lookup(base)
	if err != nil {
		return err
	}
	return Register(&Language{
		Code:             code,
		Long:             long,
		Short:            short,
		ChapterVerseSeps: from.ChapterVerseSeps,
		RangeSeps:        from.RangeSeps,
		SpaceAfterBook:   from.SpaceAfterBook,
	})
}

// merge appends aliases to a registered language and rebuilds its index.
func (l *Language) merge(long, short map[canon.Book][]string) error {
	for b, names := range long {
		l.Long[b] = appendNew(l.Long[b], names)
	}
	for b, names := range short {
		l.Short[b] = appendNew(l.Short[b], names)
	}
	return l.reindex()
}

// appendNew appends the names not already present under NormalizeName.
func appendNew(have, names []string) []string {
	for _, name := range names {
		dup := false
		for _, h := range have {
			if NormalizeName(h) == NormalizeName(name) {
				dup = true
				break
			}
		}
		if !dup {
			have = append(have, name)
		}
	}
	return have
}
