package reftext

import (
	"strconv"

	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/core/ref"
)

// Format renders a range in the given language using full book names.
// The end of a range is shortened to what the start does not already say:
// "John 3:16-18", "Matthew 1:1-2:12", "Joshua 3-7". Cross-book ranges keep
// the full end reference. The output always parses back to the same range.
func Format(r ref.Range, code string) (string, error) {
	return format(r, code, locale.FormLong)
}

// FormatShort is Format with abbreviated book names.
func FormatShort(r ref.Range, code string) (string, error) {
	return format(r, code, locale.FormShort)
}

func format(r ref.Range, code string, form locale.NameForm) (string, error) {
	lang, err := locale.Lookup(code)
	if err != nil {
		return "", err
	}
	start, err := FormatPointIn(r.Start(), lang, form)
	if err != nil {
		return "", err
	}
	if r.IsPoint() {
		return start, nil
	}
	end, err := formatEnd(r, lang, form)
	if err != nil {
		return "", err
	}
	return start + lang.RangeSeps[0] + end, nil
}

// FormatPointIn renders a single point in an already resolved language.
func FormatPointIn(p ref.Point, lang *locale.Language, form locale.NameForm) (string, error) {
	name, err := lang.DisplayName(p.Book(), form)
	if err != nil {
		return "", err
	}
	space := ""
	if lang.SpaceAfterBook {
		space = " "
	}
	switch p.Granularity() {
	case ref.GranularityBook:
		return name, nil
	case ref.GranularityChapter:
		return name + space + strconv.Itoa(p.Chapter()), nil
	default:
		return name + space + strconv.Itoa(p.Chapter()) +
			lang.ChapterVerseSeps[0] + strconv.Itoa(p.Verse()), nil
	}
}

// formatEnd renders the end of a non-degenerate range, elided against the
// start.
func formatEnd(r ref.Range, lang *locale.Language, form locale.NameForm) (string, error) {
	start, end := r.Start(), r.End()
	if start.Book() != end.Book() {
		return FormatPointIn(end, lang, form)
	}
	switch r.Granularity() {
	case ref.GranularityVerse:
		if start.Chapter() == end.Chapter() {
			return strconv.Itoa(end.Verse()), nil
		}
		return strconv.Itoa(end.Chapter()) + lang.ChapterVerseSeps[0] + strconv.Itoa(end.Verse()), nil
	case ref.GranularityChapter:
		return strconv.Itoa(end.Chapter()), nil
	default:
		// Book granularity within one book is always degenerate, so this
		// is never reached with a valid range.
		return FormatPointIn(end, lang, form)
	}
}
