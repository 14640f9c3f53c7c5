package ref

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
)

// ParseOSIS parses the dotted OSIS form emitted by String, such as
// "John.3.16-John.3.18", "Ps.23", or "Gen-Exod". A single point yields a
// degenerate range. Endpoint validation and ordering follow NewRange.
func ParseOSIS(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, &errors.SyntaxError{Reason: "empty reference"}
	}
	left, right, found := strings.Cut(s, "-")
	start, err := parseOSISPoint(left)
	if err != nil {
		return Range{}, err
	}
	if !found {
		return NewRange(start, start)
	}
	end, err := parseOSISPoint(right)
	if err != nil {
		return Range{}, err
	}
	return NewRange(start, end)
}

func parseOSISPoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	b, err := canon.BookFromOSIS(parts[0])
	if err != nil {
		return Point{}, err
	}
	switch len(parts) {
	case 1:
		return BookPoint(b)
	case 2:
		ch, err := osisNumber(parts[1], s)
		if err != nil {
			return Point{}, err
		}
		return ChapterPoint(b, ch)
	case 3:
		ch, err := osisNumber(parts[1], s)
		if err != nil {
			return Point{}, err
		}
		v, err := osisNumber(parts[2], s)
		if err != nil {
			return Point{}, err
		}
		return VersePoint(b, ch, v)
	default:
		return Point{}, &errors.SyntaxError{Input: s, Reason: "too many dotted segments"}
	}
}

func osisNumber(part, input string) (int, error) {
	n, err := strconv.Atoi(part)
	if err != nil || n < 0 {
		return 0, &errors.SyntaxError{Input: input, Reason: "segment " + strconv.Quote(part) + " is not a number"}
	}
	return n, nil
}
