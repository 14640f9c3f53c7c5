package ref

import (
	"encoding/json"
	"fmt"

	"github.com/FocuswithJustin/Versicle/core/errors"
)

// Range spans start through end inclusive, both of the same granularity,
// with start not after end. The zero value is not a valid range; use
// NewRange.
type Range struct {
	start, end Point
}

// NewRange builds a range after checking granularity and order. The caller's
// order stands: an end before its start is an error, never swapped.
func NewRange(start, end Point) (Range, error) {
	if start.gran != end.gran {
		return Range{}, &errors.MismatchError{Start: start.String(), End: end.String()}
	}
	if start.gran == 0 {
		return Range{}, &errors.BookError{Book: start.book.String()}
	}
	if end.Before(start) {
		return Range{}, &errors.OrderError{Start: start.String(), End: end.String()}
	}
	return Range{start: start, end: end}, nil
}

// Start returns the first point of the range.
func (r Range) Start() Point { return r.start }

// End returns the last point of the range.
func (r Range) End() Point { return r.end }

// Granularity returns the granularity shared by both endpoints.
func (r Range) Granularity() Granularity { return r.start.gran }

// IsZero reports whether r is the invalid zero range.
func (r Range) IsZero() bool { return r.start.gran == 0 }

// IsPoint reports whether the range is degenerate, covering a single point.
func (r Range) IsPoint() bool { return !r.IsZero() && r.start == r.end }

// Compare orders ranges by start, then end.
func (r Range) Compare(o Range) int {
	if c := r.start.Compare(o.start); c != 0 {
		return c
	}
	return r.end.Compare(o.end)
}

// Contains reports whether p lies within the range. Points of a different
// granularity are never contained.
func (r Range) Contains(p Point) bool {
	if p.gran != r.start.gran || r.IsZero() {
		return false
	}
	return !p.Before(r.start) && !r.end.Before(p)
}

// ContainsRange reports whether o lies entirely within r.
func (r Range) ContainsRange(o Range) bool {
	return r.Contains(o.start) && r.Contains(o.end)
}

// Overlaps reports whether the two ranges share at least one point. Ranges
// of different granularities never overlap.
func (r Range) Overlaps(o Range) bool {
	if o.start.gran != r.start.gran || r.IsZero() {
		return false
	}
	return !r.end.Before(o.start) && !o.end.Before(r.start)
}

// Adjacent reports whether one range begins exactly one point after the
// other ends, chapter and book boundaries included.
func (r Range) Adjacent(o Range) bool {
	if o.start.gran != r.start.gran || r.IsZero() {
		return false
	}
	return r.end.Position()+1 == o.start.Position() || o.end.Position()+1 == r.start.Position()
}

// String renders the range in dotted OSIS form, e.g. "John.3.16-John.3.18".
// Degenerate ranges render as their single point.
func (r Range) String() string {
	if r.IsZero() {
		return "Range(zero)"
	}
	if r.IsPoint() {
		return r.start.String()
	}
	return fmt.Sprintf("%s-%s", r.start, r.end)
}

type rangeJSON struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// MarshalJSON encodes the range as its two endpoints.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON{Start: r.start, End: r.end})
}

// UnmarshalJSON decodes two endpoints and revalidates them as a range.
func (r *Range) UnmarshalJSON(data []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rng, err := NewRange(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*r = rng
	return nil
}
