package ref

import (
	"cmp"
	"slices"
)

// Normalize sorts ranges canonically and merges every overlapping or
// adjacent pair of equal granularity. Zero ranges are dropped. The input
// slice is left untouched; the result is nil when nothing remains.
func Normalize(ranges []Range) []Range {
	rs := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsZero() {
			rs = append(rs, r)
		}
	}
	if len(rs) == 0 {
		return nil
	}
	slices.SortFunc(rs, func(a, b Range) int {
		if c := cmp.Compare(a.start.gran, b.start.gran); c != 0 {
			return c
		}
		return a.Compare(b)
	})

	out := []Range{rs[0]}
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.start.gran == last.start.gran && (last.Overlaps(r) || last.Adjacent(r)) {
			if last.end.Before(r.end) {
				last.end = r.end
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
