package ref

import (
	"iter"

	"github.com/FocuswithJustin/Versicle/core/canon"
)

// step advances one point at p's own granularity, consulting the canonical
// index to cross chapter and book boundaries. ok is false at the end of the
// canon.
func (p Point) step() (Point, bool) {
	switch p.gran {
	case GranularityBook:
		b, ok := p.book.Next()
		if !ok {
			return Point{}, false
		}
		return Point{book: b, gran: GranularityBook}, true
	case GranularityChapter:
		chapters, _ := canon.ChapterCount(p.book)
		if p.chapter < chapters {
			return Point{book: p.book, chapter: p.chapter + 1, gran: GranularityChapter}, true
		}
		b, ok := p.book.Next()
		if !ok {
			return Point{}, false
		}
		return Point{book: b, chapter: 1, gran: GranularityChapter}, true
	case GranularityVerse:
		return p.NextVerse()
	default:
		return Point{}, false
	}
}

// Points yields the range's points in canonical order, start through end
// inclusive, at the range's own granularity. The sequence is finite and
// restartable; each new range loop replays it from the start.
func (r Range) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsZero() {
			return
		}
		p := r.start
		for {
			if !yield(p) {
				return
			}
			if p == r.end {
				return
			}
			next, ok := p.step()
			if !ok {
				return
			}
			p = next
		}
	}
}

// Count returns how many points the range spans at its own granularity,
// computed from canonical positions without iterating.
func (r Range) Count() int {
	if r.IsZero() {
		return 0
	}
	return r.end.Position() - r.start.Position() + 1
}
