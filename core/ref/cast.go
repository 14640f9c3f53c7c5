package ref

import "github.com/FocuswithJustin/Versicle/core/canon"

// BookRange widens the range to book granularity, keeping its span.
func (r Range) BookRange() Range {
	if r.IsZero() {
		return Range{}
	}
	return Range{
		start: Point{book: r.start.book, gran: GranularityBook},
		end:   Point{book: r.end.book, gran: GranularityBook},
	}
}

// ChapterRange returns the chapter range covering r: verse detail is
// dropped, book ranges expand to every chapter of their books.
func (r Range) ChapterRange() Range {
	switch r.start.gran {
	case GranularityChapter:
		return r
	case GranularityVerse:
		return Range{
			start: Point{book: r.start.book, chapter: r.start.chapter, gran: GranularityChapter},
			end:   Point{book: r.end.book, chapter: r.end.chapter, gran: GranularityChapter},
		}
	case GranularityBook:
		chapters, _ := canon.ChapterCount(r.end.book)
		return Range{
			start: Point{book: r.start.book, chapter: 1, gran: GranularityChapter},
			end:   Point{book: r.end.book, chapter: chapters, gran: GranularityChapter},
		}
	default:
		return Range{}
	}
}

// VerseRange returns the verse range covering r, expanding chapters and
// books to their full verse spans.
func (r Range) VerseRange() Range {
	switch r.start.gran {
	case GranularityVerse:
		return r
	case GranularityChapter:
		verses, _ := canon.VerseCount(r.end.book, r.end.chapter)
		return Range{
			start: Point{book: r.start.book, chapter: r.start.chapter, verse: 1, gran: GranularityVerse},
			end:   Point{book: r.end.book, chapter: r.end.chapter, verse: verses, gran: GranularityVerse},
		}
	case GranularityBook:
		chapters, _ := canon.ChapterCount(r.end.book)
		verses, _ := canon.VerseCount(r.end.book, chapters)
		return Range{
			start: Point{book: r.start.book, chapter: 1, verse: 1, gran: GranularityVerse},
			end:   Point{book: r.end.book, chapter: chapters, verse: verses, gran: GranularityVerse},
		}
	default:
		return Range{}
	}
}

// ExactChapterRange reports the chapter range equal to r verse for verse.
// ok is false unless r is a verse range starting at verse 1 of its first
// chapter and ending at the last verse of its last chapter.
func (r Range) ExactChapterRange() (Range, bool) {
	if r.start.gran != GranularityVerse {
		return Range{}, false
	}
	last, _ := canon.VerseCount(r.end.book, r.end.chapter)
	if r.start.verse != 1 || r.end.verse != last {
		return Range{}, false
	}
	return r.ChapterRange(), true
}

// ExactBookRange reports the book range equal to r chapter for chapter.
// ok is false unless r is a chapter range starting at chapter 1 and ending
// at the last chapter of its last book.
func (r Range) ExactBookRange() (Range, bool) {
	if r.start.gran != GranularityChapter {
		return Range{}, false
	}
	last, _ := canon.ChapterCount(r.end.book)
	if r.start.chapter != 1 || r.end.chapter != last {
		return Range{}, false
	}
	return r.BookRange(), true
}
