package canon

import "github.com/FocuswithJustin/Versicle/core/errors"

// bookData carries the KJV bounds for one book, verse counts indexed by
// chapter. The counts follow the KJV versification used by SWORD and most
// English modules.
type bookData struct {
	name   string
	osis   string
	verses []int
}

var books = [BookCount + 1]bookData{
	Genesis: {name: "Genesis", osis: "Gen", verses: []int{31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16, 27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32, 20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22, 33, 26}},
	Exodus: {name: "Exodus", osis: "Exod", verses: []int{22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36, 16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35, 23, 35, 35, 38, 29, 31, 43, 38}},
	Leviticus: {name: "Leviticus", osis: "Lev", verses: []int{17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 57, 33, 34, 16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34}},
	Numbers: {name: "Numbers", osis: "Num", verses: []int{54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50, 13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42, 56, 29, 34, 13}},
	Deuteronomy: {name: "Deuteronomy", osis: "Deut", verses: []int{46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22, 20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52, 29, 12}},
	Joshua: {name: "Joshua", osis: "Josh", verses: []int{18, 24, 17, 24, 15, 27, 26, 35, 27, 43, 23, 24, 33, 15, 63, 10, 18, 28, 51, 9, 45, 34, 16, 33}},
	Judges: {name: "Judges", osis: "Judg", verses: []int{36, 23, 31, 24, 31, 40, 25, 35, 57, 18, 40, 15, 25, 20, 20, 31, 13, 31, 30, 48, 25}},
	Ruth: {name: "Ruth", osis: "Ruth", verses: []int{22, 23, 18, 22}},
	FirstSamuel: {name: "1 Samuel", osis: "1Sam", verses: []int{28, 36, 21, 22, 12, 21, 17, 22, 27, 27, 15, 25, 23, 52, 35, 23, 58, 30, 24, 42, 15, 23, 29, 22, 44, 25, 12, 25, 11, 31, 13}},
	SecondSamuel: {name: "2 Samuel", osis: "2Sam", verses: []int{27, 32, 39, 12, 25, 23, 29, 18, 13, 19, 27, 31, 39, 33, 37, 23, 29, 33, 43, 26, 22, 51, 39, 25}},
	FirstKings: {name: "1 Kings", osis: "1Kgs", verses: []int{53, 46, 28, 34, 18, 38, 51, 66, 28, 29, 43, 33, 34, 31, 34, 34, 24, 46, 21, 43, 29, 53}},
	SecondKings: {name: "2 Kings", osis: "2Kgs", verses: []int{18, 25, 27, 44, 27, 33, 20, 29, 37, 36, 21, 21, 25, 29, 38, 20, 41, 37, 37, 21, 26, 20, 37, 20, 30}},
	FirstChronicles: {name: "1 Chronicles", osis: "1Chr", verses: []int{54, 55, 24, 43, 26, 81, 40, 40, 44, 14, 47, 40, 14, 17, 29, 43, 27, 17, 19, 8, 30, 19, 32, 31, 31, 32, 34, 21, 30}},
	SecondChronicles: {name: "2 Chronicles", osis: "2Chr", verses: []int{17, 18, 17, 22, 14, 42, 22, 18, 31, 19, 23, 16, 22, 15, 19, 14, 19, 34, 11, 37, 20, 12, 21, 27, 28, 23, 9, 27, 36, 27, 21, 33, 25, 33, 27, 23}},
	Ezra: {name: "Ezra", osis: "Ezra", verses: []int{11, 70, 13, 24, 17, 22, 28, 36, 15, 44}},
	Nehemiah: {name: "Nehemiah", osis: "Neh", verses: []int{11, 20, 32, 23, 19, 19, 73, 18, 38, 39, 36, 47, 31}},
	Esther: {name: "Esther", osis: "Esth", verses: []int{22, 23, 15, 17, 14, 14, 10, 17, 32, 3}},
	Job: {name: "Job", osis: "Job", verses: []int{22, 13, 26, 21, 27, 30, 21, 22, 35, 22, 20, 25, 28, 22, 35, 22, 16, 21, 29, 29, 34, 30, 17, 25, 6, 14, 23, 28, 25, 31, 40, 22, 33, 37, 16, 33, 24, 41, 30, 24, 34, 17}},
	Psalms: {name: "Psalms", osis: "Ps", verses: []int{6, 12, 8, 8, 12, 10, 17, 9, 20, 18, 7, 8, 6, 7, 5, 11, 15, 50, 14, 9, 13, 31, 6, 10, 22, 12, 14, 9, 11, 12, 24, 11, 22, 22, 28, 12, 40, 22, 13, 17, 13, 11, 5, 26, 17, 11, 9, 14, 20, 23, 19, 9, 6, 7, 23, 13, 11, 11, 17, 12, 8, 12, 11, 10, 13, 20, 7, 35, 36, 5, 24, 20, 28, 23, 10, 12, 20, 72, 13, 19, 16, 8, 18, 12, 13, 17, 7, 18, 52, 17, 16, 15, 5, 23, 11, 13, 12, 9, 9, 5, 8, 28, 22, 35, 45, 48, 43, 13, 31, 7, 10, 10, 9, 8, 18, 19, 2, 29, 176, 7, 8, 9, 4, 8, 5, 6, 5, 6, 8, 8, 3, 18, 3, 3, 21, 26, 9, 8, 24, 13, 10, 7, 12, 15, 21, 10, 20, 14, 9, 6}},
	Proverbs: {name: "Proverbs", osis: "Prov", verses: []int{33, 22, 35, 27, 23, 35, 27, 36, 18, 32, 31, 28, 25, 35, 33, 33, 28, 24, 29, 30, 31, 29, 35, 34, 28, 28, 27, 28, 27, 33, 31}},
	Ecclesiastes: {name: "Ecclesiastes", osis: "Eccl", verses: []int{18, 26, 22, 16, 20, 12, 29, 17, 18, 20, 10, 14}},
	SongOfSolomon: {name: "Song of Solomon", osis: "Song", verses: []int{17, 17, 11, 16, 16, 13, 13, 14}},
	Isaiah: {name: "Isaiah", osis: "Isa", verses: []int{31, 22, 26, 6, 30, 13, 25, 22, 21, 34, 16, 6, 22, 32, 9, 14, 14, 7, 25, 6, 17, 25, 18, 23, 12, 21, 13, 29, 24, 33, 9, 20, 24, 17, 10, 22, 38, 22, 8, 31, 29, 25, 28, 28, 25, 13, 15, 22, 26, 11, 23, 15, 12, 17, 13, 12, 21, 14, 21, 22, 11, 12, 19, 12, 25, 24}},
	Jeremiah: {name: "Jeremiah", osis: "Jer", verses: []int{19, 37, 25, 31, 31, 30, 34, 22, 26, 25, 23, 17, 27, 22, 21, 21, 27, 23, 15, 18, 14, 30, 40, 10, 38, 24, 22, 17, 32, 24, 40, 44, 26, 22, 19, 32, 21, 28, 18, 16, 18, 22, 13, 30, 5, 28, 7, 47, 39, 46, 64, 34}},
	Lamentations: {name: "Lamentations", osis: "Lam", verses: []int{22, 22, 66, 22, 22}},
	Ezekiel: {name: "Ezekiel", osis: "Ezek", verses: []int{28, 10, 27, 17, 17, 14, 27, 18, 11, 22, 25, 28, 23, 23, 8, 63, 24, 32, 14, 49, 32, 31, 49, 27, 17, 21, 36, 26, 21, 26, 18, 32, 33, 31, 15, 38, 28, 23, 29, 49, 26, 20, 27, 31, 25, 24, 23, 35}},
	Daniel: {name: "Daniel", osis: "Dan", verses: []int{21, 49, 30, 37, 31, 28, 28, 27, 27, 21, 45, 13}},
	Hosea: {name: "Hosea", osis: "Hos", verses: []int{11, 23, 5, 19, 15, 11, 16, 14, 17, 15, 12, 14, 16, 9}},
	Joel: {name: "Joel", osis: "Joel", verses: []int{20, 32, 21}},
	Amos: {name: "Amos", osis: "Amos", verses: []int{15, 16, 15, 13, 27, 14, 17, 14, 15}},
	Obadiah: {name: "Obadiah", osis: "Obad", verses: []int{21}},
	Jonah: {name: "Jonah", osis: "Jonah", verses: []int{17, 10, 10, 11}},
	Micah: {name: "Micah", osis: "Mic", verses: []int{16, 13, 12, 13, 15, 16, 20}},
	Nahum: {name: "Nahum", osis: "Nah", verses: []int{15, 13, 19}},
	Habakkuk: {name: "Habakkuk", osis: "Hab", verses: []int{17, 20, 19}},
	Zephaniah: {name: "Zephaniah", osis: "Zeph", verses: []int{18, 15, 20}},
	Haggai: {name: "Haggai", osis: "Hag", verses: []int{15, 23}},
	Zechariah: {name: "Zechariah", osis: "Zech", verses: []int{21, 13, 10, 14, 11, 15, 14, 23, 17, 12, 17, 14, 9, 21}},
	Malachi: {name: "Malachi", osis: "Mal", verses: []int{14, 17, 18, 6}},
	Matthew: {name: "Matthew", osis: "Matt", verses: []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28, 27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20}},
	Mark: {name: "Mark", osis: "Mark", verses: []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20}},
	Luke: {name: "Luke", osis: "Luke", verses: []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31, 37, 43, 48, 47, 38, 71, 56, 53}},
	John: {name: "John", osis: "John", verses: []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25}},
	Acts: {name: "Acts", osis: "Acts", verses: []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40, 34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31}},
	Romans: {name: "Romans", osis: "Rom", verses: []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27}},
	FirstCorinthians: {name: "1 Corinthians", osis: "1Cor", verses: []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24}},
	SecondCorinthians: {name: "2 Corinthians", osis: "2Cor", verses: []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14}},
	Galatians: {name: "Galatians", osis: "Gal", verses: []int{24, 21, 29, 31, 26, 18}},
	Ephesians: {name: "Ephesians", osis: "Eph", verses: []int{23, 22, 21, 32, 33, 24}},
	Philippians: {name: "Philippians", osis: "Phil", verses: []int{30, 30, 21, 23}},
	Colossians: {name: "Colossians", osis: "Col", verses: []int{29, 23, 25, 18}},
	FirstThessalonians: {name: "1 Thessalonians", osis: "1Thess", verses: []int{10, 20, 13, 18, 28}},
	SecondThessalonians: {name: "2 Thessalonians", osis: "2Thess", verses: []int{12, 17, 18}},
	FirstTimothy: {name: "1 Timothy", osis: "1Tim", verses: []int{20, 15, 16, 16, 25, 21}},
	SecondTimothy: {name: "2 Timothy", osis: "2Tim", verses: []int{18, 26, 17, 22}},
	Titus: {name: "Titus", osis: "Titus", verses: []int{16, 15, 15}},
	Philemon: {name: "Philemon", osis: "Phlm", verses: []int{25}},
	Hebrews: {name: "Hebrews", osis: "Heb", verses: []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25}},
	James: {name: "James", osis: "Jas", verses: []int{27, 26, 18, 17, 20}},
	FirstPeter: {name: "1 Peter", osis: "1Pet", verses: []int{25, 25, 22, 19, 14}},
	SecondPeter: {name: "2 Peter", osis: "2Pet", verses: []int{21, 22, 18}},
	FirstJohn: {name: "1 John", osis: "1John", verses: []int{10, 29, 24, 21, 21}},
	SecondJohn: {name: "2 John", osis: "2John", verses: []int{13}},
	ThirdJohn: {name: "3 John", osis: "3John", verses: []int{14}},
	Jude: {name: "Jude", osis: "Jude", verses: []int{25}},
	Revelation: {name: "Revelation", osis: "Rev", verses: []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21, 18, 24, 21, 15, 27, 21}},
}

// Cumulative offsets, filled at init. verseStart[b] counts the verses before
// book b; chapterStart[b] the chapters.
var (
	verseStart    [BookCount + 1]int
	chapterStart  [BookCount + 1]int
	totalVerses   int
	totalChapters int
)

func init() {
	v, c := 0, 0
	for b := Genesis; b <= Revelation; b++ {
		verseStart[b] = v
		chapterStart[b] = c
		for _, n := range books[b].verses {
			v += n
		}
		c += len(books[b].verses)
	}
	totalVerses = v
	totalChapters = c
}

// ChapterCount returns the number of chapters in a book.
func ChapterCount(b Book) (int, error) {
	if !b.Valid() {
		return 0, &errors.BookError{Book: b.String()}
	}
	return len(books[b].verses), nil
}

// VerseCount returns the number of verses in a chapter.
func VerseCount(b Book, chapter int) (int, error) {
	if !b.Valid() {
		return 0, &errors.BookError{Book: b.String()}
	}
	if chapter < 1 || chapter > len(books[b].verses) {
		return 0, &errors.ChapterError{Book: books[b].name, Chapter: chapter, Chapters: len(books[b].verses)}
	}
	return books[b].verses[chapter-1], nil
}

// TotalVerses returns the verse count of the whole canon.
func TotalVerses() int {
	return totalVerses
}

// TotalChapters returns the chapter count of the whole canon.
func TotalChapters() int {
	return totalChapters
}

// VersePosition returns the 1-based position of a verse counting straight
// through the canon from Genesis 1:1, or 0 for out-of-bounds input.
func VersePosition(b Book, chapter, verse int) int {
	if !b.Valid() || chapter < 1 || chapter > len(books[b].verses) {
		return 0
	}
	if verse < 1 || verse > books[b].verses[chapter-1] {
		return 0
	}
	pos := verseStart[b]
	for _, n := range books[b].verses[:chapter-1] {
		pos += n
	}
	return pos + verse
}

// PositionVerse is the inverse of VersePosition. The final return is false
// when pos is outside [1, TotalVerses()].
func PositionVerse(pos int) (Book, int, int, bool) {
	if pos < 1 || pos > totalVerses {
		return 0, 0, 0, false
	}
	rem := pos
	for b := Genesis; b <= Revelation; b++ {
		for c, n := range books[b].verses {
			if rem <= n {
				return b, c + 1, rem, true
			}
			rem -= n
		}
	}
	return 0, 0, 0, false
}

// ChapterPosition returns the 1-based position of a chapter counting straight
// through the canon from Genesis 1, or 0 for out-of-bounds input.
func ChapterPosition(b Book, chapter int) int {
	if !b.Valid() || chapter < 1 || chapter > len(books[b].verses) {
		return 0
	}
	return chapterStart[b] + chapter
}
