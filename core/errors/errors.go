// Package errors provides the error vocabulary shared across the Versicle codebase.
//
// Every failure an operation can report is one of the sentinel kinds below,
// carried by a typed error that records the offending input. Callers match
// kinds with errors.Is and recover the detail with errors.As; no operation
// panics on invalid input.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Typed errors unwrap to exactly one of these.
var (
	// ErrUnknownBook indicates a book identifier outside the canon.
	ErrUnknownBook = errors.New("unknown book")
	// ErrInvalidChapter indicates a chapter out of bounds while building a verse reference.
	ErrInvalidChapter = errors.New("invalid chapter")
	// ErrInvalidVerse indicates a verse out of bounds for its chapter.
	ErrInvalidVerse = errors.New("invalid verse")
	// ErrChapterOutOfRange indicates a chapter beyond the book's chapter count.
	ErrChapterOutOfRange = errors.New("chapter out of range")
	// ErrUnrecognizedBookName indicates a book name no registered language knows.
	ErrUnrecognizedBookName = errors.New("unrecognized book name")
	// ErrUnsupportedLanguage indicates a language code that is not registered.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrGranularityMismatch indicates range endpoints of different granularities.
	ErrGranularityMismatch = errors.New("granularity mismatch")
	// ErrRangeOrder indicates a range whose end precedes its start.
	ErrRangeOrder = errors.New("range end precedes start")
	// ErrMalformedInput indicates text with no parseable reference structure.
	ErrMalformedInput = errors.New("malformed input")
)

// BookError reports an identifier outside the canonical book set.
type BookError struct {
	Book string // offending identifier, OSIS form where available
}

func (e *BookError) Error() string {
	return fmt.Sprintf("unknown book: %s", e.Book)
}

func (e *BookError) Unwrap() error { return ErrUnknownBook }

// ChapterError reports a chapter outside a book's chapter count.
type ChapterError struct {
	Book     string
	Chapter  int
	Chapters int // valid upper bound
}

func (e *ChapterError) Error() string {
	return fmt.Sprintf("%s has no chapter %d (1-%d)", e.Book, e.Chapter, e.Chapters)
}

func (e *ChapterError) Unwrap() error { return ErrChapterOutOfRange }

// VerseChapterError reports an out-of-bounds chapter seen while constructing
// a verse-granularity reference.
type VerseChapterError struct {
	Book     string
	Chapter  int
	Chapters int
}

func (e *VerseChapterError) Error() string {
	return fmt.Sprintf("%s has no chapter %d (1-%d)", e.Book, e.Chapter, e.Chapters)
}

func (e *VerseChapterError) Unwrap() error { return ErrInvalidChapter }

// VerseError reports a verse outside its chapter's verse count.
type VerseError struct {
	Book    string
	Chapter int
	Verse   int
	Verses  int // valid upper bound
}

func (e *VerseError) Error() string {
	return fmt.Sprintf("%s %d has no verse %d (1-%d)", e.Book, e.Chapter, e.Verse, e.Verses)
}

func (e *VerseError) Unwrap() error { return ErrInvalidVerse }

// BookNameError reports a localized book name that resolved to nothing.
type BookNameError struct {
	Name     string // offending input fragment
	Language string
}

func (e *BookNameError) Error() string {
	return fmt.Sprintf("no %s book named %q", e.Language, e.Name)
}

func (e *BookNameError) Unwrap() error { return ErrUnrecognizedBookName }

// LanguageError reports an unregistered language code.
type LanguageError struct {
	Code string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.Code)
}

func (e *LanguageError) Unwrap() error { return ErrUnsupportedLanguage }

// MismatchError reports range endpoints of different granularities.
type MismatchError struct {
	Start string // endpoint descriptions, e.g. "Gen.1.1" and "Exod"
	End   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("range endpoints differ in granularity: %s vs %s", e.Start, e.End)
}

func (e *MismatchError) Unwrap() error { return ErrGranularityMismatch }

// OrderError reports a range whose end precedes its start. The caller's
// order is taken as intentional; it is never silently swapped.
type OrderError struct {
	Start string
	End   string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("range end %s precedes start %s", e.End, e.Start)
}

func (e *OrderError) Unwrap() error { return ErrRangeOrder }

// SyntaxError reports input whose token structure is not a reference.
type SyntaxError struct {
	Input  string // offending input fragment
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("malformed reference: %s", e.Reason)
	}
	return fmt.Sprintf("malformed reference %q: %s", e.Input, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedInput }

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
