// Package reftext parses and formats scripture references in the registered
// languages. Parsing is lenient about case, whitespace and delimiter
// variants; formatting always emits one canonical spelling per language.
package reftext

import (
	"slices"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/locale"
)

// tail is the numeric part of a reference after the book name: a chapter
// number optionally followed by a separator and a verse number. The input
// is already lowercased and stripped of whitespace, so the lexer only sees
// digits and delimiter runes.
//
//nolint:govet // participle grammar tags are not standard struct tags
type tail struct {
	Chapter int      `@Int`
	Verse   *tailsep `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type tailsep struct {
	Sep   string `@Sep`
	Verse int    `@Int`
}

// tailLexer tokenizes numeric tails. Sep covers the union of every
// registered language's chapter-verse delimiters; whether a given one is
// allowed is checked against the language after parsing.
var tailLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Sep", Pattern: `[:,\x{ff1a}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var tailParser = participle.MustBuild[tail](
	participle.Lexer(tailLexer),
	participle.Elide("Whitespace"),
)

// numtail is a parsed numeric tail. hasVerse distinguishes a bare chapter
// from an explicit verse, so "3:0" still reaches verse validation.
type numtail struct {
	chapter  int
	verse    int
	hasVerse bool
}

// parseTail parses the numeric tail of one reference endpoint. The
// separator, when present, must be one the language accepts.
func parseTail(s, input string, lang *locale.Language) (numtail, error) {
	parsed, err := tailParser.ParseString("", s)
	if err != nil {
		return numtail{}, &errors.SyntaxError{Input: input, Reason: err.Error()}
	}
	if parsed.Verse == nil {
		return numtail{chapter: parsed.Chapter}, nil
	}
	if !slices.Contains(lang.ChapterVerseSeps, parsed.Verse.Sep) {
		return numtail{}, &errors.SyntaxError{
			Input:  input,
			Reason: "separator " + parsed.Verse.Sep + " not used in " + lang.Code,
		}
	}
	return numtail{chapter: parsed.Chapter, verse: parsed.Verse.Verse, hasVerse: true}, nil
}
