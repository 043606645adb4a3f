// Package dice implements random roll generation and dice-notation
// parsing. Notation follows the content convention "<count>d<faces>"
// with an optional signed flat modifier, e.g. "2d6+3".
package dice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidNotation reports a dice string that does not match
// <int>d<int>[+|-<int>]. It signals corrupted or mis-authored content;
// callers should refuse the offending action rather than crash.
var ErrInvalidNotation = errors.New("invalid dice notation")

// Notation is the typed result of parsing a dice expression.
type Notation struct {
	Count    int
	Faces    int
	Modifier int
}

// String renders the canonical form of the notation.
func (n Notation) String() string {
	if n.Modifier != 0 {
		return fmt.Sprintf("%dd%d%+d", n.Count, n.Faces, n.Modifier)
	}
	return fmt.Sprintf("%dd%d", n.Count, n.Faces)
}

// notationLexer tokenizes the raw string; whitespace is stripped before
// lexing, matching how content strings are normalized.
var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Die", Pattern: `[dD]`},
	{Name: "Sign", Pattern: `[+-]`},
})

// notationAST is the grammar for the participle parser. The count is
// mandatory: a bare "d6" is rejected instead of silently defaulting.
type notationAST struct {
	Count    int        `parser:"@Int"`
	Faces    int        `parser:"Die @Int"`
	Modifier *signedInt `parser:"@@?"`
}

type signedInt struct {
	Sign  string `parser:"@Sign"`
	Value int    `parser:"@Int"`
}

var notationParser = participle.MustBuild[notationAST](
	participle.Lexer(notationLexer),
)

// ParseNotation parses raw into a Notation or fails with
// ErrInvalidNotation. Partial matches and trailing garbage are errors.
func ParseNotation(raw string) (Notation, error) {
	trimmed := strings.ReplaceAll(raw, " ", "")
	ast, err := notationParser.ParseString("", trimmed)
	if err != nil {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, raw)
	}
	if ast.Count <= 0 {
		return Notation{}, fmt.Errorf("%w: %q rolls zero dice", ErrInvalidNotation, raw)
	}
	if ast.Faces <= 0 {
		return Notation{}, fmt.Errorf("%w: %q has a zero-faced die", ErrInvalidNotation, raw)
	}

	n := Notation{Count: ast.Count, Faces: ast.Faces}
	if ast.Modifier != nil {
		n.Modifier = ast.Modifier.Value
		if ast.Modifier.Sign == "-" {
			n.Modifier = -n.Modifier
		}
	}
	return n, nil
}
