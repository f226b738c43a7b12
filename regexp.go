package rex

import "fmt"

// MaxTokens bounds the size of a compiled program; Compile reports
// ErrProgramOverflow if a pattern would need more token slots.
const MaxTokens = 64

// MaxClassChars bounds the shared class-char buffer every compiled
// Regexp carries; Compile reports ErrProgramOverflow if the class-chars
// needed by all character classes in a pattern would not fit.
const MaxClassChars = 192

// Regexp is a compiled pattern. It is immutable after Compile returns
// and safe for concurrent use by any number of readers — compilation and
// matching are pure functions over their inputs with no shared mutable
// state between calls.
type Regexp struct {
	tokens     [MaxTokens]token
	tokenCount int // index of the END token; tokens[tokenCount] is always tokEnd

	cclbuf   [MaxClassChars]classChar
	cclcount int

	literal *literalPrefilter // nil if the program has no required leading literal
}

// Compile translates pattern into a Regexp. On failure it returns a
// *CompileError (ErrInvalidPattern or ErrProgramOverflow) and a nil
// Regexp.
func Compile(pattern string) (*Regexp, error) {
	re := &Regexp{}
	if err := re.compile(pattern); err != nil {
		return nil, err
	}
	re.literal = buildLiteralPrefilter(re)
	return re, nil
}

// MustCompile is like Compile but panics if pattern cannot be compiled.
// It simplifies safe initialization of global variables holding compiled
// patterns known at compile time to be valid.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("rex: Compile(%q): %v", pattern, err))
	}
	return re
}

// program returns the significant prefix of the token array, including
// the trailing END token.
func (re *Regexp) program() []token {
	return re.tokens[:re.tokenCount+1]
}
