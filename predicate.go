package rex

// predicateFunc answers whether position i in text matches, and how many
// bytes were consumed on success (0, 1, or 2 — only the newline predicate
// ever returns 2). On failure the width is meaningless.
type predicateFunc func(text []byte, i int) (matched bool, width int)

// predicateDesc is one entry in a predicate table: the byte that names it
// in pattern text, paired with the function that implements it. The slice
// index doubles as the PredicateIndex stored on tokens and class-chars;
// callers never see the index directly, only the byte.
type predicateDesc struct {
	b  byte
	fn predicateFunc
}

// escapePredicates is the table for backslash-escaped predicates:
// \s \S \d \D \w \W \R \b \B. Order is part of the compiler/matcher's
// private contract; it is never observed outside this package.
var escapePredicates = []predicateDesc{
	{'s', matchWhitespace},
	{'S', matchNotWhitespace},
	{'d', matchDigit},
	{'D', matchNotDigit},
	{'w', matchWordChar},
	{'W', matchNotWordChar},
	{'R', matchNewline},
	{'b', matchWordBoundary},
	{'B', matchNotWordBoundary},
}

// metacharPredicates is the table for unescaped metacharacters: ^ $ .
var metacharPredicates = []predicateDesc{
	{'^', matchStart},
	{'$', matchEnd},
	{'.', matchAny},
}

// findEscapePredicate returns the table index for byte b, or -1 if b does
// not name a predicate.
func findEscapePredicate(b byte) int {
	for i, d := range escapePredicates {
		if d.b == b {
			return i
		}
	}
	return -1
}

func findMetacharPredicate(b byte) int {
	for i, d := range metacharPredicates {
		if d.b == b {
			return i
		}
	}
	return -1
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b) || b == '_'
}

func atEnd(text []byte, i int) bool {
	return i < 0 || i >= len(text)
}

func matchWhitespace(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return isWhitespace(text[i]), 1
}

func matchNotWhitespace(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return !isWhitespace(text[i]), 1
}

func matchDigit(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return isDigit(text[i]), 1
}

func matchNotDigit(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return !isDigit(text[i]), 1
}

func matchWordChar(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return isWordByte(text[i]), 1
}

func matchNotWordChar(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return !isWordByte(text[i]), 1
}

// matchNewline accepts a CRLF pair (consuming 2 bytes) or a lone LF
// (consuming 1).
func matchNewline(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
		return true, 2
	}
	if text[i] == '\n' {
		return true, 1
	}
	return false, 0
}

func wordAt(text []byte, i int) bool {
	if atEnd(text, i) {
		return false
	}
	return isWordByte(text[i])
}

// matchWordBoundary is zero-width: it succeeds where word-ness differs
// across position i, treating both ends of text as non-word.
func matchWordBoundary(text []byte, i int) (bool, int) {
	before := i > 0 && wordAt(text, i-1)
	after := wordAt(text, i)
	return before != after, 0
}

func matchNotWordBoundary(text []byte, i int) (bool, int) {
	before := i > 0 && wordAt(text, i-1)
	after := wordAt(text, i)
	return before == after, 0
}

func matchStart(text []byte, i int) (bool, int) {
	return i == 0, 0
}

func matchEnd(text []byte, i int) (bool, int) {
	return i >= len(text), 0
}

func matchAny(text []byte, i int) (bool, int) {
	if atEnd(text, i) {
		return false, 0
	}
	return true, 1
}
