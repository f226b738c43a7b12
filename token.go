package rex

// tokenType identifies which payload field of a token is meaningful.
type tokenType int

const (
	tokLiteral   tokenType = iota // Ch is the byte to match
	tokPredicate                  // Meta indexes escapePredicates
	tokMetachar                   // Meta indexes metacharPredicates
	tokClass                      // Ccl is the class-char run to match against
	tokInvClass                   // Ccl is the class-char run; match is inverted
	tokEnd                        // sentinel, terminates the program
)

// MaxReps bounds quantifier counts, mirroring the uint_fast8_t width the
// reference C implementation uses for quantifiermin/quantifiermax.
const MaxReps = 255

// token is one compiled unit of a pattern: an atom plus its quantifier,
// greediness and atomicity. Exactly one of Ch/Meta/Ccl is meaningful,
// selected by Typ.
type token struct {
	typ tokenType

	meta int         // predicate index, for tokPredicate/tokMetachar
	ch   byte        // literal byte, for tokLiteral
	ccl  []classChar // class-char run, for tokClass/tokInvClass

	qmin, qmax int
	greedy     bool
	atomic     bool
}

func newToken(typ tokenType) token {
	return token{typ: typ, qmin: 1, qmax: 1, greedy: true}
}

// fixedCount reports whether the token's quantifier has a single
// possible repetition count, which lets the matcher's iterative fast
// path handle it without backtracking.
func (t token) fixedCount() bool {
	return t.qmin == t.qmax
}
