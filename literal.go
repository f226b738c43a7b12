package rex

import "github.com/coregx/ahocorasick"

// literalPrefilter lets the search driver skip straight to candidate
// positions instead of probing the full matcher at every byte, when a
// pattern opens with a run of fixed single-byte literals.
type literalPrefilter struct {
	lit       []byte
	automaton *ahocorasick.Automaton
}

// buildLiteralPrefilter inspects the maximal leading run of exactly-one,
// greedy, non-atomic literal tokens and, if it's at least two bytes
// long, compiles it into a single-pattern Aho-Corasick automaton.
// Shorter runs aren't worth the automaton's setup cost, so nil is
// returned and the search driver falls back to a byte scan.
func buildLiteralPrefilter(re *Regexp) *literalPrefilter {
	var lit []byte
	for _, t := range re.program() {
		if t.typ == tokEnd {
			break
		}
		if t.typ != tokLiteral || t.qmin != 1 || t.qmax != 1 || !t.greedy || t.atomic {
			break
		}
		lit = append(lit, t.ch)
	}
	if len(lit) < 2 {
		return nil
	}

	b := ahocorasick.NewBuilder()
	b.AddPattern(lit)
	automaton, err := b.Build()
	if err != nil {
		return nil
	}
	return &literalPrefilter{lit: lit, automaton: automaton}
}

// next returns the smallest offset >= from at which the literal prefix
// occurs in text, or -1 if it does not occur again.
func (lp *literalPrefilter) next(text []byte, from int) int {
	m := lp.automaton.Find(text, from)
	if m == nil {
		return -1
	}
	return m.Start
}
