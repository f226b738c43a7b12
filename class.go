package rex

// classCharType identifies what kind of element a ClassChar is.
type classCharType int

const (
	classPredicate classCharType = iota // a predicate reference, e.g. \d inside [...]
	classRange                          // a byte range [first..last], first==last for a single byte
	classEnd                            // CCL_END sentinel
)

// classChar is one element of a compiled character class, stored
// slot-by-slot in Regexp.cclbuf. A CLASS/INVCLASS token points at the
// first classChar of its run and relies on a classEnd sentinel
// immediately following the last one.
type classChar struct {
	typ   classCharType
	meta  int  // PredicateIndex into escapePredicates, for classPredicate
	first byte // for classRange
	last  byte // for classRange
}

// matches reports whether the class-char accepts the byte at position i.
// Only classRange and classPredicate are ever tested; classEnd is a
// sentinel and never reached here.
func (c classChar) matches(text []byte, i int) bool {
	switch c.typ {
	case classPredicate:
		ok, _ := escapePredicates[c.meta].fn(text, i)
		return ok
	case classRange:
		if atEnd(text, i) {
			return false
		}
		b := text[i]
		return b >= c.first && b <= c.last
	default:
		return false
	}
}

// classMatches walks a contiguous run of class-chars (terminated by
// classEnd) and reports whether any member matches at position i.
func classMatches(ccl []classChar, text []byte, i int) bool {
	for _, c := range ccl {
		if c.typ == classEnd {
			break
		}
		if c.matches(text, i) {
			return true
		}
	}
	return false
}
