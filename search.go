package rex

import "bytes"

// searchFrom finds the first match of re's program in text at or after
// from, returning its start offset and length.
func (re *Regexp) searchFrom(text []byte, from int) (start, length int, ok bool) {
	if re.literal != nil {
		return re.searchLiteral(text, from)
	}
	if b, required := re.requiredFirstByte(); required {
		return re.searchByte(text, from, b)
	}
	return re.searchScan(text, from)
}

// searchLiteral uses the compiled literal prefilter to jump directly
// between candidate positions instead of probing every byte.
func (re *Regexp) searchLiteral(text []byte, from int) (int, int, bool) {
	pos := from
	for {
		cand := re.literal.next(text, pos)
		if cand < 0 || cand > len(text) {
			return 0, 0, false
		}
		if n, ok := re.matchAt(text, cand); ok {
			return cand, n, true
		}
		if cand >= len(text) {
			return 0, 0, false
		}
		pos = cand + 1
	}
}

// requiredFirstByte reports whether every match of re's program must
// begin with a specific literal byte, which is true exactly when the
// program's first token is a single, fixed, non-atomic literal — the
// one-byte case the Aho-Corasick prefilter in literal.go doesn't bother
// building a whole automaton for.
func (re *Regexp) requiredFirstByte() (byte, bool) {
	first := re.program()[0]
	if first.typ != tokLiteral || first.qmin != 1 || first.qmax != 1 || !first.greedy || first.atomic {
		return 0, false
	}
	return first.ch, true
}

// searchByte delegates candidate-position scanning to bytes.IndexByte,
// the same "let the standard library find the anchor, then verify"
// shape the teacher's Input.Index uses for its literal prefix, rather
// than probing every position with matchAtom by hand.
func (re *Regexp) searchByte(text []byte, from int, b byte) (int, int, bool) {
	pos := from
	for pos <= len(text) {
		rel := bytes.IndexByte(text[pos:], b)
		if rel < 0 {
			return 0, 0, false
		}
		cand := pos + rel
		if n, ok := re.matchAt(text, cand); ok {
			return cand, n, true
		}
		pos = cand + 1
	}
	return 0, 0, false
}

// searchScan probes every position from..len(text); used when the
// program has no required literal byte or prefix to anchor on (e.g. it
// opens with a class, a predicate, or an anchor).
func (re *Regexp) searchScan(text []byte, from int) (int, int, bool) {
	for pos := from; pos <= len(text); pos++ {
		if n, ok := re.matchAt(text, pos); ok {
			return pos, n, true
		}
	}
	return 0, 0, false
}

// Search reports the first match of re in text.
func (re *Regexp) Search(text []byte) (start, length int, ok bool) {
	return re.searchFrom(text, 0)
}

// search is the Input-generic entry point underneath the Find*/Match*
// family: it reports ErrNoMatch instead of a bare ok=false, giving
// spec.md §7's NO_MATCH error kind a concrete, errors.Is-checkable
// representative for callers who want one.
func (re *Regexp) search(in Input, at int) (start, end int, err error) {
	text := in.Bytes()
	s, length, ok := re.searchFrom(text, at)
	if !ok {
		return 0, 0, ErrNoMatch
	}
	return s, s + length, nil
}

// searchAllIndex returns the [start, end) byte ranges of every
// non-overlapping match of re in text, left to right. A zero-length
// match still advances the scan by one byte so the search always makes
// progress.
func (re *Regexp) searchAllIndex(text []byte) [][2]int {
	var out [][2]int
	pos := 0
	for pos <= len(text) {
		start, length, ok := re.searchFrom(text, pos)
		if !ok {
			break
		}
		out = append(out, [2]int{start, start + length})
		if length > 0 {
			pos = start + length
		} else {
			pos = start + 1
		}
	}
	return out
}

// MatchCount reports how many non-overlapping matches of re occur in
// text.
func (re *Regexp) MatchCount(text []byte) int {
	return len(re.searchAllIndex(text))
}
