package rex

import "io"

// Match reports whether text contains any match of re.
func (re *Regexp) Match(text []byte) bool {
	_, _, ok := re.Search(text)
	return ok
}

// MatchString is the string equivalent of Match.
func (re *Regexp) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// MatchReader reads r to completion and reports whether it contains
// any match of re.
func (re *Regexp) MatchReader(r io.Reader) (bool, error) {
	in, err := readerInput(r)
	if err != nil {
		return false, err
	}
	return re.Match(in.Bytes()), nil
}

// FindIndex returns a two-element slice holding the [start, end) byte
// offsets of the first match, or nil if there is none.
func (re *Regexp) FindIndex(text []byte) []int {
	start, end, err := re.search(bytesInput(text), 0)
	if err != nil {
		return nil
	}
	return []int{start, end}
}

// Find returns the bytes of the first match, or nil if there is none.
func (re *Regexp) Find(text []byte) []byte {
	loc := re.FindIndex(text)
	if loc == nil {
		return nil
	}
	return text[loc[0]:loc[1]]
}

// FindStringIndex is the string equivalent of FindIndex.
func (re *Regexp) FindStringIndex(s string) []int {
	start, end, err := re.search(stringInput(s), 0)
	if err != nil {
		return nil
	}
	return []int{start, end}
}

// FindString returns the text of the first match, or "" if there is
// none. A zero-length match is indistinguishable from no match; use
// FindStringIndex to tell them apart.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindAllIndex returns the [start, end) byte offsets of every
// non-overlapping match, in order, or nil if there are none. A
// negative n returns all matches; otherwise at most n are returned.
func (re *Regexp) FindAllIndex(text []byte, n int) [][]int {
	all := re.searchAllIndex(text)
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	if len(all) == 0 {
		return nil
	}
	out := make([][]int, len(all))
	for i, m := range all {
		out[i] = []int{m[0], m[1]}
	}
	return out
}

// FindAll returns the bytes of every non-overlapping match.
func (re *Regexp) FindAll(text []byte, n int) [][]byte {
	locs := re.FindAllIndex(text, n)
	if locs == nil {
		return nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = text[loc[0]:loc[1]]
	}
	return out
}

// FindAllStringIndex is the string equivalent of FindAllIndex.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	return re.FindAllIndex([]byte(s), n)
}

// FindAllString returns the text of every non-overlapping match.
func (re *Regexp) FindAllString(s string, n int) []string {
	locs := re.FindAllStringIndex(s, n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// MatchString compiles pattern and reports whether it matches s
// anywhere. Callers compiling the same pattern repeatedly should call
// Compile once and reuse the *Regexp instead.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Match compiles pattern and reports whether it matches text anywhere.
func Match(pattern string, text []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(text), nil
}
