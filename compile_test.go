package rex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func compileT(t *testing.T, pattern string) *Regexp {
	t.Helper()
	re, err := Compile(pattern)
	assert.NilError(t, err)
	return re
}

func TestCompileLiterals(t *testing.T) {
	re := compileT(t, "abc")
	assert.Equal(t, re.tokenCount, 3)
	for i, want := range []byte("abc") {
		tok := re.tokens[i]
		assert.Equal(t, tok.typ, tokLiteral)
		assert.Equal(t, tok.ch, want)
		assert.Equal(t, tok.qmin, 1)
		assert.Equal(t, tok.qmax, 1)
	}
	assert.Equal(t, re.tokens[3].typ, tokEnd)
}

func TestCompileEscapedMetacharIsLiteral(t *testing.T) {
	re := compileT(t, `\.`)
	assert.Equal(t, re.tokenCount, 1)
	assert.Equal(t, re.tokens[0].typ, tokLiteral)
	assert.Equal(t, re.tokens[0].ch, byte('.'))
}

func TestCompileEscapePredicate(t *testing.T) {
	re := compileT(t, `\d`)
	tok := re.tokens[0]
	assert.Equal(t, tok.typ, tokPredicate)
	assert.Equal(t, escapePredicates[tok.meta].b, byte('d'))
}

func TestCompileMetachars(t *testing.T) {
	re := compileT(t, `^$.`)
	assert.Equal(t, re.tokenCount, 3)
	want := []byte{'^', '$', '.'}
	for i, b := range want {
		tok := re.tokens[i]
		assert.Equal(t, tok.typ, tokMetachar)
		assert.Equal(t, metacharPredicates[tok.meta].b, b)
	}
}

func TestCompileTrailingBackslashIsInvalid(t *testing.T) {
	_, err := Compile(`a\`)
	assert.ErrorContains(t, err, "trailing backslash")
	var ce *CompileError
	assert.Equal(t, asCompileError(err, &ce), true)
	assert.Equal(t, ce.Kind, ErrInvalidPattern)
}

func asCompileError(err error, target **CompileError) bool {
	ce, ok := err.(*CompileError)
	if ok {
		*target = ce
	}
	return ok
}

func TestCompileQuantifiers(t *testing.T) {
	cases := []struct {
		pattern  string
		qmin     int
		qmax     int
		greedy   bool
		atomic   bool
	}{
		{"a*", 0, MaxReps, true, false},
		{"a+", 1, MaxReps, true, false},
		{"a?", 0, 1, true, false},
		{"a*?", 0, MaxReps, false, false},
		{"a*+", 0, MaxReps, true, true},
		{"a{2}", 2, 2, true, false},
		{"a{2,}", 2, MaxReps, true, false},
		{"a{2,5}", 2, 5, true, false},
		{"a{2,5}?", 2, 5, false, false},
		{"a{2,5}+", 2, 5, true, true},
	}
	for _, c := range cases {
		re := compileT(t, c.pattern)
		tok := re.tokens[0]
		if tok.qmin != c.qmin || tok.qmax != c.qmax || tok.greedy != c.greedy || tok.atomic != c.atomic {
			t.Errorf("Compile(%q) token = {qmin:%d qmax:%d greedy:%v atomic:%v}, want {%d %d %v %v}",
				c.pattern, tok.qmin, tok.qmax, tok.greedy, tok.atomic, c.qmin, c.qmax, c.greedy, c.atomic)
		}
	}
}

func TestCompileQuantifierWithNothingToRepeat(t *testing.T) {
	_, err := Compile(`*a`)
	assert.ErrorContains(t, err, "nothing to repeat")
}

func TestCompileQuantifierMaxLessThanMinIsNotAnError(t *testing.T) {
	re := compileT(t, `a{5,2}`)
	tok := re.tokens[0]
	assert.Equal(t, tok.qmin, 5)
	assert.Equal(t, tok.qmax, 2)
	// qmax < qmin can never collect enough repetitions to satisfy qmin.
	if re.MatchString("aaaaaa") {
		t.Errorf("a{5,2} should never match, qmax is below qmin")
	}
}

func TestCompileMalformedBraceFallsBackToLiteral(t *testing.T) {
	cases := []struct {
		pattern    string
		tokenCount int
	}{
		{`a{`, 2},
		{`a{x}`, 4},
		{`foo{bar}`, 8},
		{`a{1,x}`, 6},
	}
	for _, c := range cases {
		re := compileT(t, c.pattern)
		assert.Equal(t, re.tokenCount, c.tokenCount)
		for i := 0; i < re.tokenCount; i++ {
			tok := re.tokens[i]
			if tok.typ != tokLiteral {
				t.Errorf("Compile(%q) token[%d].typ = %v, want tokLiteral", c.pattern, i, tok.typ)
			}
			if tok.qmin != 1 || tok.qmax != 1 {
				t.Errorf("Compile(%q) token[%d] quantifier = {%d,%d}, want {1,1}", c.pattern, i, tok.qmin, tok.qmax)
			}
		}
		if !re.MatchString(c.pattern) {
			t.Errorf("Compile(%q) does not match its own literal text %q", c.pattern, c.pattern)
		}
	}
}

func TestCompileBraceQuantifierDefaultsMissingBound(t *testing.T) {
	re := compileT(t, `a{,5}`)
	tok := re.tokens[0]
	assert.Equal(t, tok.qmin, 0)
	assert.Equal(t, tok.qmax, 5)
}

func TestCompileQuantifierLazyAndAtomicTogether(t *testing.T) {
	re := compileT(t, `a*?+`)
	tok := re.tokens[0]
	assert.Equal(t, tok.greedy, false)
	assert.Equal(t, tok.atomic, true)
}

func TestCompileClass(t *testing.T) {
	re := compileT(t, "[A-Fa-f0-9]")
	assert.Equal(t, re.tokenCount, 1)
	tok := re.tokens[0]
	assert.Equal(t, tok.typ, tokClass)

	var ranges []classChar
	for _, cc := range tok.ccl {
		if cc.typ == classEnd {
			break
		}
		ranges = append(ranges, cc)
	}
	assert.Equal(t, len(ranges), 3)
	want := []classChar{
		{typ: classRange, first: 'A', last: 'F'},
		{typ: classRange, first: 'a', last: 'f'},
		{typ: classRange, first: '0', last: '9'},
	}
	if diff := cmp.Diff(want, ranges, cmp.AllowUnexported(classChar{})); diff != "" {
		t.Errorf("class ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileInvertedClass(t *testing.T) {
	re := compileT(t, "[^abc]")
	assert.Equal(t, re.tokens[0].typ, tokInvClass)
}

func TestCompileEmptyClass(t *testing.T) {
	re := compileT(t, "[]")
	tok := re.tokens[0]
	assert.Equal(t, tok.typ, tokClass)
	assert.Equal(t, tok.ccl[0].typ, classEnd)
	// An empty class matches nothing.
	if classMatches(tok.ccl, []byte("x"), 0) {
		t.Errorf("empty class should match nothing")
	}
}

func TestCompileClassWithPredicate(t *testing.T) {
	re := compileT(t, `[\d_]`)
	tok := re.tokens[0]
	assert.Equal(t, tok.ccl[0].typ, classPredicate)
	assert.Equal(t, tok.ccl[1], classChar{typ: classRange, first: '_', last: '_'})
}

func TestCompilePredicateCannotBeRangeEndpoint(t *testing.T) {
	_, err := Compile(`[\d-z]`)
	assert.ErrorContains(t, err, "range endpoint")

	_, err = Compile(`[a-\d]`)
	assert.ErrorContains(t, err, "range endpoint")
}

func TestCompileReversedRangeIsNotAnError(t *testing.T) {
	re := compileT(t, `[z-a]`)
	tok := re.tokens[0]
	assert.Equal(t, tok.ccl[0], classChar{typ: classRange, first: 'z', last: 'a'})
	// A reversed range matches nothing, rather than failing to compile.
	if classMatches(tok.ccl, []byte("m"), 0) {
		t.Errorf("[z-a] should match nothing")
	}
}

func TestCompileTrailingDashInClassIsLiteral(t *testing.T) {
	re := compileT(t, `[a-]`)
	tok := re.tokens[0]
	assert.Equal(t, tok.ccl[0], classChar{typ: classRange, first: 'a', last: 'a'})
	assert.Equal(t, tok.ccl[1], classChar{typ: classRange, first: '-', last: '-'})
}

func TestCompileProgramOverflow(t *testing.T) {
	pattern := ""
	for i := 0; i < MaxTokens+5; i++ {
		pattern += "a"
	}
	_, err := Compile(pattern)
	var ce *CompileError
	assert.Equal(t, asCompileError(err, &ce), true)
	assert.Equal(t, ce.Kind, ErrProgramOverflow)
}
