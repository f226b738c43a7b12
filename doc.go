// Package rex implements a small, restricted regular-expression engine:
// a compiler that turns pattern text into a fixed-size token program,
// and a two-phase backtracking matcher that runs that program against
// byte text.
//
// The dialect is deliberately narrow. There is no Unicode awareness —
// matching is byte-oriented, not rune-oriented. There are no capture
// groups, no alternation, no grouping parentheses, no lookaround, no
// backreferences, and no case-insensitive or multi-line modes. What
// remains is literal bytes, the anchors ^ and $, the dot metacharacter,
// backslash-escaped predicates (\s \S \d \D \w \W \R \b \B), bracketed
// character classes with ranges, and quantifiers (* + ? and {m,n}) with
// optional lazy (?) or atomic/possessive (+) suffixes.
package rex
