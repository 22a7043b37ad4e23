package sregx

import (
	"errors"

	"github.com/est-mens-in-statera/sregx/prefilter"
)

// ErrSizeMismatch is returned by Associate when the pattern and token
// arrays have different lengths.
var ErrSizeMismatch = errors.New("pattern and token array sizes must be identical")

// segment is one recorded pattern hit: which pattern, and where in the
// input its match lies.
type segment struct {
	tok   int
	begin int
	end   int
}

// Associate splits str into segments tagged by the patterns that matched
// them. patterns and tokens must have equal length; tokens[i] tags segments
// matched by patterns[i] and def tags the stretches in between.
//
// The input is walked left to right. At each step the earliest match of any
// pattern in the remainder wins, ties broken by pattern order; the cursor
// then jumps past it. A zero-length winning match is recorded and the
// cursor advances one byte, so patterns that match the empty string cannot
// loop. When no pattern matches the remainder, it becomes the final
// segment.
//
// The returned slices have equal length 2*M+1 for M matched segments,
// alternating untouched and matched stretches; concatenating the segments
// yields str exactly.
//
//	Associate("testhahatest", []string{"haha", "te"}, []any{2, 3}, 4)
//	// segments: ["", "te", "st", "haha", "", "te", "st"]
//	// tags:     [ 4,    3,    4,    2,    4,   3,    4]
func Associate(str string, patterns []string, tokens []any, def any) (segments []string, tags []any, err error) {
	if len(patterns) != len(tokens) {
		return nil, nil, ErrSizeMismatch
	}
	if len(patterns) == 0 {
		return []string{str}, []any{def}, nil
	}

	progs := make([]*Regexp, len(patterns))
	for i, pat := range patterns {
		re, err := Compile(pat)
		if err != nil {
			return nil, nil, err
		}
		progs[i] = re
	}

	// When every pattern carries a required literal, one automaton pass
	// over the remainder can prove that nothing further matches and cut
	// the walk short.
	pf := multiLiteralScanner(progs)

	input := []byte(str)
	var matches []segment
	cursor := 0
	for cursor < len(input) {
		rem := input[cursor:]
		if pf != nil && pf.Find(rem, 0) < 0 {
			break
		}

		best, bestStart := -1, -1
		for i, re := range progs {
			if !re.Exec(rem) {
				continue
			}
			start := re.GroupIndex(0)[0]
			if start == 0 {
				best, bestStart = i, 0
				break
			}
			if bestStart < 0 || start < bestStart {
				best, bestStart = i, start
			}
		}
		if best < 0 {
			break
		}

		span := progs[best].GroupIndex(0)
		m := segment{tok: best, begin: cursor + span[0], end: cursor + span[1]}
		matches = append(matches, m)
		cursor = m.end
		if m.begin == cursor { // zero-length match: force progress
			cursor++
			if cursor >= len(input) {
				break
			}
		}
	}

	segments = make([]string, 0, 2*len(matches)+1)
	tags = make([]any, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		segments = append(segments, str[prev:m.begin])
		tags = append(tags, def)
		segments = append(segments, str[m.begin:m.end])
		tags = append(tags, tokens[m.tok])
		prev = m.end
	}
	segments = append(segments, str[prev:])
	tags = append(tags, def)
	return segments, tags, nil
}

// multiLiteralScanner builds a scanner over the required literals of all
// patterns, or nil when any pattern lacks one.
func multiLiteralScanner(progs []*Regexp) *prefilter.MultiLiteral {
	literals := make([][]byte, 0, len(progs))
	for _, re := range progs {
		lit := re.prog.RequiredLiteral()
		if lit == nil {
			return nil
		}
		literals = append(literals, lit)
	}
	return prefilter.NewMultiLiteral(literals)
}
