// Package prefilter provides fast candidate filtering for pattern search
// using required literals.
//
// A prefilter rejects stretches of input that cannot contain a match before
// the backtracking engine does any real work. Single-literal scans front the
// platform-optimised index primitives in the bytes package; multi-literal
// scans build an Aho-Corasick automaton over the required literals of a
// whole pattern set, so one pass over the input answers "can anything here
// still match" for all patterns at once.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// Memchr returns the index of the first occurrence of needle at or after
// from, or -1 if there is none.
func Memchr(haystack []byte, needle byte, from int) int {
	if from < 0 || from >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[from:], needle)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// Memmem returns the index of the first occurrence of needle at or after
// from, or -1 if there is none.
func Memmem(haystack, needle []byte, from int) int {
	if from < 0 || from > len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[from:], needle)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// MultiLiteral scans for the earliest occurrence of any literal in a set.
//
// It answers a weaker question than a single-pattern prefilter: a hit does
// not say which pattern can match or where a match starts, only that some
// required literal occurs. A miss, however, proves that no pattern in the
// set can match anywhere in the scanned region.
type MultiLiteral struct {
	auto *ahocorasick.Automaton
}

// NewMultiLiteral builds a scanner over the given literals. Returns nil if
// the set is empty, contains an empty literal, or the automaton cannot be
// built; callers treat a nil scanner as "no prefilter".
func NewMultiLiteral(literals [][]byte) *MultiLiteral {
	if len(literals) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil
		}
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &MultiLiteral{auto: auto}
}

// Find returns the start of the earliest literal occurrence at or after
// from, or -1 if no literal occurs.
func (m *MultiLiteral) Find(haystack []byte, from int) int {
	if from < 0 || from > len(haystack) {
		return -1
	}
	match := m.auto.Find(haystack, from)
	if match == nil {
		return -1
	}
	return match.Start
}
