// Package sregx is a small regular expression engine in the classic Spencer
// style, with two string-processing operations built on top of it.
//
// A pattern is compiled into a compact byte program encoding a
// nondeterministic finite automaton, then matched by recursive backtracking.
// The dialect is POSIX-ish: . ^ $ [] \(\) | * + ?, \< and \> word anchors, and
// up to nine capture groups (written ( ) instead with Config.ExCompat). Compilation extracts hints (anchor flag,
// mandatory start byte, must-appear literal) that let execution reject most
// non-matching input without running the automaton.
//
// Basic usage:
//
//	re, err := sregx.Compile(`a\(b+\)c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("xxabbbcyy") {
//	    group, _ := re.Group(1)
//	    fmt.Println(group) // "bbb"
//	}
//
// On top of the engine, Associate splits a string into segments tagged by
// the earliest-matching pattern of a set, and Filter keeps the entries of a
// list that match (or don't match) a pattern.
package sregx

import (
	"github.com/est-mens-in-statera/sregx/nfa"
)

// Regexp represents a compiled regular expression.
//
// The compiled program is immutable, but every Exec overwrites the capture
// spans, so a Regexp must not be shared between goroutines without external
// locking.
type Regexp struct {
	prog    *nfa.Program
	pattern string
}

// Config holds compilation options.
type Config struct {
	// ExCompat selects ex-style grouping: bare ( and ) are metacharacters
	// and \( \) match literal parentheses. Off by default, i.e. grouping is
	// written \( \).
	ExCompat bool
}

// DefaultConfig returns the default compilation options.
func DefaultConfig() Config {
	return Config{}
}

// Compile compiles a regular expression pattern with default options.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, Config{})
}

// CompileWithConfig compiles a pattern with the given options.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	prog, err := nfa.Compile(pattern, config.ExCompat)
	if err != nil {
		return nil, err
	}
	return &Regexp{prog: prog, pattern: pattern}, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("sregx: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// MustCompileWithConfig is CompileWithConfig that panics on error.
func MustCompileWithConfig(pattern string, config Config) *Regexp {
	re, err := CompileWithConfig(pattern, config)
	if err != nil {
		panic("sregx: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source text used to compile the regular expression.
func (r *Regexp) String() string {
	return r.pattern
}

// Program returns the compiled program.
func (r *Regexp) Program() *nfa.Program {
	return r.prog
}

// NumSubexp returns the number of capture slots in use, including slot 0
// for the whole match.
func (r *Regexp) NumSubexp() int {
	return r.prog.NumGroups()
}

// Exec matches the pattern against b and reports whether it matched
// anywhere. On success the capture spans are recorded and stay readable
// through Group and GroupIndex until the next Exec. The spans index into b;
// they are valid only while b is live and unmodified.
func (r *Regexp) Exec(b []byte) bool {
	return r.prog.Exec(b)
}

// ExecString is Exec on the bytes of s.
func (r *Regexp) ExecString(s string) bool {
	return r.prog.ExecString(s)
}

// Match reports whether b contains any match of the pattern.
func (r *Regexp) Match(b []byte) bool {
	return r.prog.Exec(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	return r.prog.ExecString(s)
}

// GroupIndex returns the span of capture group k from the last successful
// Exec as a two-element [start, end] slice, or nil if the group did not
// participate. Group 0 is the whole match.
func (r *Regexp) GroupIndex(k int) []int {
	start, end, ok := r.prog.Group(k)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// Group returns the text captured by group k in the last successful Exec.
// ok is false if the group did not participate.
func (r *Regexp) Group(k int) (text string, ok bool) {
	b := r.prog.GroupBytes(k)
	if b == nil {
		return "", false
	}
	return string(b), true
}

// Substitute expands template into dst using the captures of the last
// successful Exec; see the Program method of the same name for the template
// syntax and the buffer budget.
func (r *Regexp) Substitute(template string, dst []byte) (end int, err error) {
	return r.prog.Substitute(template, dst)
}

// Expand is Substitute into a fresh buffer of the given capacity, returned
// as a string.
func (r *Regexp) Expand(template string, capacity int) (string, error) {
	dst := make([]byte, capacity)
	end, err := r.prog.Substitute(template, dst)
	if err != nil {
		return "", err
	}
	return string(dst[:end]), nil
}

// MatchOne compiles pattern and reports whether input contains a match.
// Convenience for one-shot tests; compile the pattern once when matching
// repeatedly.
func MatchOne(input, pattern string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal
// text under the default configuration. Parentheses are left as they are,
// since bare ( and ) are literal there.
func QuoteMeta(s string) string {
	const meta = `^$.[]|?+*\`

	n := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i], meta) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isMeta(s[i], meta) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// isMeta returns true if c is in the metacharacter string.
func isMeta(c byte, meta string) bool {
	for i := 0; i < len(meta); i++ {
		if c == meta[i] {
			return true
		}
	}
	return false
}
