package nfa

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"nested_star_star", `a**`, ErrNestedRepeat},
		{"nested_star_plus", `a*+`, ErrNestedRepeat},
		{"nested_query", `a?*`, ErrNestedRepeat},
		{"unclosed_group", `\(a`, ErrUnmatchedParen},
		{"stray_close", `a\)`, ErrUnmatchedParen},
		{"unclosed_class", `[a`, ErrUnmatchedBracket},
		{"inverted_range", `[z-a]`, ErrInvalidRange},
		{"stray_bracket", `a]`, ErrUnexpectedBracket},
		{"lone_bracket", `]`, ErrUnexpectedBracket},
		{"trailing_backslash", `ab\`, ErrTrailingBackslash},
		{"brace_operator", `a\{2\}`, ErrUnsupportedOp},
		{"star_first", `*a`, ErrStarNothing},
		{"plus_first", `+a`, ErrPlusNothing},
		{"query_first", `?a`, ErrQueryNothing},
		{"star_after_or", `a|*`, ErrStarNothing},
		{"empty_star_operand", `\(a*\)*`, ErrEmptyRepeat},
		{"empty_plus_operand", `\(a*\)+`, ErrEmptyRepeat},
		{"zero_width_star", `\(^\)*`, ErrEmptyRepeat},
		{"too_many_groups", strings.Repeat(`\(`, 10) + "a" + strings.Repeat(`\)`, 10), ErrTooManyParens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, false)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error %v", tt.pattern, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Errorf("Compile(%q) error is not a *CompileError: %v", tt.pattern, err)
			} else if ce.Pattern != tt.pattern {
				t.Errorf("CompileError.Pattern = %q, want %q", ce.Pattern, tt.pattern)
			}
		})
	}
}

func TestCompileNineGroupsOK(t *testing.T) {
	pattern := strings.Repeat(`\(`, 9) + "a" + strings.Repeat(`\)`, 9)
	prog, err := Compile(pattern, false)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	if got := prog.NumGroups(); got != 10 {
		t.Errorf("NumGroups() = %d, want 10", got)
	}
}

func TestCompileSizeLimit(t *testing.T) {
	// Each class node takes 3 header bytes plus a 27-byte operand, so 1200
	// of them overflow the two-byte offset encoding.
	pattern := strings.Repeat(`[a-z]`, 1200)
	_, err := Compile(pattern, false)
	if !errors.Is(err, ErrTooBig) {
		t.Errorf("Compile(big) error = %v, want %v", err, ErrTooBig)
	}
}

func TestCompileEmptyPattern(t *testing.T) {
	prog, err := Compile("", false)
	if err != nil {
		t.Fatalf("Compile(\"\") error: %v", err)
	}
	if !prog.Exec(nil) {
		t.Error("empty pattern does not match empty input")
	}
	if !prog.Exec([]byte("abc")) {
		t.Error("empty pattern does not match non-empty input")
	}
	if start, end, ok := prog.Group(0); !ok || start != 0 || end != 0 {
		t.Errorf("Group(0) = (%d, %d, %v), want (0, 0, true)", start, end, ok)
	}
}

func TestProgramMagic(t *testing.T) {
	prog, err := Compile("abc", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := prog.Bytes()[0]; got != Magic {
		t.Errorf("program[0] = %#o, want %#o", got, Magic)
	}
	if err := prog.Valid(); err != nil {
		t.Errorf("Valid() = %v, want nil", err)
	}

	prog.Bytes()[0] = 0 // simulate corruption
	if err := prog.Valid(); !errors.Is(err, ErrCorrupted) {
		t.Errorf("Valid() after corruption = %v, want %v", err, ErrCorrupted)
	}
	if prog.Exec([]byte("abc")) {
		t.Error("corrupted program reported a match")
	}
}

func TestCompileHints(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		start    byte
		anchored bool
		must     string // "" = none
	}{
		{"literal", `abc`, 'a', false, ""},
		{"anchored", `^abc`, 0, true, ""},
		{"star_then_literal", `.*foo`, 0, false, "foo"},
		{"longest_literal", `a*b.longest`, 0, false, "longest"},
		{"tie_goes_later", `.*ab.cd`, 0, false, "cd"},
		{"alternation_no_hints", `abc|xyz`, 0, false, ""},
		{"class_start", `[ab]c`, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Compile(tt.pattern, false)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			if got := prog.StartByte(); got != tt.start {
				t.Errorf("StartByte() = %q, want %q", got, tt.start)
			}
			if got := prog.Anchored(); got != tt.anchored {
				t.Errorf("Anchored() = %v, want %v", got, tt.anchored)
			}
			var want []byte
			if tt.must != "" {
				want = []byte(tt.must)
			}
			if got := prog.MustLiteral(); !bytes.Equal(got, want) {
				t.Errorf("MustLiteral() = %q, want %q", got, want)
			}
		})
	}
}

func TestRequiredLiteral(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string // "" = none
	}{
		{"must_literal", `.*foo`, "foo"},
		{"start_byte", `abc`, "a"},
		{"anchored_none", `^abc`, ""},
		{"no_hints", `[ab]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Compile(tt.pattern, false)
			if err != nil {
				t.Fatal(err)
			}
			var want []byte
			if tt.want != "" {
				want = []byte(tt.want)
			}
			if got := prog.RequiredLiteral(); !bytes.Equal(got, want) {
				t.Errorf("RequiredLiteral() = %q, want %q", got, want)
			}
		})
	}
}

func TestTokenizeEscapes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"escaped_dot_literal", `a\.c`, "a.c", true},
		{"escaped_dot_no_any", `a\.c`, "axc", false},
		{"backslash_backslash", `a\\c`, `a\c`, true},
		{"control_escapes", `\t\r\b`, "\t\r\b", true},
		{"escaped_star", `a\*`, "a*", true},
		{"escaped_bracket", `a\]b`, "a]b", true},
		{"unknown_escape_is_literal", `\q`, "q", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Compile(tt.pattern, false)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
			}
			if got := prog.ExecString(tt.input); got != tt.want {
				t.Errorf("Exec(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExCompat(t *testing.T) {
	// With excompat, bare parentheses are grouping and \( \) are literal;
	// the default is the other way around.
	prog, err := Compile(`(b+)`, true)
	if err != nil {
		t.Fatal(err)
	}
	if prog.NumGroups() != 2 {
		t.Errorf("NumGroups() = %d, want 2", prog.NumGroups())
	}
	if !prog.ExecString("abbc") {
		t.Fatal("no match")
	}
	if got := string(prog.GroupBytes(1)); got != "bb" {
		t.Errorf("group 1 = %q, want %q", got, "bb")
	}

	lit, err := Compile(`\(b\)`, true)
	if err != nil {
		t.Fatal(err)
	}
	if lit.NumGroups() != 1 {
		t.Errorf("literal parens created a group: NumGroups() = %d", lit.NumGroups())
	}
	if !lit.ExecString("a(b)c") {
		t.Error("escaped parens did not match literally")
	}

	def, err := Compile(`(b)`, false)
	if err != nil {
		t.Fatal(err)
	}
	if def.NumGroups() != 1 {
		t.Errorf("default mode treated bare parens as a group")
	}
	if !def.ExecString("x(b)y") {
		t.Error("default mode did not match literal parens")
	}
}
