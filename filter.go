package sregx

// Filter flag bits.
const (
	// FilterIndexed adds each kept string's 1-based input index to the
	// result, immediately after the string.
	FilterIndexed = 1 << iota

	// FilterInvert keeps the entries that do not match.
	FilterInvert
)

// Filter compiles pattern once and keeps the entries of values that match
// it, preserving input order. With FilterInvert the sense is flipped: the
// non-matching entries are kept. With FilterIndexed every kept string is
// followed by its 1-based position in values.
//
// Entries that are not strings are never kept, regardless of FilterInvert.
func Filter(values []any, pattern string, flag int) ([]any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	want := flag&FilterInvert == 0
	var out []any
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if re.MatchString(s) != want {
			continue
		}
		out = append(out, s)
		if flag&FilterIndexed != 0 {
			out = append(out, i+1)
		}
	}
	return out, nil
}

// FilterStrings is Filter over a plain string slice, returning the kept
// strings.
func FilterStrings(values []string, pattern string, flag int) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	want := flag&FilterInvert == 0
	var out []string
	for _, s := range values {
		if re.MatchString(s) == want {
			out = append(out, s)
		}
	}
	return out, nil
}
