package nfa

import "bytes"

// Substitute expands template into dst using the captures of the last
// successful Exec. In the template, & expands to the whole match and \0
// through \9 to the corresponding capture; \\ and \& produce a literal
// backslash and ampersand; every other byte is copied verbatim. A reference
// to a group that did not participate contributes nothing.
//
// The budget is len(dst) including one byte for a terminating NUL, which is
// written so expansions can be chained C-style: the returned cursor is the
// index of that terminator, and a follow-up call may continue at dst[end:].
// When the budget runs out the output is abandoned and ErrLineTooLong is
// returned; bytes already written must not be relied on.
func (p *Program) Substitute(template string, dst []byte) (end int, err error) {
	if p == nil || len(p.code) == 0 || p.code[0] != Magic {
		return 0, ErrDamagedProgram
	}
	n := len(dst)
	di := 0
	for si := 0; si < len(template); {
		c := template[si]
		si++

		no := -1
		if c == '&' {
			no = 0
		} else if c == '\\' && si < len(template) && template[si] >= '0' && template[si] <= '9' {
			no = int(template[si] - '0')
			si++
		}

		if no < 0 { // ordinary character
			if c == '\\' && si < len(template) && (template[si] == '\\' || template[si] == '&') {
				c = template[si]
				si++
			}
			n--
			if n < 0 {
				return 0, ErrLineTooLong
			}
			dst[di] = c
			di++
		} else if p.startp[no] >= 0 && p.endp[no] >= 0 {
			seg := p.src[p.startp[no]:p.endp[no]]
			n -= len(seg)
			if n < 0 {
				return 0, ErrLineTooLong
			}
			copy(dst[di:], seg)
			di += len(seg)
			if len(seg) != 0 && bytes.IndexByte(seg, 0) >= 0 {
				return 0, ErrDamagedMatch
			}
		}
	}
	n--
	if n < 0 {
		return 0, ErrLineTooLong
	}
	dst[di] = 0
	return di, nil
}
