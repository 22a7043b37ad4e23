package nfa

import (
	"bytes"

	"github.com/est-mens-in-statera/sregx/prefilter"
)

// matcher holds the state of one Exec call: the input, a cursor into it,
// and the program whose capture slots it fills in.
type matcher struct {
	prog  *Program
	input []byte
	pos   int
}

func isWordPart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// Exec matches the program against input and reports whether it matched
// anywhere. On success the capture slots record where; see Group. On
// failure after at least one attempt the slots are cleared.
//
// Programs failing the magic check never match; use Valid once at
// construction to distinguish corruption from an ordinary miss.
func (p *Program) Exec(input []byte) bool {
	if p.Valid() != nil {
		return false
	}

	// If there is a "must appear" literal, look for it before doing any
	// real work.
	if p.must != nil && prefilter.Memmem(input, p.must, 0) < 0 {
		return false
	}

	m := &matcher{prog: p, input: input}

	// Simplest case: an anchored match need be tried only once.
	if p.anchored {
		return m.try(0)
	}

	if p.start != 0 {
		// We know what byte a match must start with.
		for at := 0; ; at++ {
			at = prefilter.Memchr(input, p.start, at)
			if at < 0 {
				return false
			}
			if m.try(at) {
				return true
			}
		}
	}

	// General case: every position, including the one past the last byte.
	for at := 0; at <= len(input); at++ {
		if m.try(at) {
			return true
		}
	}
	return false
}

// ExecString is Exec on the bytes of s.
func (p *Program) ExecString(s string) bool {
	return p.Exec([]byte(s))
}

// try attempts a match starting at origin.
func (m *matcher) try(origin int) bool {
	m.pos = origin
	p := m.prog
	for i := range p.startp {
		p.startp[i] = -1
		p.endp[i] = -1
	}
	if m.match(1) {
		p.startp[0] = origin
		p.endp[0] = m.pos
		p.src = m.input
		return true
	}
	return false
}

// match runs the node chain starting at pc against the input cursor.
//
// Conceptually: check whether the current node matches, recurse to see
// whether the rest does, act accordingly. In practice ordinary nodes that
// do not need to know whether the rest failed are walked by the loop
// instead; only branching and capturing nodes recurse.
func (m *matcher) match(pc int) bool {
	prog := m.prog
	in := m.input
	scan := pc
	for scan >= 0 {
		next := prog.next(scan)
		op := prog.op(scan)
		switch {
		case op == OpBOL:
			if m.pos != 0 {
				return false
			}
		case op == OpEOL:
			if m.pos != len(in) {
				return false
			}
		case op == OpAny:
			if m.pos >= len(in) || in[m.pos] == 0 {
				return false
			}
			m.pos++
		case op == OpWordStart:
			if m.pos == 0 {
				break
			}
			if m.pos >= len(in) || isWordPart(in[m.pos-1]) || !isWordPart(in[m.pos]) {
				return false
			}
		case op == OpWordEnd:
			if m.pos >= len(in) {
				break
			}
			if m.pos == 0 || !isWordPart(in[m.pos-1]) || isWordPart(in[m.pos]) {
				return false
			}
		case op == OpExactly:
			lit := prog.literal(operand(scan))
			// Inline the first byte, for speed.
			if m.pos >= len(in) || in[m.pos] != lit[0] {
				return false
			}
			if len(lit) > 1 && !bytes.HasPrefix(in[m.pos:], lit) {
				return false
			}
			m.pos += len(lit)
		case op == OpAnyOf:
			if m.pos >= len(in) || in[m.pos] == 0 ||
				bytes.IndexByte(prog.literal(operand(scan)), in[m.pos]) < 0 {
				return false
			}
			m.pos++
		case op == OpAnyBut:
			if m.pos >= len(in) || in[m.pos] == 0 ||
				bytes.IndexByte(prog.literal(operand(scan)), in[m.pos]) >= 0 {
				return false
			}
			m.pos++
		case op == OpNothing, op == OpBack:
			// zero-width; fall through to next
		case op > OpOpen && op < OpOpen+NumSubexp:
			no := int(op - OpOpen)
			save := m.pos
			if !m.match(next) {
				return false
			}
			// Don't set the span if some later invocation of the same
			// parentheses already has.
			if prog.startp[no] < 0 {
				prog.startp[no] = save
			}
			return true
		case op > OpClose && op < OpClose+NumSubexp:
			no := int(op - OpClose)
			save := m.pos
			if !m.match(next) {
				return false
			}
			if prog.endp[no] < 0 {
				prog.endp[no] = save
			}
			return true
		case op == OpBranch:
			if next < 0 || prog.op(next) != OpBranch { // no choice
				scan = operand(scan) // avoid recursion
				continue
			}
			for scan >= 0 && prog.op(scan) == OpBranch {
				save := m.pos
				if m.match(operand(scan)) {
					return true
				}
				m.pos = save
				scan = prog.next(scan)
			}
			return false
		case op == OpStar, op == OpPlus:
			// Look ahead to skip match attempts when the following byte is
			// already known.
			var nextch byte
			if next >= 0 && prog.op(next) == OpExactly {
				nextch = prog.code[operand(next)]
			}
			min := 0
			if op == OpPlus {
				min = 1
			}
			save := m.pos
			count := m.repeat(operand(scan))
			for count >= min {
				// If it could work, try it.
				if nextch == 0 || (m.pos < len(in) && in[m.pos] == nextch) {
					if m.match(next) {
						return true
					}
				}
				// Couldn't or didn't -- back up.
				count--
				m.pos = save + count
			}
			return false
		case op == OpEnd:
			return true
		default:
			return false // memory corruption
		}
		scan = next
	}
	// Normally OpEnd is the terminating point; falling off the chain means
	// the next pointers are damaged.
	return false
}

// repeat consumes maximal consecutive matches of the simple node at pc and
// reports how many.
func (m *matcher) repeat(pc int) int {
	prog := m.prog
	in := m.input
	count := 0
	switch prog.op(pc) {
	case OpAny:
		for m.pos < len(in) && in[m.pos] != 0 {
			m.pos++
			count++
		}
	case OpExactly:
		ch := prog.code[operand(pc)]
		for m.pos < len(in) && in[m.pos] == ch {
			m.pos++
			count++
		}
	case OpAnyOf:
		set := prog.literal(operand(pc))
		for m.pos < len(in) && in[m.pos] != 0 && bytes.IndexByte(set, in[m.pos]) >= 0 {
			m.pos++
			count++
		}
	case OpAnyBut:
		set := prog.literal(operand(pc))
		for m.pos < len(in) && in[m.pos] != 0 && bytes.IndexByte(set, in[m.pos]) < 0 {
			m.pos++
			count++
		}
	}
	return count
}
