package nfa

import (
	"fmt"
	"strings"
)

// Dump renders the program in a vaguely comprehensible form: one line per
// node with its position, opcode and resolved next position (0 for none),
// the operand where one is present, then a summary of the optimisation
// hints. Intended for debugging and generated-code listings.
func (p *Program) Dump() string {
	var b strings.Builder

	pc := 1
	op := OpExactly // arbitrary non-END op
	for op != OpEnd {
		op = p.op(pc)
		target := 0
		if nxt := p.next(pc); nxt >= 0 {
			target = nxt
		}
		fmt.Fprintf(&b, "%3d:%s(%d)", pc, op, target)
		pc += 3
		if op == OpAnyOf || op == OpAnyBut || op == OpExactly {
			lit := cstring(p.code, pc)
			fmt.Fprintf(&b, " %q", lit)
			pc += len(lit) + 1
		}
		b.WriteByte('\n')
	}

	if p.start != 0 {
		fmt.Fprintf(&b, "start %q ", p.start)
	}
	if p.anchored {
		b.WriteString("anchored ")
	}
	if p.must != nil {
		fmt.Fprintf(&b, "must have %q", p.must)
	}
	if p.start != 0 || p.anchored || p.must != nil {
		b.WriteByte('\n')
	}
	return b.String()
}
