package ir

import "strings"

// Dump renders the program as one instruction per line, in emission
// order.
func (p *Program) Dump() string {
	lines := make([]string, len(p.Instructions))
	for i, instr := range p.Instructions {
		lines[i] = instr.Dump()
	}
	return strings.Join(lines, "\n")
}
