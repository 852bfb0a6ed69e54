package shell

import (
	"github.com/google/btree"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
)

// Program is the shell's line store, ordered by line number. Entering a
// line with an existing number replaces the stored line.
type Program struct {
	lines *btree.BTreeG[tbast.Line]
}

func lineLess(a, b tbast.Line) bool {
	return a.Number < b.Number
}

// NewProgram creates an empty store
func NewProgram() *Program {
	return &Program{lines: btree.NewG[tbast.Line](4, lineLess)}
}

// Set inserts or replaces lines in order, so the last of several lines with
// the same number wins
func (p *Program) Set(lines ...tbast.Line) {
	for _, line := range lines {
		p.lines.ReplaceOrInsert(line)
	}
}

// Get returns the line stored under number
func (p *Program) Get(number int32) (tbast.Line, bool) {
	return p.lines.Get(tbast.Line{Number: number})
}

// Replace discards the stored lines and stores program instead
func (p *Program) Replace(program tbast.Program) {
	p.Clear()
	p.Set(program...)
}

// Clear removes all lines
func (p *Program) Clear() {
	p.lines.Clear(false)
}

// Len returns the number of stored lines
func (p *Program) Len() int {
	return p.lines.Len()
}

// Lines returns the stored lines in ascending order
func (p *Program) Lines() tbast.Program {
	program := make(tbast.Program, 0, p.lines.Len())
	p.lines.Ascend(func(line tbast.Line) bool {
		program = append(program, line)
		return true
	})
	return program
}

// Source renders the stored lines as program text
func (p *Program) Source() string {
	return p.Lines().Source()
}
