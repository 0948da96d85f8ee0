package domain

import "fmt"

// Block names one contiguous node range of a heterogeneous graph.
type Block int

// Node blocks in layout order.
const (
	BlockMethods Block = iota
	BlockStatements
	BlockTests
)

func (b Block) String() string {
	switch b {
	case BlockMethods:
		return "methods"
	case BlockStatements:
		return "statements"
	case BlockTests:
		return "tests"
	}

	return fmt.Sprintf("block(%d)", int(b))
}

// Span is the offset and length of a block.
type Span struct {
	Offset int
	Len    int
}

// End returns the exclusive upper bound of the span.
func (s Span) End() int {
	return s.Offset + s.Len
}

// BlockLayout places methods, statements and tests of one test view
// contiguously: methods | statements | tests.
type BlockLayout struct {
	Methods    Span
	Statements Span
	Tests      Span
}

// NewBlockLayout returns the layout for the given block sizes.
func NewBlockLayout(methods, statements, tests int) BlockLayout {
	return BlockLayout{
		Methods:    Span{Offset: 0, Len: methods},
		Statements: Span{Offset: methods, Len: statements},
		Tests:      Span{Offset: methods + statements, Len: tests},
	}
}

// Size returns the total number of nodes.
func (l BlockLayout) Size() int {
	return l.Tests.End()
}

// Core returns the number of method and statement nodes, the range shared
// by the passed and failed views.
func (l BlockLayout) Core() int {
	return l.Statements.End()
}

// Span returns the span of block b.
func (l BlockLayout) Span(b Block) Span {
	switch b {
	case BlockStatements:
		return l.Statements
	case BlockTests:
		return l.Tests
	}

	return l.Methods
}

// Node returns the global node index of entity i of block b.
func (l BlockLayout) Node(b Block, i int) int {
	return l.Span(b).Offset + i
}
