package domain

import (
	"fmt"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"gonum.org/v1/gonum/mat"
)

// Weighting selects how containment and coverage edges are weighted.
type Weighting string

const (
	// WeightSuspicion weights an edge by its target's suspicion or contribution,
	// min-max normalized over the positive entries of the block.
	WeightSuspicion Weighting = "suspicion"
	// WeightUniform weights every edge 1 and row-normalizes the block.
	WeightUniform Weighting = "uniform"
)

// ParseWeighting validates a weighting name.
func ParseWeighting(s string) (Weighting, error) {
	switch w := Weighting(strings.ToLower(strings.TrimSpace(s))); w {
	case WeightSuspicion, WeightUniform:
		return w, nil
	case "":
		return WeightSuspicion, nil
	}

	return "", fmt.Errorf("%w: graph weighting %q", ErrInvalidConfig, s)
}

// Graph is the dense weighted adjacency matrix of one program version and test view.
// Matrix is nil when the layout has no nodes.
type Graph struct {
	View   m.View
	Layout BlockLayout
	Matrix *mat.Dense
}

// MarshalBinary encodes the matrix.
func (g *Graph) MarshalBinary() ([]byte, error) {
	if g.Matrix == nil {
		return []byte{}, nil
	}

	return g.Matrix.MarshalBinary()
}

// DecodeGraph restores a graph persisted with MarshalBinary and checks it
// against the expected layout.
func DecodeGraph(view m.View, layout BlockLayout, data []byte) (*Graph, error) {
	g := &Graph{View: view, Layout: layout}
	if len(data) == 0 {
		if layout.Size() != 0 {
			return nil, fmt.Errorf("decode graph: empty matrix for %d nodes", layout.Size())
		}

		return g, nil
	}

	var dense mat.Dense
	if err := dense.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	rows, cols := dense.Dims()
	if rows != layout.Size() || cols != layout.Size() {
		return nil, fmt.Errorf("decode graph: matrix is %dx%d, layout has %d nodes", rows, cols, layout.Size())
	}

	g.Matrix = &dense

	return g, nil
}

// GraphPair holds the passed and failed views of one program version.
type GraphPair struct {
	Passed *Graph
	Failed *Graph
}

// View returns the graph of the requested view.
func (p GraphPair) View(v m.View) *Graph {
	if v == m.ViewFailed {
		return p.Failed
	}

	return p.Passed
}

// GraphBuilder assembles heterogeneous graphs from SBFL results.
type GraphBuilder struct {
	weighting Weighting
}

// NewGraphBuilder returns a builder using weighting w.
func NewGraphBuilder(w Weighting) (*GraphBuilder, error) {
	w, err := ParseWeighting(string(w))
	if err != nil {
		return nil, err
	}

	return &GraphBuilder{weighting: w}, nil
}

// Build returns the passed and failed views of pv.
func (b *GraphBuilder) Build(pv *m.ProgramVersion, sbfl m.SBFLResult, contribution m.Contribution) GraphPair {
	numMethods := pv.Methods.Len()
	numLines := pv.Lines.Len()
	numPassed := pv.PassedTests.Len()
	numFailed := pv.FailedTests.Len()

	methodScores := make(map[int]float64, len(sbfl.Methods))
	for method, record := range sbfl.Methods {
		methodScores[method] = record.Suspicion
	}

	calls := b.methodBlock(numMethods, pv.Calls, methodScores)
	containment := b.edgeBlock(numMethods, numLines, pv.MethodLines, sbfl.LineScores())
	passed := b.edgeBlock(numLines, numPassed, pv.LinePassed, contribution.Passed)
	failed := b.edgeBlock(numLines, numFailed, pv.LineFailed, contribution.Failed)

	return GraphPair{
		Passed: assemble(m.ViewPassed, NewBlockLayout(numMethods, numLines, numPassed), calls, containment, passed),
		Failed: assemble(m.ViewFailed, NewBlockLayout(numMethods, numLines, numFailed), calls, containment, failed),
	}
}

// newBlock returns nil for an empty block; mat.NewDense rejects zero dimensions.
func newBlock(rows, cols int) *mat.Dense {
	if rows == 0 || cols == 0 {
		return nil
	}

	return mat.NewDense(rows, cols, nil)
}

func (b *GraphBuilder) methodBlock(n int, calls []m.CallEdges, scores map[int]float64) *mat.Dense {
	block := newBlock(n, n)
	if block == nil {
		return nil
	}

	for _, call := range calls {
		for _, target := range call.Targets {
			if w := scores[call.Method] + scores[target]; w > 0 {
				block.Set(call.Method, target, w)
			}
		}
	}

	return MinMaxNormalize(block)
}

func (b *GraphBuilder) edgeBlock(rows, cols int, edges []m.Edge, targetScores map[int]float64) *mat.Dense {
	block := newBlock(rows, cols)
	if block == nil {
		return nil
	}

	if b.weighting == WeightUniform {
		for _, e := range edges {
			block.Set(e.Source(), e.Target(), 1)
		}

		return RowNormalize(block)
	}

	for _, e := range edges {
		if w := targetScores[e.Target()]; w > 0 {
			block.Set(e.Source(), e.Target(), w)
		}
	}

	return MinMaxNormalize(block)
}

// MinMaxNormalize rescales the positive entries of a into [0, 1] using the
// minimum and maximum positive entry. When they are equal every positive
// entry becomes 0.5. Non-positive entries become 0. An all-zero matrix is
// returned unchanged. a is not modified.
func MinMaxNormalize(a *mat.Dense) *mat.Dense {
	if a == nil {
		return nil
	}

	rows, cols := a.Dims()
	out := mat.DenseCopyOf(a)

	lo, hi, found := 0.0, 0.0, false

	for i := range rows {
		for j := range cols {
			v := a.At(i, j)
			if v <= 0 {
				out.Set(i, j, 0)
				continue
			}

			if !found || v < lo {
				lo = v
			}

			if !found || v > hi {
				hi = v
			}

			found = true
		}
	}

	if !found {
		return out
	}

	for i := range rows {
		for j := range cols {
			v := a.At(i, j)
			if v <= 0 {
				continue
			}

			if hi == lo {
				out.Set(i, j, 0.5)
			} else {
				out.Set(i, j, (v-lo)/(hi-lo))
			}
		}
	}

	return out
}

// RowNormalize divides every row of a by its sum. Rows summing to zero stay zero.
func RowNormalize(a *mat.Dense) *mat.Dense {
	if a == nil {
		return nil
	}

	rows, cols := a.Dims()
	out := mat.DenseCopyOf(a)

	for i := range rows {
		sum := mat.Sum(out.RowView(i))
		if sum == 0 {
			continue
		}

		for j := range cols {
			out.Set(i, j, out.At(i, j)/sum)
		}
	}

	return out
}

func assemble(view m.View, layout BlockLayout, calls, containment, coverage *mat.Dense) *Graph {
	g := &Graph{View: view, Layout: layout}

	n := layout.Size()
	if n == 0 {
		return g
	}

	g.Matrix = mat.NewDense(n, n, nil)

	place(g.Matrix, calls, layout.Methods, layout.Methods, false)
	place(g.Matrix, containment, layout.Methods, layout.Statements, true)
	place(g.Matrix, coverage, layout.Statements, layout.Tests, true)

	return g
}

// place copies block into dst at (rows, cols) and, when mirror is set, its
// transpose into (cols, rows).
func place(dst, block *mat.Dense, rows, cols Span, mirror bool) {
	if block == nil {
		return
	}

	for i := range rows.Len {
		for j := range cols.Len {
			v := block.At(i, j)
			if v == 0 {
				continue
			}

			dst.Set(rows.Offset+i, cols.Offset+j, v)

			if mirror {
				dst.Set(cols.Offset+j, rows.Offset+i, v)
			}
		}
	}
}
