package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"gonum.org/v1/gonum/mat"
)

// PageRankOptions configures the power iteration.
type PageRankOptions struct {
	Damping       float64 // weight of the adjacency matrix against the uniform jump
	Epsilon       float64 // convergence threshold on the max absolute change
	MaxIterations int     // iteration cap; reaching it is not an error
	// NormalizeInput divides the adjacency matrix by its largest entry first,
	// which makes the result invariant under positive rescaling of the input.
	NormalizeInput bool
}

// DefaultPageRankOptions returns damping 0.8, epsilon 1e-7, 10000 iterations
// and input normalization on.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:        0.8,
		Epsilon:        1e-7,
		MaxIterations:  10000,
		NormalizeInput: true,
	}
}

// Validate checks the option ranges.
func (o PageRankOptions) Validate() error {
	if o.Damping <= 0 || o.Damping >= 1 {
		return fmt.Errorf("%w: pagerank damping %v not in (0, 1)", ErrInvalidConfig, o.Damping)
	}

	if o.Epsilon <= 0 {
		return fmt.Errorf("%w: pagerank epsilon %v must be positive", ErrInvalidConfig, o.Epsilon)
	}

	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: pagerank max iterations %d must be positive", ErrInvalidConfig, o.MaxIterations)
	}

	return nil
}

// RankVector is the PageRank score of every node, scaled so its maximum is 1.
type RankVector struct {
	Values     []float64
	Iterations int
	Converged  bool
}

// Propagator ranks graph nodes by PageRank.
type Propagator struct {
	opts PageRankOptions
}

// NewPropagator validates opts and returns a Propagator.
func NewPropagator(opts PageRankOptions) (*Propagator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Propagator{opts: opts}, nil
}

// Rank iterates r' = T r with T = d*A + (1-d)/n * J starting from all ones,
// dividing by the maximum after every step, until the max absolute change is
// below epsilon or the iteration cap is reached. The latest vector is returned.
func (p *Propagator) Rank(ctx context.Context, g *Graph) (RankVector, error) {
	if g.Matrix == nil {
		return RankVector{Values: []float64{}, Converged: true}, nil
	}

	n, _ := g.Matrix.Dims()

	a := mat.Matrix(g.Matrix)
	if p.opts.NormalizeInput {
		if hi := mat.Max(g.Matrix); hi > 0 {
			var scaled mat.Dense
			scaled.Scale(1/hi, g.Matrix)
			a = &scaled
		}
	}

	current := mat.NewVecDense(n, nil)
	for i := range n {
		current.SetVec(i, 1)
	}

	next := mat.NewVecDense(n, nil)
	jump := (1 - p.opts.Damping) / float64(n)

	for iteration := 1; iteration <= p.opts.MaxIterations; iteration++ {
		if iteration%100 == 1 {
			if err := ctx.Err(); err != nil {
				return RankVector{}, err
			}
		}

		next.MulVec(a, current)

		teleport := jump * mat.Sum(current)
		for i := range n {
			next.SetVec(i, p.opts.Damping*next.AtVec(i)+teleport)
		}

		hi := mat.Max(next)
		if hi <= 0 {
			return RankVector{Values: vecValues(current), Iterations: iteration, Converged: false}, nil
		}

		next.ScaleVec(1/hi, next)

		delta := 0.0
		for i := range n {
			delta = math.Max(delta, math.Abs(next.AtVec(i)-current.AtVec(i)))
		}

		current, next = next, current

		if delta < p.opts.Epsilon {
			return RankVector{Values: vecValues(current), Iterations: iteration, Converged: true}, nil
		}
	}

	slog.Debug("pagerank reached iteration cap", "view", g.View, "iterations", p.opts.MaxIterations)

	return RankVector{Values: vecValues(current), Iterations: p.opts.MaxIterations, Converged: false}, nil
}

func vecValues(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// PropagationResult holds the passed and failed view ranks of one program
// version and their difference over the method and statement nodes.
type PropagationResult struct {
	Lengths    m.RankLengths
	Passed     RankVector
	Failed     RankVector
	Difference []float64
}

// Propagate ranks both views of pair and computes failed minus passed over
// the shared method and statement range.
func (p *Propagator) Propagate(ctx context.Context, pair GraphPair) (PropagationResult, error) {
	passed, err := p.Rank(ctx, pair.Passed)
	if err != nil {
		return PropagationResult{}, fmt.Errorf("rank passed view: %w", err)
	}

	failed, err := p.Rank(ctx, pair.Failed)
	if err != nil {
		return PropagationResult{}, fmt.Errorf("rank failed view: %w", err)
	}

	core := pair.Passed.Layout.Core()
	difference := make([]float64, core)

	for i := range core {
		difference[i] = failed.Values[i] - passed.Values[i]
	}

	return PropagationResult{
		Lengths: m.RankLengths{
			Methods:     pair.Passed.Layout.Methods.Len,
			Statements:  pair.Passed.Layout.Statements.Len,
			PassedTests: pair.Passed.Layout.Tests.Len,
			FailedTests: pair.Failed.Layout.Tests.Len,
		},
		Passed:     passed,
		Failed:     failed,
		Difference: difference,
	}, nil
}

// Artifact prefixes of the persisted rank vectors.
const (
	PrefixPassed     = "passed_test_cases"
	PrefixFailed     = "failed_test_cases"
	PrefixDifference = "failed_passed_diff"
)

// PrefixFor returns the artifact prefix of a view.
func PrefixFor(v m.View) string {
	switch v {
	case m.ViewFailed:
		return PrefixFailed
	case m.ViewDifference:
		return PrefixDifference
	}

	return PrefixPassed
}

// Artifacts returns the persisted form of each view.
func (r PropagationResult) Artifacts() map[m.View]m.RankArtifact {
	return map[m.View]m.RankArtifact{
		m.ViewPassed:     {Prefix: PrefixPassed, Lengths: r.Lengths, Results: r.Passed.Values},
		m.ViewFailed:     {Prefix: PrefixFailed, Lengths: r.Lengths, Results: r.Failed.Values},
		m.ViewDifference: {Prefix: PrefixDifference, Lengths: r.Lengths, Results: r.Difference},
	}
}

// StatementDifference returns the difference score of each statement, keyed
// by statement index.
func StatementDifference(lengths m.RankLengths, difference []float64) (map[int]float64, error) {
	end := lengths.Methods + lengths.Statements
	if len(difference) < end {
		return nil, fmt.Errorf("%w: difference vector has %d entries, want %d", ErrMissingArtifact, len(difference), end)
	}

	scores := make(map[int]float64, lengths.Statements)
	for i := range lengths.Statements {
		scores[i] = difference[lengths.Methods+i]
	}

	return scores, nil
}

// PassedTestScores returns the PageRank score of each passed test node of the
// passed view, keyed by passed test index.
func PassedTestScores(lengths m.RankLengths, passed []float64) (map[int]float64, error) {
	offset := lengths.Methods + lengths.Statements
	if len(passed) < offset+lengths.PassedTests {
		return nil, fmt.Errorf("%w: passed rank vector has %d entries, want %d", ErrMissingArtifact, len(passed), offset+lengths.PassedTests)
	}

	scores := make(map[int]float64, lengths.PassedTests)
	for i := range lengths.PassedTests {
		scores[i] = passed[offset+i]
	}

	return scores, nil
}
