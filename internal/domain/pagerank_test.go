package domain

import (
	"context"
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPageRankOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultPageRankOptions().Validate())

	cases := []struct {
		name string
		edit func(*PageRankOptions)
	}{
		{"zero damping", func(o *PageRankOptions) { o.Damping = 0 }},
		{"damping one", func(o *PageRankOptions) { o.Damping = 1 }},
		{"negative epsilon", func(o *PageRankOptions) { o.Epsilon = -1 }},
		{"no iterations", func(o *PageRankOptions) { o.MaxIterations = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultPageRankOptions()
			tc.edit(&opts)
			require.ErrorIs(t, opts.Validate(), ErrInvalidConfig)

			_, err := NewPropagator(opts)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func newTestPropagator(t *testing.T, normalize bool) *Propagator {
	t.Helper()

	opts := DefaultPageRankOptions()
	opts.NormalizeInput = normalize

	p, err := NewPropagator(opts)
	require.NoError(t, err)

	return p
}

func TestPropagator_AllZeroMatrixIsUniform(t *testing.T) {
	p := newTestPropagator(t, true)

	g := &Graph{Layout: NewBlockLayout(1, 1, 1), Matrix: mat.NewDense(3, 3, nil)}

	rank, err := p.Rank(context.Background(), g)
	require.NoError(t, err)
	require.True(t, rank.Converged)
	require.Equal(t, []float64{1, 1, 1}, rank.Values)
}

func TestPropagator_MaxIsOne(t *testing.T) {
	p := newTestPropagator(t, false)

	g := &Graph{Layout: NewBlockLayout(1, 1, 1), Matrix: mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 0.5,
		0, 0.5, 0,
	})}

	rank, err := p.Rank(context.Background(), g)
	require.NoError(t, err)
	require.True(t, rank.Converged)
	require.InDelta(t, 1.0, mat.Max(mat.NewVecDense(3, rank.Values)), 1e-12)
	require.Greater(t, rank.Values[1], rank.Values[2])
}

func TestPropagator_ScaleInvariant(t *testing.T) {
	p := newTestPropagator(t, true)

	data := []float64{
		0, 0.3, 0.9, 0,
		0.3, 0, 0, 0.2,
		0.9, 0, 0, 0.6,
		0, 0.2, 0.6, 0,
	}

	base := &Graph{Layout: NewBlockLayout(2, 1, 1), Matrix: mat.NewDense(4, 4, data)}

	var scaled mat.Dense
	scaled.Scale(7.5, base.Matrix)

	want, err := p.Rank(context.Background(), base)
	require.NoError(t, err)

	got, err := p.Rank(context.Background(), &Graph{Layout: base.Layout, Matrix: &scaled})
	require.NoError(t, err)

	require.InDeltaSlice(t, want.Values, got.Values, 1e-6)
}

func TestPropagator_IterationCapIsNotAnError(t *testing.T) {
	opts := DefaultPageRankOptions()
	opts.MaxIterations = 1

	p, err := NewPropagator(opts)
	require.NoError(t, err)

	g := &Graph{Layout: NewBlockLayout(2, 0, 0), Matrix: mat.NewDense(2, 2, []float64{0, 1, 0, 0})}

	rank, err := p.Rank(context.Background(), g)
	require.NoError(t, err)
	require.False(t, rank.Converged)
	require.Equal(t, 1, rank.Iterations)
	require.Len(t, rank.Values, 2)
}

func TestPropagator_CancelledContext(t *testing.T) {
	opts := DefaultPageRankOptions()
	opts.Epsilon = 1e-300

	p, err := NewPropagator(opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Graph{Layout: NewBlockLayout(2, 0, 0), Matrix: mat.NewDense(2, 2, []float64{0, 1, 1, 0.5})}

	_, err = p.Rank(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPropagator_Propagate(t *testing.T) {
	pair, pv := buildSample(t, WeightSuspicion)
	p := newTestPropagator(t, true)

	result, err := p.Propagate(context.Background(), pair)
	require.NoError(t, err)

	require.Equal(t, m.RankLengths{Methods: 2, Statements: 4, PassedTests: 3, FailedTests: 2}, result.Lengths)
	require.Len(t, result.Passed.Values, 9)
	require.Len(t, result.Failed.Values, 8)
	require.Len(t, result.Difference, pv.Methods.Len()+pv.Lines.Len())

	for i, d := range result.Difference {
		require.InDelta(t, result.Failed.Values[i]-result.Passed.Values[i], d, 1e-12)
	}

	artifacts := result.Artifacts()
	require.Equal(t, PrefixDifference, artifacts[m.ViewDifference].Prefix)
	require.Equal(t, result.Difference, artifacts[m.ViewDifference].Results)

	statements, err := StatementDifference(result.Lengths, result.Difference)
	require.NoError(t, err)
	require.Len(t, statements, 4)
	require.Equal(t, result.Difference[2], statements[0])

	tests, err := PassedTestScores(result.Lengths, result.Passed.Values)
	require.NoError(t, err)
	require.Len(t, tests, 3)
	require.Equal(t, result.Passed.Values[6], tests[0])

	_, err = StatementDifference(result.Lengths, result.Difference[:3])
	require.ErrorIs(t, err, ErrMissingArtifact)
}

func TestPropagator_EmptyGraph(t *testing.T) {
	p := newTestPropagator(t, true)

	rank, err := p.Rank(context.Background(), &Graph{})
	require.NoError(t, err)
	require.Empty(t, rank.Values)
}
