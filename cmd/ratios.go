package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
)

type ratioFlags struct {
	statements float64
	testCases  float64
	mutants    float64
}

func (r *ratioFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&r.statements, "statements", 1, "share of statements kept, ranked by PageRank difference")
	cmd.Flags().Float64Var(&r.testCases, "test-cases", 1, "share of passed tests kept, ranked by the test signal")
	cmd.Flags().Float64Var(&r.mutants, "mutants", 1, "probability of keeping a mutant outside the kept statements")
}

func (r *ratioFlags) ratios() m.Ratios {
	return m.Ratios{Statements: r.statements, TestCases: r.testCases, Mutants: r.mutants}
}

// parseRankingSource reads "sbfl" or "mbfl/<ss>/<tc>/<mr>".
func parseRankingSource(value string) (domain.RankingSource, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")

	switch m.Technique(strings.ToLower(parts[0])) {
	case m.TechniqueSBFL:
		if len(parts) != 1 {
			break
		}

		return domain.RankingSource{Technique: m.TechniqueSBFL}, nil
	case m.TechniqueMBFL:
		if len(parts) != 4 {
			break
		}

		values := make([]float64, 3)

		for i, part := range parts[1:] {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return domain.RankingSource{}, fmt.Errorf("parse ranking %q: %w", value, err)
			}

			values[i] = v
		}

		ratios := m.Ratios{Statements: values[0], TestCases: values[1], Mutants: values[2]}
		if err := domain.ValidateRatios(ratios); err != nil {
			return domain.RankingSource{}, err
		}

		return domain.RankingSource{Technique: m.TechniqueMBFL, Ratios: &ratios}, nil
	}

	return domain.RankingSource{}, fmt.Errorf("parse ranking %q: want sbfl or mbfl/<statements>/<test-cases>/<mutants>", value)
}
