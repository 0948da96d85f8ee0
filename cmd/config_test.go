package cmd

import (
	"log/slog"
	"testing"

	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "flreduce", configBaseName)
	assert.Equal(t, "flreduce.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "data.dir", dataDirConfigKey)
	assert.Equal(t, ".flreduce-output", defaultOutputDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "FLREDUCE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestPipelineConfig_Defaults(t *testing.T) {
	cfg, err := pipelineConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestPipelineConfig_Overrides(t *testing.T) {
	overrides := map[string]any{
		formulasConfigKey:      []string{"ochiai", "d*"},
		graphWeightingKey:      "uniform",
		evaluationTieRuleKey:   "dense",
		mbflKillSetsKey:        "legacy",
		reductionSeedKey:       42,
		reductionRatioStepKey:  0.5,
		runParallelConfigKey:   4,
		pageRankNormalizeKey:   false,
		reductionTestSignalKey: "contribution",
	}

	restoreViper(t, overrides)

	cfg, err := pipelineConfig()
	require.NoError(t, err)
	assert.Equal(t, []domain.FormulaName{domain.Ochiai, domain.Dstar}, cfg.Formulas)
	assert.Equal(t, domain.WeightUniform, cfg.Weighting)
	assert.Equal(t, domain.TieDense, cfg.TieRule)
	assert.Equal(t, domain.KillSetsLegacy, cfg.KillSets)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.InDelta(t, 0.5, cfg.RatioStep, 1e-12)
	assert.Equal(t, 4, cfg.Parallel)
	assert.False(t, cfg.PageRank.NormalizeInput)
	assert.Equal(t, domain.SignalContribution, cfg.TestSignal)
}

func TestPipelineConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  error
	}{
		{"unknown formula", formulasConfigKey, []string{"Magic"}, domain.ErrUnsupportedFormula},
		{"unknown weighting", graphWeightingKey, "random", domain.ErrInvalidConfig},
		{"zero parallel", runParallelConfigKey, 0, domain.ErrInvalidConfig},
		{"damping out of range", pageRankDampingKey, 1.5, domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreViper(t, map[string]any{tt.key: tt.value})

			_, err := pipelineConfig()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("DEBUG", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("warning", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, parseSlogLevel(" error ", slog.LevelInfo))
	assert.Equal(t, slog.Level(-4), parseSlogLevel("-4", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("loud", slog.LevelWarn))
}

// restoreViper sets values for the test and puts the previous values back.
func restoreViper(t *testing.T, values map[string]any) {
	t.Helper()

	for key, value := range values {
		previous := viper.Get(key)
		viper.Set(key, value)

		t.Cleanup(func() { viper.Set(key, previous) })
	}
}
