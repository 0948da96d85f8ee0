package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "flreduce"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	dataDirFlagName     = "data-dir"
	formulasFlagName    = "formulas"
	projectsFlagName    = "projects"
	runParallelFlagName = "parallel"
	verboseFlagName     = "verbose"

	dataDirConfigKey       = "data.dir"
	storeBackendKey        = "store.backend"
	storeBoltPathKey       = "store.bolt_path"
	formulasConfigKey      = "pipeline.formulas"
	dstarStarKey           = "pipeline.dstar_star"
	tarantulaGuardKey      = "pipeline.tarantula_guard"
	graphWeightingKey      = "graph.weighting"
	pageRankDampingKey     = "pagerank.damping"
	pageRankEpsilonKey     = "pagerank.epsilon"
	pageRankMaxIterKey     = "pagerank.max_iterations"
	pageRankNormalizeKey   = "pagerank.normalize_input"
	reductionSeedKey       = "reduction.seed"
	reductionTestSignalKey = "reduction.test_signal"
	reductionRatioStepKey  = "reduction.ratio_step"
	mbflKillSetsKey        = "mbfl.kill_sets"
	evaluationTieRuleKey   = "evaluation.tie_rule"
	runParallelConfigKey   = "run.parallel"
	runSpillDirKey         = "run.spill_dir"

	storeBackendFS   = "fs"
	storeBackendBolt = "bolt"

	defaultOutputDir         = ".flreduce-output"
	defaultDataDir           = "data"
	defaultStoreBackend      = storeBackendFS
	defaultBoltFileName      = "artifacts.db"
	defaultRunParallel       = 1
	defaultTarantulaGuard    = string(domain.GuardAuto)
	defaultGraphWeighting    = string(domain.WeightSuspicion)
	defaultTestSignal        = string(domain.SignalPageRank)
	defaultKillSets          = string(domain.KillSetsComplete)
	defaultTieRule           = string(domain.TieCompetition)
	defaultPageRankNormalize = true

	envPrefix = "FLREDUCE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".flreduce.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := domain.DefaultConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(dataDirConfigKey, defaultDataDir)
	viper.SetDefault(storeBackendKey, defaultStoreBackend)
	viper.SetDefault(storeBoltPathKey, "")
	viper.SetDefault(formulasConfigKey, formulaTags(defaults.Formulas))
	viper.SetDefault(dstarStarKey, defaults.FormulaOptions.DstarStar)
	viper.SetDefault(tarantulaGuardKey, defaultTarantulaGuard)
	viper.SetDefault(graphWeightingKey, defaultGraphWeighting)
	viper.SetDefault(pageRankDampingKey, defaults.PageRank.Damping)
	viper.SetDefault(pageRankEpsilonKey, defaults.PageRank.Epsilon)
	viper.SetDefault(pageRankMaxIterKey, defaults.PageRank.MaxIterations)
	viper.SetDefault(pageRankNormalizeKey, defaultPageRankNormalize)
	viper.SetDefault(reductionSeedKey, defaults.Seed)
	viper.SetDefault(reductionTestSignalKey, defaultTestSignal)
	viper.SetDefault(reductionRatioStepKey, defaults.RatioStep)
	viper.SetDefault(mbflKillSetsKey, defaultKillSets)
	viper.SetDefault(evaluationTieRuleKey, defaultTieRule)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runSpillDirKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func formulaTags(names []domain.FormulaName) []string {
	tags := make([]string, 0, len(names))
	for _, name := range names {
		tags = append(tags, string(name))
	}

	return tags
}

// pipelineConfig reads the pipeline settings from viper and validates them.
func pipelineConfig() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	formulas, err := domain.ParseFormulas(viper.GetStringSlice(formulasConfigKey))
	if err != nil {
		return cfg, err
	}

	guard, err := domain.ParseTarantulaGuard(viper.GetString(tarantulaGuardKey))
	if err != nil {
		return cfg, err
	}

	weighting, err := domain.ParseWeighting(viper.GetString(graphWeightingKey))
	if err != nil {
		return cfg, err
	}

	signal, err := domain.ParseTestSignal(viper.GetString(reductionTestSignalKey))
	if err != nil {
		return cfg, err
	}

	killSets, err := domain.ParseKillSets(viper.GetString(mbflKillSetsKey))
	if err != nil {
		return cfg, err
	}

	tieRule, err := domain.ParseTieRule(viper.GetString(evaluationTieRuleKey))
	if err != nil {
		return cfg, err
	}

	cfg.Formulas = formulas
	cfg.FormulaOptions = domain.FormulaOptions{
		DstarStar:      viper.GetFloat64(dstarStarKey),
		TarantulaGuard: guard,
	}
	cfg.Weighting = weighting
	cfg.PageRank = domain.PageRankOptions{
		Damping:        viper.GetFloat64(pageRankDampingKey),
		Epsilon:        viper.GetFloat64(pageRankEpsilonKey),
		MaxIterations:  viper.GetInt(pageRankMaxIterKey),
		NormalizeInput: viper.GetBool(pageRankNormalizeKey),
	}
	cfg.TestSignal = signal
	cfg.KillSets = killSets
	cfg.TieRule = tieRule
	cfg.Seed = viper.GetUint64(reductionSeedKey)
	cfg.Parallel = viper.GetInt(runParallelConfigKey)
	cfg.RatioStep = viper.GetFloat64(reductionRatioStepKey)
	cfg.SpillDir = viper.GetString(runSpillDirKey)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load pipeline config: %w", err)
	}

	return cfg, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
