// Package cmd provides the root command and CLI setup for flreduce.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"flreduce.dev/pkg/flreduce/internal/adapter"
	"flreduce.dev/pkg/flreduce/internal/controller"
	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// workflow is built on first use so flags and config are already resolved.
// Tests replace it with a mock.
var workflow domain.Workflow

// artifactStore is closed when the command finishes.
var artifactStore adapter.ArtifactStore

// outputDirFlag is a root-level flag shared by every command that reads or writes artifacts.
var outputDirFlag string

// dataDirFlag points at the directory holding pkl_data/ and call_graph/.
var dataDirFlag string

var formulasFlag []string

var projectsFlag []string

var verboseFlag bool

const rootLongDescription = `flreduce localizes faults in defective program versions. It scores
statements with spectrum formulas (SBFL), propagates suspicion over a
method/statement/test graph with PageRank, reduces statements, passed tests
and mutants under a ratio budget, re-scores the surviving mutants (MBFL) and
evaluates every ranking against the known faults.

Datasets are read from <data-dir>/pkl_data/<dataset>.json with an optional
call graph in <data-dir>/call_graph/<dataset>_M2M.txt.`

const runLongDescription = `Run the whole pipeline over a dataset: SBFL, graph, PageRank and, for
every ratio triple of the sweep grid, reduction, MBFL and evaluation.

Completed cells are recorded in a checkpoint; --resume skips them.
With --shard INDEX/TOTAL only every TOTAL-th cell starting at INDEX runs.`

// skipWorkflowAnnotation marks commands that run without datasets or stores.
const skipWorkflowAnnotation = "flreduce/skip-workflow"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flreduce",
		Short: "Spectrum and mutation based fault localization with test reduction",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepareWorkflow(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeArtifactStore()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			defaultOutputDir,
			"output directory for artifacts and evaluation reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&dataDirFlag, dataDirFlagName, "d", defaultDataDir, "directory holding pkl_data/ and call_graph/")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dataDirFlagName), dataDirConfigKey)

	cmd.PersistentFlags().StringSliceVarP(&formulasFlag, formulasFlagName, "f", formulaTags(domain.AllFormulas), "formulas to score with (GP13, Ochiai, Jaccard, OP2, Tarantula, DSTAR)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formulasFlagName), formulasConfigKey)

	cmd.PersistentFlags().StringSliceVar(&projectsFlag, projectsFlagName, nil, "restrict the run to these program versions (default: all)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// prepareWorkflow configures logging and builds the workflow with its stores.
func prepareWorkflow(cmd *cobra.Command) error {
	if workflow != nil || cmd.Annotations[skipWorkflowAnnotation] == "true" {
		return nil
	}

	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	fs := adapter.NewLocalFSAdapter()
	output := viper.GetString(outputFlagName)

	store, err := newArtifactStore(fs, output)
	if err != nil {
		return err
	}

	wf, err := domain.NewWorkflow(
		adapter.NewLocalDatasetStore(fs, viper.GetString(dataDirConfigKey)),
		store,
		adapter.NewReportStore(fs),
		adapter.NewCheckpointStore(fs),
		controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout)),
		cfg,
	)
	if err != nil {
		_ = store.Close()
		return err
	}

	artifactStore = store
	workflow = wf

	return nil
}

// newArtifactStore opens the configured artifact backend.
func newArtifactStore(fs adapter.FSAdapter, output string) (adapter.ArtifactStore, error) {
	switch backend := viper.GetString(storeBackendKey); backend {
	case storeBackendFS, "":
		return adapter.NewFSArtifactStore(fs, output), nil
	case storeBackendBolt:
		path := viper.GetString(storeBoltPathKey)
		if path == "" {
			path = filepath.Join(output, defaultBoltFileName)
		}

		return adapter.NewBoltArtifactStore(path)
	default:
		return nil, fmt.Errorf("%w: store backend %q", domain.ErrInvalidConfig, backend)
	}
}

func closeArtifactStore() {
	if artifactStore == nil {
		return
	}

	if err := artifactStore.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close artifact store:", err)
	}

	artifactStore = nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()
	closeArtifactStore()

	if err != nil {
		os.Exit(1)
	}
}

func outputPath() m.Path {
	return m.Path(viper.GetString(outputFlagName))
}

func stageArgs(dataset string) domain.StageArgs {
	return domain.StageArgs{Dataset: dataset, Projects: projectsFlag}
}
