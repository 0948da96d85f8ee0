package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() m.EvaluationReport {
	first := 1

	return m.EvaluationReport{
		Summaries: []m.EvaluationSummary{
			{Technique: m.TechniqueSBFL, Formula: "GP13", Top1: 1, Top3: 1, Top5: 1, Top10: 1, FR: 1, AR: 1.5, FaultCount: 1, Projects: 1, Ranked: 1},
			{
				Technique: m.TechniqueMBFL, Formula: "Ochiai",
				Ratios: &m.Ratios{Statements: 0.2, TestCases: 0.4, Mutants: 1},
				Top10:  1, FR: 7, AR: 8.25, FaultCount: 2, Projects: 2, Ranked: 1,
			},
		},
		Details: []m.ProjectEvaluation{
			{
				Project: "Lang-1", Technique: m.TechniqueSBFL, Formula: "GP13",
				Top1: 1, Top3: 1, Top5: 1, Top10: 1, FR: 1, AR: 1.5, FaultCount: 1, Located: 1,
				Faults: []m.FaultEvaluation{{Method: 0, Candidates: 2, Ranked: 2, Top1: true, Top3: true, Top5: true, Top10: true, FirstRank: &first, AverageRank: 1.5}},
			},
		},
	}
}

func TestLocalReportStore_SaveLoadReport(t *testing.T) {
	store := NewReportStore(NewLocalFSAdapter())
	dir := filepath.Join(t.TempDir(), "evaluation", "Lang")

	report := sampleReport()
	require.NoError(t, store.SaveReport(m.Path(dir), report))

	for _, name := range []string{SummaryJSONFile, SummaryCSVFile, DetailsJSONFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	got, err := store.LoadReport(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestLocalReportStore_SummaryCSV(t *testing.T) {
	store := NewReportStore(NewLocalFSAdapter())
	dir := t.TempDir()

	require.NoError(t, store.SaveReport(m.Path(dir), sampleReport()))

	data, err := os.ReadFile(filepath.Join(dir, SummaryCSVFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(summaryCSVHeader, ","), lines[0])
	assert.Equal(t, "sbfl,GP13,,,,1,1,1,1,1.5,1,1,1,1", lines[1])
	assert.Equal(t, "mbfl,Ochiai,0.2,0.4,1.0,0,0,0,1,8.25,7,2,2,1", lines[2])
}

func TestLocalReportStore_LoadReportMissing(t *testing.T) {
	store := NewReportStore(NewLocalFSAdapter())

	_, err := store.LoadReport(m.Path(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalReportStore_EmptyReport(t *testing.T) {
	store := NewReportStore(NewLocalFSAdapter())
	dir := t.TempDir()

	require.NoError(t, store.SaveReport(m.Path(dir), m.EvaluationReport{}))

	data, err := os.ReadFile(filepath.Join(dir, SummaryJSONFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	got, err := store.LoadReport(m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, got.Summaries)
	assert.Empty(t, got.Details)
}

func TestLocalReportStore_ShardDirs(t *testing.T) {
	store := NewReportStore(NewLocalFSAdapter())
	dir := t.TempDir()

	for _, name := range []string{"shard-1-of-2", "sbfl", "shard-0-of-2"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o750))
	}

	shards, err := store.ShardDirs(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "shard-0-of-2")),
		m.Path(filepath.Join(dir, "shard-1-of-2")),
	}, shards)

	shards, err = store.ShardDirs(m.Path(filepath.Join(dir, "missing")))
	require.NoError(t, err)
	assert.Empty(t, shards)
}
