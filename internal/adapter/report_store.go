package adapter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// Report file names inside an evaluation directory.
const (
	SummaryJSONFile = "summary.json"
	SummaryCSVFile  = "summary.csv"
	DetailsJSONFile = "details.json"
	ShardDirPrefix  = "shard-"
)

var summaryCSVHeader = []string{
	"technique", "function",
	"reduced_statements_ratios", "reduced_test_cases_ratios", "reduced_mutant_ratios",
	"ftop1", "ftop3", "ftop5", "ftop10",
	"MAR", "MFR", "fault_count", "projects", "ranked_projects",
}

// ReportStore persists the evaluation report of a dataset run.
type ReportStore interface {
	SaveReport(dir m.Path, report m.EvaluationReport) error
	LoadReport(dir m.Path) (m.EvaluationReport, error)
	ShardDirs(dir m.Path) ([]m.Path, error)
}

// LocalReportStore writes summary.json, summary.csv and details.json.
type LocalReportStore struct {
	fs FSAdapter
}

// NewReportStore constructs a LocalReportStore.
func NewReportStore(fs FSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveReport writes the three report files into dir.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.EvaluationReport) error {
	summaries := report.Summaries
	if summaries == nil {
		summaries = []m.EvaluationSummary{}
	}

	details := report.Details
	if details == nil {
		details = []m.ProjectEvaluation{}
	}

	if err := s.writeJSON(s.fs.JoinPath(string(dir), SummaryJSONFile), summaries); err != nil {
		return err
	}

	csvData, err := encodeSummaryCSV(summaries)
	if err != nil {
		return fmt.Errorf("encode %s: %w", SummaryCSVFile, err)
	}

	if err := s.fs.WriteFile(s.fs.JoinPath(string(dir), SummaryCSVFile), csvData, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", SummaryCSVFile, err)
	}

	return s.writeJSON(s.fs.JoinPath(string(dir), DetailsJSONFile), details)
}

// LoadReport reads summary.json and details.json from dir. A missing
// summary yields ErrNotFound; a missing details file yields no details.
func (s *LocalReportStore) LoadReport(dir m.Path) (m.EvaluationReport, error) {
	var report m.EvaluationReport

	data, err := s.fs.ReadFile(s.fs.JoinPath(string(dir), SummaryJSONFile))
	if errors.Is(err, fs.ErrNotExist) {
		return report, fmt.Errorf("load report %s: %w", dir, ErrNotFound)
	}

	if err != nil {
		return report, fmt.Errorf("load report %s: %w", dir, err)
	}

	if err := json.Unmarshal(data, &report.Summaries); err != nil {
		return report, fmt.Errorf("decode %s: %w", SummaryJSONFile, err)
	}

	data, err = s.fs.ReadFile(s.fs.JoinPath(string(dir), DetailsJSONFile))
	if errors.Is(err, fs.ErrNotExist) {
		return report, nil
	}

	if err != nil {
		return report, fmt.Errorf("load report %s: %w", dir, err)
	}

	if err := json.Unmarshal(data, &report.Details); err != nil {
		return report, fmt.Errorf("decode %s: %w", DetailsJSONFile, err)
	}

	return report, nil
}

// ShardDirs returns the shard report directories directly under dir, sorted.
func (s *LocalReportStore) ShardDirs(dir m.Path) ([]m.Path, error) {
	names, err := s.fs.ListDirs(dir)
	if err != nil {
		return nil, fmt.Errorf("list shard reports %s: %w", dir, err)
	}

	var shards []m.Path

	for _, name := range names {
		if strings.HasPrefix(name, ShardDirPrefix) {
			shards = append(shards, s.fs.JoinPath(string(dir), name))
		}
	}

	return shards, nil
}

func (s *LocalReportStore) writeJSON(path m.Path, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func encodeSummaryCSV(summaries []m.EvaluationSummary) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(summaryCSVHeader); err != nil {
		return nil, err
	}

	for _, s := range summaries {
		ratios := []string{"", "", ""}
		if s.Ratios != nil {
			ratios = s.Ratios.Segments()
		}

		row := []string{string(s.Technique), s.Formula}
		row = append(row, ratios...)
		row = append(row,
			strconv.Itoa(s.Top1),
			strconv.Itoa(s.Top3),
			strconv.Itoa(s.Top5),
			strconv.Itoa(s.Top10),
			strconv.FormatFloat(s.AR, 'f', -1, 64),
			strconv.FormatFloat(s.FR, 'f', -1, 64),
			strconv.Itoa(s.FaultCount),
			strconv.Itoa(s.Projects),
			strconv.Itoa(s.Ranked),
		)

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()

	return buf.Bytes(), w.Error()
}
