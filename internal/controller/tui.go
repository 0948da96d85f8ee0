package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// DisplayRunInfo prints the sweep plan.
func (p *TUI) DisplayRunInfo(ctx context.Context, info m.RunInfo) {
	if ctx.Err() != nil {
		return
	}

	p.println(titleStyle.Render("flreduce run "+info.RunID) + "\n" +
		faintStyle.Render(fmt.Sprintf("  dataset %s | %d cell(s), %d skipped | %d worker(s) | shard %d/%d",
			info.Dataset, info.Cells, info.Skipped, info.Parallel, info.ShardIndex, info.ShardCount)))
}

// DisplayStage announces a stage on one cell.
func (p *TUI) DisplayStage(ctx context.Context, progress m.StageProgress) {
	if ctx.Err() != nil {
		return
	}

	p.println(stageStyle.Render(fmt.Sprintf("▸ %s", progress.Stage)) +
		fmt.Sprintf(" %s %s %s ", progress.Dataset, progress.Formula, ratiosLabel(progress.Ratios)) +
		faintStyle.Render(fmt.Sprintf("(%d projects)", progress.Projects)))
}

// DisplayProject reports a finished project.
func (p *TUI) DisplayProject(ctx context.Context, progress m.ProjectProgress) {
	if ctx.Err() != nil {
		return
	}

	p.println(faintStyle.Render("  ✓ " + progress.Project))
}

// DisplayDatasets shows the dataset statistics, paginated when they do not fit.
func (p *TUI) DisplayDatasets(ctx context.Context, stats []m.DatasetStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := []table.Column{
		{Title: "Project", Width: 20},
		{Title: "Methods", Width: 8},
		{Title: "Lines", Width: 8},
		{Title: "Mutants", Width: 8},
		{Title: "Failed", Width: 7},
		{Title: "Passed", Width: 7},
		{Title: "Faults", Width: 7},
	}

	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, table.Row{
			s.Project,
			strconv.Itoa(s.Methods), strconv.Itoa(s.Lines), strconv.Itoa(s.Mutants),
			strconv.Itoa(s.FailedTests), strconv.Itoa(s.PassedTests), strconv.Itoa(s.Faults),
		})
	}

	model := newBrowseModel(fmt.Sprintf("Datasets (%d program versions)", len(stats)), columns, rows, []rowSorter{
		{name: "input order"},
		{name: "mutants", less: numericDesc(3)},
		{name: "lines", less: numericDesc(2)},
	})

	return p.run(model)
}

// DisplaySummaries opens a sortable table of evaluation summaries.
func (p *TUI) DisplaySummaries(ctx context.Context, summaries []m.EvaluationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	widths := []int{9, 10, 13, 6, 6, 6, 7, 9, 9, 7}
	columns := make([]table.Column, len(summaryHeader))

	for i, title := range summaryHeader {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	rows := make([]table.Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, table.Row(summaryRow(s)))
	}

	model := newBrowseModel(fmt.Sprintf("Evaluation (%d cells)", len(summaries)), columns, rows, []rowSorter{
		{name: "input order"},
		{name: "MFR", less: numericAsc(7)},
		{name: "MAR", less: numericAsc(8)},
		{name: "Top-1", less: numericDesc(3)},
	})

	return p.run(model)
}

// DisplayRankingDiff prints a colored unified diff.
func (p *TUI) DisplayRankingDiff(ctx context.Context, diff m.RankingDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff.Diff == "" {
		p.println(faintStyle.Render(fmt.Sprintf("%s: rankings %s and %s are identical", diff.Project, diff.Left, diff.Right)))
		return nil
	}

	var b strings.Builder

	for _, line := range strings.SplitAfter(diff.Diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			b.WriteString(titleStyle.Render(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(strings.TrimSuffix(line, "\n")))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(strings.TrimSuffix(line, "\n")))
		default:
			b.WriteString(strings.TrimSuffix(line, "\n"))
		}

		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// run prints short tables directly and opens the interactive pager otherwise.
func (p *TUI) run(model browseModel) error {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) println(line string) {
	_, _ = fmt.Fprintln(p.output, line)
}

// rowSorter orders browse rows. A nil less keeps the input order.
type rowSorter struct {
	name string
	less func(a, b table.Row) bool
}

func numericAsc(col int) func(a, b table.Row) bool {
	return func(a, b table.Row) bool {
		return cellValue(a, col) < cellValue(b, col)
	}
}

func numericDesc(col int) func(a, b table.Row) bool {
	return func(a, b table.Row) bool {
		return cellValue(a, col) > cellValue(b, col)
	}
}

func cellValue(row table.Row, col int) float64 {
	if col >= len(row) {
		return 0
	}

	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0
	}

	return v
}

// reservedLines covers the title, the table header, the sort line and help.
const reservedLines = 6

// tableHeight is the table height that shows rows data lines below a header
// rendered with the given style.
func tableHeight(rows int, header lipgloss.Style) int {
	return rows + lipgloss.Height(header.Render("x"))
}

// browseModel is the Bubble Tea model of a paginated, sortable table.
type browseModel struct {
	title    string
	columns  []table.Column
	rows     []table.Row
	sorters  []rowSorter
	sortIdx  int
	table    table.Model
	header   lipgloss.Style
	width    int
	height   int
	quitting bool
}

func newBrowseModel(title string, columns []table.Column, rows []table.Row, sorters []rowSorter) browseModel {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	t.SetHeight(tableHeight(len(rows), styles.Header))

	return browseModel{
		title:   title,
		columns: columns,
		rows:    rows,
		sorters: sorters,
		table:   t,
		header:  styles.Header,
	}
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return bm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			bm.quitting = true
			return bm, tea.Quit
		case "s":
			return bm.cycleSort(), nil
		}
	}

	var cmd tea.Cmd
	bm.table, cmd = bm.table.Update(msg)

	return bm, cmd
}

func (bm browseModel) View() string {
	if bm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(bm.title))
	b.WriteString("\n\n")
	b.WriteString(bm.table.View())
	b.WriteString("\n")

	if len(bm.sorters) > 0 {
		b.WriteString(faintStyle.Render("sorted by " + bm.sorters[bm.sortIdx].name))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: move • g/G: top/bottom • s: sort • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// staticView renders every row without selection highlighting.
func (bm browseModel) staticView() string {
	if len(bm.rows) == 0 {
		return titleStyle.Render(bm.title) + "\n\n  No rows\n"
	}

	bm.table.Blur()
	bm.table.SetHeight(tableHeight(len(bm.rows), bm.header))

	return titleStyle.Render(bm.title) + "\n\n" + bm.table.View() + "\n"
}

func (bm browseModel) resize(width, height int) browseModel {
	bm.width = width
	bm.height = height

	visible := height - reservedLines
	if visible < 1 {
		visible = 1
	}

	if visible > len(bm.rows) {
		visible = len(bm.rows)
	}

	bm.table.SetHeight(tableHeight(visible, bm.header))

	if width > 0 {
		bm.table.SetWidth(width)
	}

	return bm
}

func (bm browseModel) needsPagination() bool {
	if len(bm.rows) == 0 || bm.height == 0 {
		return false
	}

	return len(bm.rows) > bm.height-reservedLines
}

func (bm browseModel) cycleSort() browseModel {
	if len(bm.sorters) == 0 {
		return bm
	}

	bm.sortIdx = (bm.sortIdx + 1) % len(bm.sorters)

	rows := make([]table.Row, len(bm.rows))
	copy(rows, bm.rows)

	if less := bm.sorters[bm.sortIdx].less; less != nil {
		sort.SliceStable(rows, func(i, j int) bool {
			return less(rows[i], rows[j])
		})
	}

	bm.table.SetRows(rows)
	bm.table.GotoTop()

	return bm
}
