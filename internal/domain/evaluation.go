package domain

import (
	"slices"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// Evaluator scores a statement ranking against the known faults of a version.
type Evaluator struct {
	rule TieRule
}

// NewEvaluator returns an Evaluator ranking under rule.
func NewEvaluator(rule TieRule) (*Evaluator, error) {
	rule, err := ParseTieRule(string(rule))
	if err != nil {
		return nil, err
	}

	return &Evaluator{rule: rule}, nil
}

// CellInfo names the technique, formula and ratio triple an evaluation belongs to.
type CellInfo struct {
	Technique m.Technique
	Formula   string
	Ratios    *m.Ratios
}

// Evaluate ranks scores and measures, for every faulty method, where its
// candidate statements land. Candidates are the method's listed fault lines
// or, when none are listed, every statement it contains.
func (e *Evaluator) Evaluate(pv *m.ProgramVersion, scores map[int]float64, cell CellInfo) m.ProjectEvaluation {
	ranks := Rank(scores, e.rule)
	contained := methodLines(pv)

	eval := m.ProjectEvaluation{
		Project:    pv.Project,
		Technique:  cell.Technique,
		Formula:    cell.Formula,
		Ratios:     cell.Ratios,
		FaultCount: len(pv.Faults),
		Faults:     make([]m.FaultEvaluation, 0, len(pv.Faults)),
	}

	for _, method := range pv.Faults.Methods() {
		candidates := dedupe(pv.Faults[method])
		if len(candidates) == 0 {
			candidates = contained[method]
		}

		fault := evaluateFault(method, candidates, ranks)
		eval.Faults = append(eval.Faults, fault)

		if fault.Top1 {
			eval.Top1++
		}

		if fault.Top3 {
			eval.Top3++
		}

		if fault.Top5 {
			eval.Top5++
		}

		if fault.Top10 {
			eval.Top10++
		}

		if fault.FirstRank != nil {
			eval.Located++
			eval.FR += float64(*fault.FirstRank)
			eval.AR += fault.AverageRank
		}
	}

	return eval
}

func evaluateFault(method int, candidates []int, ranks map[int]int) m.FaultEvaluation {
	fault := m.FaultEvaluation{Method: method, Candidates: len(candidates)}

	first, sum := 0, 0

	for _, line := range candidates {
		rank, ok := ranks[line]
		if !ok {
			continue
		}

		fault.Ranked++
		sum += rank

		if first == 0 || rank < first {
			first = rank
		}
	}

	if fault.Ranked == 0 {
		return fault
	}

	fault.FirstRank = &first
	fault.AverageRank = float64(sum) / float64(fault.Ranked)
	fault.Top1 = first <= 1
	fault.Top3 = first <= 3
	fault.Top5 = first <= 5
	fault.Top10 = first <= 10

	return fault
}

func methodLines(pv *m.ProgramVersion) map[int][]int {
	lines := make(map[int][]int, pv.Methods.Len())
	for _, e := range pv.MethodLines {
		if !slices.Contains(lines[e.Source()], e.Target()) {
			lines[e.Source()] = append(lines[e.Source()], e.Target())
		}
	}

	return lines
}

func dedupe(values []int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}

// Summarize aggregates project evaluations of one cell. MFR and MAR are the
// means of FR and AR over projects with at least one ranked fault.
func Summarize(cell CellInfo, evals []m.ProjectEvaluation) m.EvaluationSummary {
	summary := m.EvaluationSummary{
		Technique: cell.Technique,
		Formula:   cell.Formula,
		Ratios:    cell.Ratios,
		Projects:  len(evals),
	}

	for _, eval := range evals {
		summary.Top1 += eval.Top1
		summary.Top3 += eval.Top3
		summary.Top5 += eval.Top5
		summary.Top10 += eval.Top10
		summary.FaultCount += eval.FaultCount

		if eval.Located > 0 {
			summary.Ranked++
			summary.FR += eval.FR
			summary.AR += eval.AR
		}
	}

	if summary.Ranked > 0 {
		summary.FR /= float64(summary.Ranked)
		summary.AR /= float64(summary.Ranked)
	}

	return summary
}
