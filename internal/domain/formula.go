package domain

import (
	"fmt"
	"math"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// Mode selects which counts a formula reads: spectrum counts (ef, ep, nf, np)
// or their mutant-kill analogues (kf, kp, nf, np).
type Mode int

const (
	// ModeSBFL scores statements and methods from coverage spectra.
	ModeSBFL Mode = iota
	// ModeMBFL scores mutants from kill counts.
	ModeMBFL
)

func (md Mode) String() string {
	if md == ModeMBFL {
		return "mbfl"
	}

	return "sbfl"
}

// FormulaName is the canonical tag of a suspiciousness formula.
type FormulaName string

// Supported formulas.
const (
	GP13      FormulaName = "GP13"
	Ochiai    FormulaName = "Ochiai"
	Jaccard   FormulaName = "Jaccard"
	OP2       FormulaName = "OP2"
	Tarantula FormulaName = "Tarantula"
	Dstar     FormulaName = "DSTAR"
)

// AllFormulas lists every supported formula in canonical order.
var AllFormulas = []FormulaName{GP13, Ochiai, Jaccard, OP2, Tarantula, Dstar}

// ParseFormulaName resolves a tag case-insensitively.
func ParseFormulaName(tag string) (FormulaName, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "d*" {
		return Dstar, nil
	}

	for _, name := range AllFormulas {
		if strings.ToLower(string(name)) == normalized {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormula, tag)
}

// ParseFormulas resolves a list of tags. An empty list or the single tag
// "all" yields AllFormulas.
func ParseFormulas(tags []string) ([]FormulaName, error) {
	if len(tags) == 0 || (len(tags) == 1 && strings.EqualFold(strings.TrimSpace(tags[0]), "all")) {
		return append([]FormulaName(nil), AllFormulas...), nil
	}

	names := make([]FormulaName, 0, len(tags))
	seen := map[FormulaName]bool{}

	for _, tag := range tags {
		name, err := ParseFormulaName(tag)
		if err != nil {
			return nil, err
		}

		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names, nil
}

// TarantulaGuard selects how Tarantula handles statements with ef = 0.
type TarantulaGuard string

const (
	// GuardAuto picks GuardRatio for SBFL and GuardShortCircuit for MBFL.
	GuardAuto TarantulaGuard = "auto"
	// GuardShortCircuit scores 0 whenever ef = 0.
	GuardShortCircuit TarantulaGuard = "short-circuit"
	// GuardRatio always evaluates the ratio formula.
	GuardRatio TarantulaGuard = "ratio"
)

// ParseTarantulaGuard validates a guard name.
func ParseTarantulaGuard(s string) (TarantulaGuard, error) {
	switch g := TarantulaGuard(strings.ToLower(strings.TrimSpace(s))); g {
	case GuardAuto, GuardShortCircuit, GuardRatio:
		return g, nil
	case "":
		return GuardAuto, nil
	}

	return "", fmt.Errorf("%w: tarantula guard %q", ErrInvalidConfig, s)
}

// FormulaOptions tunes the parametrized formulas.
type FormulaOptions struct {
	DstarStar      float64
	TarantulaGuard TarantulaGuard
}

// DefaultFormulaOptions returns star = 2 and the mode-dependent Tarantula guard.
func DefaultFormulaOptions() FormulaOptions {
	return FormulaOptions{
		DstarStar:      2,
		TarantulaGuard: GuardAuto,
	}
}

// Formula maps confusion counts to a suspicion score.
type Formula interface {
	Name() FormulaName
	Score(stats m.ConfusionStats, mode Mode) float64
}

// NewFormula returns the strategy registered under name.
func NewFormula(name FormulaName, opts FormulaOptions) (Formula, error) {
	switch name {
	case GP13:
		return gp13{}, nil
	case Ochiai:
		return ochiai{}, nil
	case Jaccard:
		return jaccard{}, nil
	case OP2:
		return op2{}, nil
	case Tarantula:
		guard, err := ParseTarantulaGuard(string(opts.TarantulaGuard))
		if err != nil {
			return nil, err
		}

		return tarantula{guard: guard}, nil
	case Dstar:
		star := opts.DstarStar
		if star <= 0 {
			star = 2
		}

		return dstar{star: star}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormula, name)
}

// ScoreAll applies f to every entry of stats and returns fresh records.
func ScoreAll[K comparable](f Formula, mode Mode, stats map[K]m.ConfusionStats) map[K]m.SuspicionRecord {
	records := make(map[K]m.SuspicionRecord, len(stats))
	for key, s := range stats {
		records[key] = m.SuspicionRecord{Stats: s, Suspicion: f.Score(s, mode)}
	}

	return records
}

// counts reads the four inputs. Kill counts are already mapped onto the
// same positions by KillStats.Confusion, so both modes read the same fields.
func counts(s m.ConfusionStats) (ef, ep, nf, np float64) {
	return float64(s.EF), float64(s.EP), float64(s.NF), float64(s.NP)
}

type gp13 struct{}

func (gp13) Name() FormulaName { return GP13 }

func (gp13) Score(s m.ConfusionStats, _ Mode) float64 {
	ef, ep, _, _ := counts(s)
	if ef == 0 {
		return 0
	}

	return ef * (1 + 1/(2*ep+ef))
}

type ochiai struct{}

func (ochiai) Name() FormulaName { return Ochiai }

func (ochiai) Score(s m.ConfusionStats, _ Mode) float64 {
	ef, ep, nf, _ := counts(s)

	denominator := math.Sqrt((ef + nf) * (ef + ep))
	if denominator <= 0 {
		return 0
	}

	return ef / denominator
}

type jaccard struct{}

func (jaccard) Name() FormulaName { return Jaccard }

func (jaccard) Score(s m.ConfusionStats, _ Mode) float64 {
	ef, ep, nf, _ := counts(s)

	denominator := ef + nf + ep
	if denominator <= 0 {
		return 0
	}

	return ef / denominator
}

type op2 struct{}

func (op2) Name() FormulaName { return OP2 }

func (op2) Score(s m.ConfusionStats, _ Mode) float64 {
	ef, ep, _, np := counts(s)

	return ef - ep/(np+ep+1)
}

type tarantula struct {
	guard TarantulaGuard
}

func (tarantula) Name() FormulaName { return Tarantula }

func (t tarantula) Score(s m.ConfusionStats, mode Mode) float64 {
	ef, ep, nf, np := counts(s)

	guard := t.guard
	if guard == GuardAuto {
		guard = GuardRatio
		if mode == ModeMBFL {
			guard = GuardShortCircuit
		}
	}

	if guard == GuardShortCircuit && ef == 0 {
		return 0
	}

	failedRatio := 0.0
	if ef+nf > 0 {
		failedRatio = ef / (ef + nf)
	}

	passedRatio := 1.0
	if ep+np > 0 {
		passedRatio = ep / (ep + np)
	}

	if failedRatio+passedRatio == 0 {
		return 0
	}

	return failedRatio / (failedRatio + passedRatio)
}

type dstar struct {
	star float64
}

func (dstar) Name() FormulaName { return Dstar }

func (d dstar) Score(s m.ConfusionStats, _ Mode) float64 {
	ef, ep, nf, _ := counts(s)

	denominator := ep + nf
	if denominator == 0 {
		return 0
	}

	return math.Pow(ef, d.star) / denominator
}
