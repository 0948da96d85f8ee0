package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TieRule selects how equal scores share ranks.
type TieRule string

const (
	// TieCompetition gives rank 1 + number of strictly higher scores.
	TieCompetition TieRule = "competition"
	// TiePositional orders equal scores by ascending index and ranks by position.
	TiePositional TieRule = "positional"
	// TieDense gives equal scores one rank and the next distinct score the next integer.
	TieDense TieRule = "dense"
)

// ParseTieRule validates a tie rule name.
func ParseTieRule(s string) (TieRule, error) {
	switch r := TieRule(strings.ToLower(strings.TrimSpace(s))); r {
	case TieCompetition, TiePositional, TieDense:
		return r, nil
	case "":
		return TieCompetition, nil
	}

	return "", fmt.Errorf("%w: tie rule %q", ErrInvalidConfig, s)
}

// Ranked is one entity of a ranking.
type Ranked struct {
	Index int
	Score float64
	Rank  int
}

// Ranking orders scores descending and assigns ranks under rule. Equal
// scores are listed by ascending index.
func Ranking(scores map[int]float64, rule TieRule) []Ranked {
	entries := make([]Ranked, 0, len(scores))
	for index, score := range scores {
		entries = append(entries, Ranked{Index: index, Score: score})
	}

	slices.SortFunc(entries, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Index, b.Index)
	})

	distinct := 0

	for i := range entries {
		newValue := i == 0 || entries[i].Score != entries[i-1].Score
		if newValue {
			distinct++
		}

		switch rule {
		case TiePositional:
			entries[i].Rank = i + 1
		case TieDense:
			entries[i].Rank = distinct
		default:
			if newValue {
				entries[i].Rank = i + 1
			} else {
				entries[i].Rank = entries[i-1].Rank
			}
		}
	}

	return entries
}

// Rank returns the rank of every index of scores under rule.
func Rank(scores map[int]float64, rule TieRule) map[int]int {
	ranks := make(map[int]int, len(scores))
	for _, entry := range Ranking(scores, rule) {
		ranks[entry.Index] = entry.Rank
	}

	return ranks
}
