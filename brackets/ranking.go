package brackets

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-brackets/models"
)

var ErrUnsupportedStageType = errors.New("unsupported stage type")

// Ranker orders scoreboard entries from first place to last. Implementations
// must sort stably so that remaining ties keep roster order.
type Ranker interface {
	Rank(entries []Entry) []Entry

	GetName() string
}

// RankerFor selects the ranking rule for a stage type.
func RankerFor(stageType models.StageType) (Ranker, error) {
	switch stageType {
	case models.StageSingleElimination:
		return SingleEliminationRanker{}, nil
	case models.StageDoubleElimination:
		return DoubleEliminationRanker{}, nil
	case models.StageRoundRobin:
		// Provisional: no points rule has been decided for round robin yet,
		// so it is ordered by record like single elimination.
		return RoundRobinRanker{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStageType, stageType)
	}
}

// SingleEliminationRanker orders by wins, then fewer losses. It does not look at
// how deep a participant went, so equal records are not told apart.
type SingleEliminationRanker struct{}

func (SingleEliminationRanker) GetName() string { return "SingleElimination" }

func (SingleEliminationRanker) Rank(entries []Entry) []Entry {
	return sortedCopy(entries, compareRecord)
}

// DoubleEliminationRanker orders by the furthest bracket phase reached, whether
// that last match was won, the round inside the phase, then the record.
type DoubleEliminationRanker struct{}

func (DoubleEliminationRanker) GetName() string { return "DoubleElimination" }

func (DoubleEliminationRanker) Rank(entries []Entry) []Entry {
	return sortedCopy(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.LastMatchGroup, a.LastMatchGroup); c != 0 {
			return c
		}
		if a.WonLastMatch != b.WonLastMatch {
			if a.WonLastMatch {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(b.LastMatchRound, a.LastMatchRound); c != 0 {
			return c
		}
		return compareRecord(a, b)
	})
}

type RoundRobinRanker struct{}

func (RoundRobinRanker) GetName() string { return "RoundRobin" }

func (RoundRobinRanker) Rank(entries []Entry) []Entry {
	return sortedCopy(entries, compareRecord)
}

func compareRecord(a, b Entry) int {
	if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
		return c
	}
	return cmp.Compare(a.Losses, b.Losses)
}

func sortedCopy(entries []Entry, cmpFn func(a, b Entry) int) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, cmpFn)
	return out
}
