package brackets

import "github.com/Dosada05/tournament-brackets/models"

// SkipReason explains why a match did not contribute to the tallies.
type SkipReason string

const (
	SkipUnplayable         SkipReason = "unplayable"
	SkipUnplayed           SkipReason = "unplayed"
	SkipUndecided          SkipReason = "undecided"
	SkipUnresolved         SkipReason = "unresolved_structure"
	SkipUnknownParticipant SkipReason = "unknown_participant"
	SkipConflicting        SkipReason = "conflicting"
)

// FoldStats summarises one pass of FoldMatches.
type FoldStats struct {
	Decided int
	Skipped map[SkipReason]int
}

func (s FoldStats) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// FoldMatches feeds every decided and resolvable match into the board. Matches
// that cannot be attributed are skipped and counted, never treated as errors.
//
// Both slots claiming a win is a data inconsistency: the match is excluded so
// that total wins still equal total losses.
func FoldMatches(board *Scoreboard, matches []models.Match, rounds []models.Round, groups []models.Group) FoldStats {
	stats := FoldStats{Skipped: make(map[SkipReason]int)}

	roundByID := make(map[int]models.Round, len(rounds))
	for _, r := range rounds {
		roundByID[r.ID] = r
	}
	groupByID := make(map[int]models.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}

	for _, m := range matches {
		if !m.Playable() {
			stats.Skipped[SkipUnplayable]++
			continue
		}
		if m.Opponent1.Result == nil && m.Opponent2.Result == nil {
			stats.Skipped[SkipUnplayed]++
			continue
		}
		round, okRound := roundByID[m.RoundID]
		group, okGroup := groupByID[m.GroupID]
		if !okRound || !okGroup {
			stats.Skipped[SkipUnresolved]++
			continue
		}

		p1, p2 := *m.Opponent1.ParticipantID, *m.Opponent2.ParticipantID
		if !board.Has(p1) || !board.Has(p2) {
			stats.Skipped[SkipUnknownParticipant]++
			continue
		}

		var winner, loser int
		switch {
		case m.Opponent1.Won() && m.Opponent2.Won():
			stats.Skipped[SkipConflicting]++
			continue
		case m.Opponent1.Won():
			winner, loser = p1, p2
		case m.Opponent2.Won():
			winner, loser = p2, p1
		default:
			stats.Skipped[SkipUndecided]++
			continue
		}

		board.RecordOutcome(winner, true, m.ID, group, round)
		board.RecordOutcome(loser, false, m.ID, group, round)
		stats.Decided++
	}
	return stats
}
