package brackets

import "github.com/Dosada05/tournament-brackets/models"

// Standings is the result of one standings computation.
type Standings struct {
	Placements []models.PlacementRecord
	Stats      FoldStats
	Ranker     string
}

// ComputeStandings runs the full pipeline for one stage snapshot:
// scoreboard, match fold, ranking by stage type and report assembly.
// The snapshot is not modified.
func ComputeStandings(snapshot models.StageSnapshot) (*Standings, error) {
	ranker, err := RankerFor(snapshot.Stage.Type)
	if err != nil {
		return nil, err
	}

	board := NewScoreboard(snapshot.Participants)
	stats := FoldMatches(board, snapshot.Matches, snapshot.Rounds, snapshot.Groups)

	return &Standings{
		Placements: BuildReport(ranker.Rank(board.Entries())),
		Stats:      stats,
		Ranker:     ranker.GetName(),
	}, nil
}

// BuildReport assigns dense 1-based placements in rank order.
func BuildReport(ranked []Entry) []models.PlacementRecord {
	out := make([]models.PlacementRecord, len(ranked))
	for i, e := range ranked {
		out[i] = models.PlacementRecord{
			Placement:       i + 1,
			ParticipantID:   e.ParticipantID,
			ParticipantName: e.Name,
			Wins:            e.Wins,
			Losses:          e.Losses,
		}
	}
	return out
}
