package brackets

import "github.com/Dosada05/tournament-brackets/models"

func ptr[T any](v T) *T { return &v }

func player(id int, name string) models.Participant {
	return models.Participant{ID: id, TournamentID: 1, Name: ptr(name)}
}

func bye(id int) models.Participant {
	return models.Participant{ID: id, TournamentID: 1}
}

// played builds a decided match in which winner beats loser.
func played(id, groupID, roundID, winner, loser int) models.Match {
	return models.Match{
		ID:      id,
		StageID: 1,
		GroupID: groupID,
		RoundID: roundID,
		Opponent1: models.Slot{
			ParticipantID: ptr(winner),
			Result:        ptr(models.ResultWin),
		},
		Opponent2: models.Slot{
			ParticipantID: ptr(loser),
			Result:        ptr(models.ResultLoss),
		},
	}
}

func pending(id, groupID, roundID int, p1, p2 *int) models.Match {
	return models.Match{
		ID:        id,
		StageID:   1,
		GroupID:   groupID,
		RoundID:   roundID,
		Opponent1: models.Slot{ParticipantID: p1},
		Opponent2: models.Slot{ParticipantID: p2},
	}
}

func placementIDs(records []models.PlacementRecord) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ParticipantID
	}
	return ids
}
