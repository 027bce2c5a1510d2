package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/tournament-brackets/metrics"
	"github.com/Dosada05/tournament-brackets/models"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	store       *memStore
	stages      StageService
	standings   StandingsService
	matches     MatchService
	events      EventService
	broadcaster *recordingBroadcaster
	publisher   *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	sr, str, mr, pr := stageRepo{store}, structureRepo{store}, matchRepo{store}, participantRepo{store}

	standings := NewStandingsService(store, sr, str, mr, pr, metrics.New(), discardLogger())
	env := &testEnv{
		store:       store,
		stages:      NewStageService(store, sr, str, mr, pr),
		standings:   standings,
		events:      NewEventService(sr, standings),
		broadcaster: &recordingBroadcaster{},
		publisher:   &recordingPublisher{},
	}
	env.matches = NewMatchService(mr, standings, env.broadcaster, env.publisher, discardLogger())
	return env
}

func slot(id int, result models.MatchResult) models.Slot {
	s := models.Slot{ParticipantID: &id}
	if result != "" {
		s.Result = &result
	}
	return s
}

// fourPlayerBracket is a decided single elimination: Alpha and Delta win the
// semifinals, Delta wins the final.
func fourPlayerBracket(tournamentID int, event *string) ImportStageInput {
	return ImportStageInput{
		TournamentID: tournamentID,
		Name:         "Main bracket",
		Type:         models.StageSingleElimination,
		EventName:    event,
		Participants: []ImportParticipantInput{
			{ID: 0, Name: ptr("Alpha")},
			{ID: 1, Name: ptr("Beta")},
			{ID: 2, Name: ptr("Gamma")},
			{ID: 3, Name: ptr("Delta")},
		},
		Groups: []ImportGroupInput{{ID: 0, Number: 1}},
		Rounds: []ImportRoundInput{{ID: 0, GroupID: 0, Number: 1}, {ID: 1, GroupID: 0, Number: 2}},
		Matches: []ImportMatchInput{
			{ID: 0, GroupID: 0, RoundID: 0, Number: 1, Opponent1: slot(0, models.ResultWin), Opponent2: slot(1, models.ResultLoss)},
			{ID: 1, GroupID: 0, RoundID: 0, Number: 2, Opponent1: slot(2, models.ResultLoss), Opponent2: slot(3, models.ResultWin)},
			{ID: 2, GroupID: 0, RoundID: 1, Number: 1, Opponent1: slot(0, models.ResultLoss), Opponent2: slot(3, models.ResultWin)},
		},
	}
}

func names(records []models.PlacementRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ParticipantName
	}
	return out
}
