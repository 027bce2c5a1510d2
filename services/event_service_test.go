package services

import (
	"context"
	"testing"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRankings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Two tournaments of the same event with identical results, plus an unrelated stage.
	_, err := env.stages.ImportStage(ctx, fourPlayerBracket(1, ptr("open")))
	require.NoError(t, err)
	_, err = env.stages.ImportStage(ctx, fourPlayerBracket(2, ptr("open")))
	require.NoError(t, err)
	_, err = env.stages.ImportStage(ctx, fourPlayerBracket(3, ptr("other")))
	require.NoError(t, err)

	got, err := env.events.GetRankings(ctx, "open")
	require.NoError(t, err)

	want := []models.EventRanking{
		{Name: "Delta", Points: 60, Wins: 4, Losses: 0, Played: 4, Tournaments: 2, WinRate: 100},
		{Name: "Alpha", Points: 44, Wins: 2, Losses: 2, Played: 4, Tournaments: 2, WinRate: 50},
		{Name: "Beta", Points: 32, Wins: 0, Losses: 2, Played: 2, Tournaments: 2, WinRate: 0},
		{Name: "Gamma", Points: 24, Wins: 0, Losses: 2, Played: 2, Tournaments: 2, WinRate: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rankings mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRankings_UnknownEvent(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.events.GetRankings(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAggregateRankings_TieBreaks(t *testing.T) {
	stages := []*StageStandings{
		{TournamentID: 1, Placements: []models.PlacementRecord{
			{Placement: 1, ParticipantName: "Kim", Wins: 2, Losses: 1},
			{Placement: 2, ParticipantName: "Lee", Wins: 1, Losses: 0},
		}},
		{TournamentID: 2, Placements: []models.PlacementRecord{
			{Placement: 2, ParticipantName: "Kim", Wins: 1, Losses: 2},
			{Placement: 1, ParticipantName: "Lee", Wins: 2, Losses: 1},
		}},
		nil,
	}

	got := AggregateRankings(stages)
	require.Len(t, got, 2)

	// Equal points (52) and wins (3); Lee has the better win rate.
	assert.Equal(t, "Lee", got[0].Name)
	assert.Equal(t, 75.0, got[0].WinRate)
	assert.Equal(t, "Kim", got[1].Name)
	assert.Equal(t, 50.0, got[1].WinRate)
}

func TestAggregateRankings_WinRateRounding(t *testing.T) {
	got := AggregateRankings([]*StageStandings{
		{TournamentID: 1, Placements: []models.PlacementRecord{{Placement: 20, ParticipantName: "Solo", Wins: 1, Losses: 2}}},
	})
	require.Len(t, got, 1)
	assert.Equal(t, 33.3, got[0].WinRate)
	assert.Equal(t, 1, got[0].Points)
}
