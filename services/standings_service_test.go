package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStandings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stage, err := env.stages.ImportStage(ctx, fourPlayerBracket(3, nil))
	require.NoError(t, err)

	got, err := env.standings.GetStandings(ctx, stage.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Delta", "Alpha", "Beta", "Gamma"}, names(got.Placements))
	assert.Equal(t, 3, got.TournamentID)
	assert.Equal(t, "SingleElimination", got.Ranker)
	assert.Equal(t, 3, got.Decided)

	last := env.store.txOpts[len(env.store.txOpts)-1]
	require.NotNil(t, last)
	assert.Equal(t, sql.LevelRepeatableRead, last.Isolation)
	assert.True(t, last.ReadOnly)
}

func TestGetStandings_CountsConflictingMatches(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := fourPlayerBracket(1, nil)
	in.Matches[2].Opponent1 = slot(0, models.ResultWin)
	stage, err := env.stages.ImportStage(ctx, in)
	require.NoError(t, err)

	got, err := env.standings.GetStandings(ctx, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Decided)
	assert.Equal(t, 1, got.Skipped[brackets.SkipConflicting])

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"skipped_matches":{"conflicting":1}`)
}

func TestGetStandings_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.standings.GetStandings(ctx, 99)
	assert.ErrorIs(t, err, ErrStageNotFound)

	st := &models.Stage{TournamentID: 1, Name: "legacy", Type: "swiss"}
	require.NoError(t, stageRepo{env.store}.Create(ctx, nil, st))

	_, err = env.standings.GetStandings(ctx, st.ID)
	assert.ErrorIs(t, err, ErrStageTypeUnsupported)
}
