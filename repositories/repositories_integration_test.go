//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Dosada05/tournament-brackets/db"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("brackets"),
		postgres.WithUsername("brackets"),
		postgres.WithPassword("brackets"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := db.Connect(dsn, 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	applied, err := db.Migrate(ctx, conn)
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	again, err := db.Migrate(ctx, conn)
	require.NoError(t, err)
	require.Empty(t, again)

	return conn
}

func TestRepositories_StageLifecycle(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	tx := NewPostgresTransactor(conn)
	stages := NewPostgresStageRepository(conn)
	structure := NewPostgresStructureRepository(conn)
	matches := NewPostgresMatchRepository(conn)
	participants := NewPostgresParticipantRepository(conn)

	event := "open"
	stage := &models.Stage{TournamentID: 1, Name: "Main", Type: models.StageDoubleElimination, EventName: &event, Number: 1}
	var match models.Match

	err := tx.WithinTx(ctx, nil, func(exec SQLExecutor) error {
		if err := stages.Create(ctx, exec, stage); err != nil {
			return err
		}
		alpha := &models.Participant{TournamentID: 1, Name: ptr("Alpha")}
		bye := &models.Participant{TournamentID: 1}
		if err := participants.Create(ctx, exec, alpha); err != nil {
			return err
		}
		if err := participants.Create(ctx, exec, bye); err != nil {
			return err
		}
		group := &models.Group{StageID: stage.ID, Number: 1}
		if err := structure.CreateGroup(ctx, exec, group); err != nil {
			return err
		}
		round := &models.Round{StageID: stage.ID, GroupID: group.ID, Number: 1}
		if err := structure.CreateRound(ctx, exec, round); err != nil {
			return err
		}
		match = models.Match{
			StageID: stage.ID, GroupID: group.ID, RoundID: round.ID, Number: 1,
			Opponent1: models.Slot{ParticipantID: &alpha.ID},
			Opponent2: models.Slot{ParticipantID: &bye.ID},
		}
		return matches.Create(ctx, exec, &match)
	})
	require.NoError(t, err)

	got, err := stages.GetByID(ctx, nil, stage.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageDoubleElimination, got.Type)
	require.NotNil(t, got.EventName)

	byEvent, err := stages.List(ctx, &event)
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	roster, err := participants.ListByTournament(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.False(t, roster[0].IsBye())
	assert.True(t, roster[1].IsBye())

	win, loss := models.ResultWin, models.ResultLoss
	require.NoError(t, matches.UpdateResult(ctx, nil, match.ID,
		models.Slot{Result: &win, Score: ptr(2)},
		models.Slot{Result: &loss},
	))
	stored, err := matches.GetByID(ctx, nil, match.ID)
	require.NoError(t, err)
	assert.True(t, stored.Opponent1.Won())
	assert.Equal(t, 2, *stored.Opponent1.Score)
	assert.Equal(t, match.Opponent1.ParticipantID, stored.Opponent1.ParticipantID)
	assert.Nil(t, stored.Opponent2.Score)

	assert.ErrorIs(t, matches.UpdateResult(ctx, nil, 9999, models.Slot{}, models.Slot{}), ErrMatchNotFound)

	require.NoError(t, stages.Delete(ctx, stage.ID))
	_, err = stages.GetByID(ctx, nil, stage.ID)
	assert.ErrorIs(t, err, ErrStageNotFound)

	left, err := matches.ListByStage(ctx, nil, stage.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestRepositories_Constraints(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	stages := NewPostgresStageRepository(conn)
	err := stages.Create(ctx, nil, &models.Stage{TournamentID: 1, Name: "x", Type: "swiss", Number: 1})
	assert.ErrorIs(t, err, ErrStageTypeInvalid)

	matches := NewPostgresMatchRepository(conn)
	err = matches.Create(ctx, nil, &models.Match{StageID: 4242, GroupID: 1, RoundID: 1, Number: 1})
	assert.ErrorIs(t, err, ErrMatchStageInvalid)

	assert.ErrorIs(t, NewPostgresParticipantRepository(conn).Delete(ctx, 777), ErrParticipantNotFound)
}

func TestTransactor_RollsBack(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	stages := NewPostgresStageRepository(conn)

	err := NewPostgresTransactor(conn).WithinTx(ctx, nil, func(exec SQLExecutor) error {
		if err := stages.Create(ctx, exec, &models.Stage{TournamentID: 1, Name: "tmp", Type: models.StageRoundRobin, Number: 1}); err != nil {
			return err
		}
		return sql.ErrTxDone
	})
	assert.ErrorIs(t, err, sql.ErrTxDone)

	all, err := stages.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func ptr[T any](v T) *T { return &v }
