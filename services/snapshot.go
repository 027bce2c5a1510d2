package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
)

// snapshotLoader reads everything a stage's standings depend on in one
// read-only transaction, so a concurrent result update cannot split the view.
type snapshotLoader struct {
	tx              repositories.Transactor
	stageRepo       repositories.StageRepository
	structureRepo   repositories.StructureRepository
	matchRepo       repositories.MatchRepository
	participantRepo repositories.ParticipantRepository
}

var snapshotTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (l *snapshotLoader) load(ctx context.Context, stageID int) (*models.StageSnapshot, error) {
	var snap models.StageSnapshot

	err := l.tx.WithinTx(ctx, snapshotTxOptions, func(exec repositories.SQLExecutor) error {
		stage, err := l.stageRepo.GetByID(ctx, exec, stageID)
		if err != nil {
			return err
		}
		snap.Stage = *stage

		if snap.Groups, err = l.structureRepo.ListGroupsByStage(ctx, exec, stageID); err != nil {
			return err
		}
		if snap.Rounds, err = l.structureRepo.ListRoundsByStage(ctx, exec, stageID); err != nil {
			return err
		}
		if snap.Matches, err = l.matchRepo.ListByStage(ctx, exec, stageID); err != nil {
			return err
		}
		snap.Participants, err = l.participantRepo.ListByTournament(ctx, exec, stage.TournamentID)
		return err
	})
	if err != nil {
		if errors.Is(err, repositories.ErrStageNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot for stage %d: %w", stageID, err)
	}
	return &snap, nil
}
