package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/tournament-brackets/models"
)

// StructureRepository stores the groups and rounds of a stage.
type StructureRepository interface {
	CreateGroup(ctx context.Context, exec SQLExecutor, group *models.Group) error
	CreateRound(ctx context.Context, exec SQLExecutor, round *models.Round) error
	ListGroupsByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Group, error)
	ListRoundsByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Round, error)
}

type postgresStructureRepository struct {
	db *sql.DB
}

func NewPostgresStructureRepository(db *sql.DB) StructureRepository {
	return &postgresStructureRepository{db: db}
}

func (r *postgresStructureRepository) CreateGroup(ctx context.Context, exec SQLExecutor, group *models.Group) error {
	err := executor(r.db, exec).QueryRowContext(ctx,
		`INSERT INTO groups (stage_id, number) VALUES ($1, $2) RETURNING id`,
		group.StageID, group.Number,
	).Scan(&group.ID)
	if err != nil {
		return fmt.Errorf("failed to create group for stage %d: %w", group.StageID, err)
	}
	return nil
}

func (r *postgresStructureRepository) CreateRound(ctx context.Context, exec SQLExecutor, round *models.Round) error {
	err := executor(r.db, exec).QueryRowContext(ctx,
		`INSERT INTO rounds (stage_id, group_id, number) VALUES ($1, $2, $3) RETURNING id`,
		round.StageID, round.GroupID, round.Number,
	).Scan(&round.ID)
	if err != nil {
		return fmt.Errorf("failed to create round for stage %d: %w", round.StageID, err)
	}
	return nil
}

func (r *postgresStructureRepository) ListGroupsByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Group, error) {
	rows, err := executor(r.db, exec).QueryContext(ctx,
		`SELECT id, stage_id, number FROM groups WHERE stage_id = $1 ORDER BY number ASC, id ASC`, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups for stage %d: %w", stageID, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.StageID, &g.Number); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *postgresStructureRepository) ListRoundsByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Round, error) {
	rows, err := executor(r.db, exec).QueryContext(ctx,
		`SELECT id, stage_id, group_id, number FROM rounds WHERE stage_id = $1 ORDER BY group_id ASC, number ASC, id ASC`, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds for stage %d: %w", stageID, err)
	}
	defer rows.Close()

	rounds := make([]models.Round, 0)
	for rows.Next() {
		var rd models.Round
		if err := rows.Scan(&rd.ID, &rd.StageID, &rd.GroupID, &rd.Number); err != nil {
			return nil, fmt.Errorf("failed to scan round row: %w", err)
		}
		rounds = append(rounds, rd)
	}
	return rounds, rows.Err()
}
