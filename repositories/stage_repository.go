package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/lib/pq"
)

var (
	ErrStageNotFound    = errors.New("stage not found")
	ErrStageTypeInvalid = errors.New("stage type is not supported by storage")
)

type StageRepository interface {
	Create(ctx context.Context, exec SQLExecutor, stage *models.Stage) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Stage, error)
	List(ctx context.Context, eventName *string) ([]*models.Stage, error)
	Delete(ctx context.Context, id int) error
}

type postgresStageRepository struct {
	db *sql.DB
}

func NewPostgresStageRepository(db *sql.DB) StageRepository {
	return &postgresStageRepository{db: db}
}

const stageColumns = `id, tournament_id, name, type, event_name, number, created_at`

func (r *postgresStageRepository) Create(ctx context.Context, exec SQLExecutor, stage *models.Stage) error {
	query := `
		INSERT INTO stages (tournament_id, name, type, event_name, number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor(r.db, exec).QueryRowContext(ctx, query,
		stage.TournamentID,
		stage.Name,
		stage.Type,
		stage.EventName,
		stage.Number,
	).Scan(&stage.ID, &stage.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23514" {
			return ErrStageTypeInvalid
		}
		return fmt.Errorf("failed to create stage: %w", err)
	}
	return nil
}

func (r *postgresStageRepository) scanStage(row rowScanner) (*models.Stage, error) {
	var s models.Stage
	var eventName sql.NullString
	if err := row.Scan(&s.ID, &s.TournamentID, &s.Name, &s.Type, &eventName, &s.Number, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.EventName = nullableString(eventName)
	return &s, nil
}

func (r *postgresStageRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE id = $1`
	stage, err := r.scanStage(executor(r.db, exec).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage %d: %w", id, err)
	}
	return stage, nil
}

func (r *postgresStageRepository) List(ctx context.Context, eventName *string) ([]*models.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages`
	args := []interface{}{}
	if eventName != nil {
		query += ` WHERE event_name = $1`
		args = append(args, *eventName)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	stages := make([]*models.Stage, 0)
	for rows.Next() {
		s, err := r.scanStage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stage row: %w", err)
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during stage rows iteration: %w", err)
	}
	return stages, nil
}

// Delete removes the stage; groups, rounds and matches go with it via ON DELETE CASCADE.
func (r *postgresStageRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stage %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrStageNotFound)
}
