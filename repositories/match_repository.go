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
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchStageInvalid       = errors.New("match stage conflict or invalid")
	ErrMatchParticipantInvalid = errors.New("match participant conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	ListByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Match, error)
	ListAll(ctx context.Context) ([]models.Match, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, id int, opponent1, opponent2 models.Slot) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, stage_id, group_id, round_id, number,
	opponent1_id, opponent1_result, opponent1_score,
	opponent2_id, opponent2_result, opponent2_score,
	updated_at`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches
			(stage_id, group_id, round_id, number,
			 opponent1_id, opponent1_result, opponent1_score,
			 opponent2_id, opponent2_result, opponent2_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, updated_at`

	err := executor(r.db, exec).QueryRowContext(ctx, query,
		match.StageID,
		match.GroupID,
		match.RoundID,
		match.Number,
		match.Opponent1.ParticipantID,
		match.Opponent1.Result,
		match.Opponent1.Score,
		match.Opponent2.ParticipantID,
		match.Opponent2.Result,
		match.Opponent2.Score,
	).Scan(&match.ID, &match.UpdatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) scanMatch(row rowScanner) (models.Match, error) {
	var m models.Match
	var o1ID, o1Score, o2ID, o2Score sql.NullInt64
	var o1Result, o2Result sql.NullString
	err := row.Scan(
		&m.ID, &m.StageID, &m.GroupID, &m.RoundID, &m.Number,
		&o1ID, &o1Result, &o1Score,
		&o2ID, &o2Result, &o2Score,
		&m.UpdatedAt,
	)
	if err != nil {
		return m, err
	}
	m.Opponent1 = slotFromColumns(o1ID, o1Result, o1Score)
	m.Opponent2 = slotFromColumns(o2ID, o2Result, o2Score)
	return m, nil
}

func slotFromColumns(id sql.NullInt64, result sql.NullString, score sql.NullInt64) models.Slot {
	s := models.Slot{
		ParticipantID: nullableInt(id),
		Score:         nullableInt(score),
	}
	if result.Valid {
		res := models.MatchResult(result.String)
		s.Result = &res
	}
	return s
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := r.scanMatch(executor(r.db, exec).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return &m, nil
}

func (r *postgresMatchRepository) ListByStage(ctx context.Context, exec SQLExecutor, stageID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE stage_id = $1 ORDER BY id ASC`
	return r.list(ctx, executor(r.db, exec), query, stageID)
}

func (r *postgresMatchRepository) ListAll(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY stage_id ASC, id ASC`
	return r.list(ctx, r.db, query)
}

func (r *postgresMatchRepository) list(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := r.scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

// UpdateResult stores results and scores only; the slot participants are owned
// by the bracket engine and are left untouched.
func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id int, opponent1, opponent2 models.Slot) error {
	query := `
		UPDATE matches
		SET opponent1_result = $1, opponent1_score = $2,
		    opponent2_result = $3, opponent2_score = $4,
		    updated_at = NOW()
		WHERE id = $5`

	result, err := executor(r.db, exec).ExecContext(ctx, query,
		opponent1.Result, opponent1.Score,
		opponent2.Result, opponent2.Score,
		id,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "matches_stage_id_fkey":
			return ErrMatchStageInvalid
		case "matches_opponent1_id_fkey", "matches_opponent2_id_fkey":
			return ErrMatchParticipantInvalid
		}
	}
	return fmt.Errorf("match query failed: %w", err)
}
