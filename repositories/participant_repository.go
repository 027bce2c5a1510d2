package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-brackets/models"
)

var ErrParticipantNotFound = errors.New("participant not found")

type ParticipantRepository interface {
	Create(ctx context.Context, exec SQLExecutor, p *models.Participant) error
	FindByID(ctx context.Context, id int) (*models.Participant, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Participant, error)
	ListAll(ctx context.Context) ([]models.Participant, error)
	Delete(ctx context.Context, id int) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, exec SQLExecutor, p *models.Participant) error {
	query := `
		INSERT INTO participants (tournament_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	if err := executor(r.db, exec).QueryRowContext(ctx, query, p.TournamentID, p.Name).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *postgresParticipantRepository) scanParticipant(row rowScanner) (models.Participant, error) {
	var p models.Participant
	var name sql.NullString
	if err := row.Scan(&p.ID, &p.TournamentID, &name, &p.CreatedAt); err != nil {
		return p, err
	}
	p.Name = nullableString(name)
	return p, nil
}

func (r *postgresParticipantRepository) FindByID(ctx context.Context, id int) (*models.Participant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, tournament_id, name, created_at FROM participants WHERE id = $1`, id)
	p, err := r.scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %d: %w", id, err)
	}
	return &p, nil
}

// ListByTournament returns the roster in insertion order, which is the order
// ties are broken by in standings.
func (r *postgresParticipantRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Participant, error) {
	query := `SELECT id, tournament_id, name, created_at FROM participants WHERE tournament_id = $1 ORDER BY id ASC`
	return r.list(ctx, executor(r.db, exec), query, tournamentID)
}

func (r *postgresParticipantRepository) ListAll(ctx context.Context) ([]models.Participant, error) {
	return r.list(ctx, r.db, `SELECT id, tournament_id, name, created_at FROM participants ORDER BY id ASC`)
}

func (r *postgresParticipantRepository) list(ctx context.Context, exec SQLExecutor, query string, args ...interface{}) ([]models.Participant, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		p, err := r.scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during participant rows iteration: %w", err)
	}
	return participants, nil
}

// Delete removes the participant; match slots that referenced it become empty.
func (r *postgresParticipantRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}
