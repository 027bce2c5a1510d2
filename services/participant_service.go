package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
)

type ParticipantService interface {
	CreateParticipant(ctx context.Context, input CreateParticipantInput) (*models.Participant, error)
	GetParticipant(ctx context.Context, id int) (*models.Participant, error)
	ListParticipants(ctx context.Context, tournamentID *int) ([]models.Participant, error)
	DeleteParticipant(ctx context.Context, id int) error
}

type CreateParticipantInput struct {
	TournamentID int    `json:"tournament_id"`
	Name         string `json:"name"`
}

type participantService struct {
	repo repositories.ParticipantRepository
}

func NewParticipantService(repo repositories.ParticipantRepository) ParticipantService {
	return &participantService{repo: repo}
}

func (s *participantService) CreateParticipant(ctx context.Context, input CreateParticipantInput) (*models.Participant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrParticipantName
	}
	if input.TournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament_id must be positive", ErrValidationFailed)
	}

	p := &models.Participant{TournamentID: input.TournamentID, Name: &name}
	if err := s.repo.Create(ctx, nil, p); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return p, nil
}

func (s *participantService) GetParticipant(ctx context.Context, id int) (*models.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %d: %w", id, err)
	}
	return p, nil
}

func (s *participantService) ListParticipants(ctx context.Context, tournamentID *int) ([]models.Participant, error) {
	var (
		participants []models.Participant
		err          error
	)
	if tournamentID != nil {
		participants, err = s.repo.ListByTournament(ctx, nil, *tournamentID)
	} else {
		participants, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}
	return nil
}
