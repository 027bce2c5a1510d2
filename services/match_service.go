package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-brackets/events"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
)

type MatchService interface {
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateResult(ctx context.Context, matchID int, input UpdateMatchResultInput) (*models.Match, error)
}

type SlotResultInput struct {
	Result *models.MatchResult `json:"result"`
	Score  *int                `json:"score"`
}

type UpdateMatchResultInput struct {
	Opponent1 SlotResultInput `json:"opponent1"`
	Opponent2 SlotResultInput `json:"opponent2"`
}

// StandingsBroadcaster pushes fresh standings to live viewers of a stage.
type StandingsBroadcaster interface {
	BroadcastStandings(stageID int, standings interface{}) error
}

const publishTimeout = 5 * time.Second

type matchService struct {
	matchRepo   repositories.MatchRepository
	standings   StandingsService
	broadcaster StandingsBroadcaster
	publisher   events.Publisher
	logger      *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	standings StandingsService,
	broadcaster StandingsBroadcaster,
	publisher events.Publisher,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:   matchRepo,
		standings:   standings,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *matchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) UpdateResult(ctx context.Context, matchID int, input UpdateMatchResultInput) (*models.Match, error) {
	if err := validateResult(input.Opponent1.Result); err != nil {
		return nil, err
	}
	if err := validateResult(input.Opponent2.Result); err != nil {
		return nil, err
	}
	if isWin(input.Opponent1.Result) && isWin(input.Opponent2.Result) {
		return nil, ErrConflictingResults
	}

	match, err := s.matchRepo.GetByID(ctx, nil, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}

	if (input.Opponent1.Result != nil && match.Opponent1.ParticipantID == nil) ||
		(input.Opponent2.Result != nil && match.Opponent2.ParticipantID == nil) {
		return nil, ErrEmptySlotResult
	}

	match.Opponent1.Result, match.Opponent1.Score = input.Opponent1.Result, input.Opponent1.Score
	match.Opponent2.Result, match.Opponent2.Score = input.Opponent2.Result, input.Opponent2.Score

	if err := s.matchRepo.UpdateResult(ctx, nil, matchID, match.Opponent1, match.Opponent2); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d: %w", matchID, err)
	}

	s.notifyStandingsChanged(ctx, match.StageID)

	return match, nil
}

// notifyStandingsChanged recomputes the stage's standings and fans them out.
// Failures here never fail the result update that triggered them.
func (s *matchService) notifyStandingsChanged(ctx context.Context, stageID int) {
	logger := s.logger.With(slog.Int("stage_id", stageID))

	standings, err := s.standings.GetStandings(ctx, stageID)
	if err != nil {
		logger.Warn("standings recompute after result update failed", slog.Any("error", err))
		return
	}

	if err := s.broadcaster.BroadcastStandings(stageID, standings.Placements); err != nil {
		logger.Warn("standings broadcast failed", slog.Any("error", err))
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishStandings(pubCtx, stageID, standings); err != nil {
		logger.Warn("standings publish failed", slog.Any("error", err))
	}
}

func isWin(r *models.MatchResult) bool {
	return r != nil && *r == models.ResultWin
}
