package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/metrics"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Dosada05/tournament-brackets/services"

// StageStandings is the standings report of one stage as served by the API.
type StageStandings struct {
	StageID      int                         `json:"stage_id"`
	TournamentID int                         `json:"tournament_id"`
	StageName    string                      `json:"stage_name"`
	StageType    models.StageType            `json:"stage_type"`
	Ranker       string                      `json:"ranker"`
	Placements   []models.PlacementRecord    `json:"placements"`
	Decided      int                         `json:"decided_matches"`
	Skipped      map[brackets.SkipReason]int `json:"skipped_matches,omitempty"`
}

type StandingsService interface {
	GetStandings(ctx context.Context, stageID int) (*StageStandings, error)
}

type standingsService struct {
	loader  *snapshotLoader
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewStandingsService(
	tx repositories.Transactor,
	stageRepo repositories.StageRepository,
	structureRepo repositories.StructureRepository,
	matchRepo repositories.MatchRepository,
	participantRepo repositories.ParticipantRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) StandingsService {
	return &standingsService{
		loader: &snapshotLoader{
			tx:              tx,
			stageRepo:       stageRepo,
			structureRepo:   structureRepo,
			matchRepo:       matchRepo,
			participantRepo: participantRepo,
		},
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

func (s *standingsService) GetStandings(ctx context.Context, stageID int) (*StageStandings, error) {
	ctx, span := s.tracer.Start(ctx, "StandingsService.GetStandings", trace.WithAttributes(
		attribute.Int("stage.id", stageID),
	))
	defer span.End()

	started := time.Now()

	snap, err := s.loader.load(ctx, stageID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot load failed")
		return nil, err
	}

	result, err := brackets.ComputeStandings(*snap)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "compute failed")
		if errors.Is(err, brackets.ErrUnsupportedStageType) {
			return nil, fmt.Errorf("%w: %s", ErrStageTypeUnsupported, snap.Stage.Type)
		}
		return nil, fmt.Errorf("failed to compute standings for stage %d: %w", stageID, err)
	}

	if n := result.Stats.Skipped[brackets.SkipConflicting]; n > 0 {
		s.logger.Warn("matches with two winners left out of standings",
			slog.Int("stage_id", stageID),
			slog.Int("count", n),
		)
	}

	skipped := make(map[string]int, len(result.Stats.Skipped))
	for reason, n := range result.Stats.Skipped {
		skipped[string(reason)] = n
	}
	s.metrics.ObserveComputation(string(snap.Stage.Type), skipped, time.Since(started))

	span.SetAttributes(
		attribute.String("stage.type", string(snap.Stage.Type)),
		attribute.Int("standings.participants", len(result.Placements)),
		attribute.Int("standings.decided", result.Stats.Decided),
	)

	return &StageStandings{
		StageID:      snap.Stage.ID,
		TournamentID: snap.Stage.TournamentID,
		StageName:    snap.Stage.Name,
		StageType:    snap.Stage.Type,
		Ranker:       result.Ranker,
		Placements:   result.Placements,
		Decided:      result.Stats.Decided,
		Skipped:      result.Stats.Skipped,
	}, nil
}
