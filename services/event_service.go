package services

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentStages bounds parallel standings computations per event.
const maxConcurrentStages = 4

type EventService interface {
	GetRankings(ctx context.Context, eventName string) ([]models.EventRanking, error)
}

type eventService struct {
	stageRepo repositories.StageRepository
	standings StandingsService
}

func NewEventService(stageRepo repositories.StageRepository, standings StandingsService) EventService {
	return &eventService{stageRepo: stageRepo, standings: standings}
}

func (s *eventService) GetRankings(ctx context.Context, eventName string) ([]models.EventRanking, error) {
	stages, err := s.stageRepo.List(ctx, &eventName)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages of event %q: %w", eventName, err)
	}
	if len(stages) == 0 {
		return nil, ErrEventNotFound
	}

	results := make([]*StageStandings, len(stages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentStages)
	for i, stage := range stages {
		g.Go(func() error {
			st, err := s.standings.GetStandings(gctx, stage.ID)
			if err != nil {
				return fmt.Errorf("stage %d: %w", stage.ID, err)
			}
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return AggregateRankings(results), nil
}

// AggregateRankings sums placement points and records per participant name
// across stages. Stages of the same tournament count once toward Tournaments.
func AggregateRankings(stages []*StageStandings) []models.EventRanking {
	type acc struct {
		ranking     models.EventRanking
		tournaments map[int]struct{}
	}
	byName := make(map[string]*acc)

	for _, st := range stages {
		if st == nil {
			continue
		}
		for _, p := range st.Placements {
			a, ok := byName[p.ParticipantName]
			if !ok {
				a = &acc{
					ranking:     models.EventRanking{Name: p.ParticipantName},
					tournaments: make(map[int]struct{}),
				}
				byName[p.ParticipantName] = a
			}
			a.ranking.Points += brackets.PointsForPlacement(p.Placement)
			a.ranking.Wins += p.Wins
			a.ranking.Losses += p.Losses
			a.tournaments[st.TournamentID] = struct{}{}
		}
	}

	out := make([]models.EventRanking, 0, len(byName))
	for _, a := range byName {
		r := a.ranking
		r.Played = r.Wins + r.Losses
		r.Tournaments = len(a.tournaments)
		if r.Played > 0 {
			r.WinRate = math.Round(float64(r.Wins)/float64(r.Played)*1000) / 10
		}
		out = append(out, r)
	}

	slices.SortFunc(out, func(a, b models.EventRanking) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.WinRate, a.WinRate); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Tournaments, a.Tournaments); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
