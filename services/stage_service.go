package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
)

type StageService interface {
	ListStages(ctx context.Context, eventName *string) ([]*models.Stage, error)
	GetStage(ctx context.Context, id int) (*models.Stage, error)
	ImportStage(ctx context.Context, input ImportStageInput) (*models.Stage, error)
	DeleteStage(ctx context.Context, id int) error
	ListStageMatches(ctx context.Context, stageID int) ([]models.Match, error)
	GetViewerData(ctx context.Context, stageID int) (*models.StageSnapshot, error)
}

// ImportStageInput is a bracket document produced by the bracket engine.
// Its ids are local to the document and are replaced on import.
type ImportStageInput struct {
	TournamentID int                      `json:"tournament_id"`
	Name         string                   `json:"name"`
	Type         models.StageType         `json:"type"`
	EventName    *string                  `json:"event_name,omitempty"`
	Number       int                      `json:"number,omitempty"`
	Participants []ImportParticipantInput `json:"participants"`
	Groups       []ImportGroupInput       `json:"groups"`
	Rounds       []ImportRoundInput       `json:"rounds"`
	Matches      []ImportMatchInput       `json:"matches"`
}

type ImportParticipantInput struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type ImportGroupInput struct {
	ID     int `json:"id"`
	Number int `json:"number"`
}

type ImportRoundInput struct {
	ID      int `json:"id"`
	GroupID int `json:"group_id"`
	Number  int `json:"number"`
}

type ImportMatchInput struct {
	ID        int         `json:"id"`
	GroupID   int         `json:"group_id"`
	RoundID   int         `json:"round_id"`
	Number    int         `json:"number"`
	Opponent1 models.Slot `json:"opponent1"`
	Opponent2 models.Slot `json:"opponent2"`
}

type stageService struct {
	tx              repositories.Transactor
	stageRepo       repositories.StageRepository
	structureRepo   repositories.StructureRepository
	matchRepo       repositories.MatchRepository
	participantRepo repositories.ParticipantRepository
	loader          *snapshotLoader
}

func NewStageService(
	tx repositories.Transactor,
	stageRepo repositories.StageRepository,
	structureRepo repositories.StructureRepository,
	matchRepo repositories.MatchRepository,
	participantRepo repositories.ParticipantRepository,
) StageService {
	return &stageService{
		tx:              tx,
		stageRepo:       stageRepo,
		structureRepo:   structureRepo,
		matchRepo:       matchRepo,
		participantRepo: participantRepo,
		loader: &snapshotLoader{
			tx:              tx,
			stageRepo:       stageRepo,
			structureRepo:   structureRepo,
			matchRepo:       matchRepo,
			participantRepo: participantRepo,
		},
	}
}

func (s *stageService) ListStages(ctx context.Context, eventName *string) ([]*models.Stage, error) {
	stages, err := s.stageRepo.List(ctx, eventName)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stages, nil
}

func (s *stageService) GetStage(ctx context.Context, id int) (*models.Stage, error) {
	stage, err := s.stageRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStageNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage by id %d: %w", id, err)
	}
	return stage, nil
}

func (s *stageService) DeleteStage(ctx context.Context, id int) error {
	if err := s.stageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStageNotFound) {
			return ErrStageNotFound
		}
		return fmt.Errorf("failed to delete stage %d: %w", id, err)
	}
	return nil
}

func (s *stageService) ListStageMatches(ctx context.Context, stageID int) ([]models.Match, error) {
	if _, err := s.GetStage(ctx, stageID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByStage(ctx, nil, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of stage %d: %w", stageID, err)
	}
	return matches, nil
}

func (s *stageService) GetViewerData(ctx context.Context, stageID int) (*models.StageSnapshot, error) {
	return s.loader.load(ctx, stageID)
}

func (s *stageService) ImportStage(ctx context.Context, input ImportStageInput) (*models.Stage, error) {
	if err := validateImport(&input); err != nil {
		return nil, err
	}

	stage := &models.Stage{
		TournamentID: input.TournamentID,
		Name:         input.Name,
		Type:         input.Type,
		EventName:    input.EventName,
		Number:       input.Number,
	}

	err := s.tx.WithinTx(ctx, nil, func(exec repositories.SQLExecutor) error {
		if err := s.stageRepo.Create(ctx, exec, stage); err != nil {
			return err
		}

		participantIDs, err := s.resolveParticipants(ctx, exec, input.TournamentID, input.Participants)
		if err != nil {
			return err
		}

		groupIDs := make(map[int]int, len(input.Groups))
		for _, g := range input.Groups {
			stored := &models.Group{StageID: stage.ID, Number: g.Number}
			if err := s.structureRepo.CreateGroup(ctx, exec, stored); err != nil {
				return err
			}
			groupIDs[g.ID] = stored.ID
		}

		roundIDs := make(map[int]int, len(input.Rounds))
		for _, r := range input.Rounds {
			stored := &models.Round{StageID: stage.ID, GroupID: groupIDs[r.GroupID], Number: r.Number}
			if err := s.structureRepo.CreateRound(ctx, exec, stored); err != nil {
				return err
			}
			roundIDs[r.ID] = stored.ID
		}

		for _, m := range input.Matches {
			stored := &models.Match{
				StageID:   stage.ID,
				GroupID:   groupIDs[m.GroupID],
				RoundID:   roundIDs[m.RoundID],
				Number:    m.Number,
				Opponent1: remapSlot(m.Opponent1, participantIDs),
				Opponent2: remapSlot(m.Opponent2, participantIDs),
			}
			if err := s.matchRepo.Create(ctx, exec, stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrStageTypeInvalid) {
			return nil, fmt.Errorf("%w: %s", ErrStageTypeUnsupported, input.Type)
		}
		return nil, fmt.Errorf("failed to import stage %q: %w", input.Name, err)
	}
	return stage, nil
}

// resolveParticipants maps document participant ids to stored ids. Named players
// already registered in the tournament are reused so that every stage of the
// tournament shares one roster; BYEs and new players get fresh rows.
func (s *stageService) resolveParticipants(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, participants []ImportParticipantInput) (map[int]int, error) {
	existing, err := s.participantRepo.ListByTournament(ctx, exec, tournamentID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int, len(existing))
	for _, p := range existing {
		if p.Name == nil {
			continue
		}
		if _, ok := byName[*p.Name]; !ok {
			byName[*p.Name] = p.ID
		}
	}

	ids := make(map[int]int, len(participants))
	for _, p := range participants {
		if p.Name != nil {
			if id, ok := byName[*p.Name]; ok {
				ids[p.ID] = id
				continue
			}
		}
		stored := &models.Participant{TournamentID: tournamentID, Name: p.Name}
		if err := s.participantRepo.Create(ctx, exec, stored); err != nil {
			return nil, err
		}
		ids[p.ID] = stored.ID
	}
	return ids, nil
}

func remapSlot(slot models.Slot, participantIDs map[int]int) models.Slot {
	out := slot
	if slot.ParticipantID != nil {
		id := participantIDs[*slot.ParticipantID]
		out.ParticipantID = &id
	}
	return out
}

func validateImport(input *ImportStageInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.TournamentID <= 0 {
		return fmt.Errorf("%w: tournament_id must be positive", ErrValidationFailed)
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if !input.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrStageTypeUnsupported, input.Type)
	}
	if input.Number <= 0 {
		input.Number = 1
	}

	participants := make(map[int]bool, len(input.Participants))
	names := make(map[string]bool, len(input.Participants))
	for i, p := range input.Participants {
		if participants[p.ID] {
			return fmt.Errorf("%w: duplicate participant id %d", ErrValidationFailed, p.ID)
		}
		participants[p.ID] = true

		if p.Name == nil {
			continue
		}
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("%w: participant %d has an empty name", ErrValidationFailed, p.ID)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate participant name %q", ErrValidationFailed, name)
		}
		names[name] = true
		input.Participants[i].Name = &name
	}

	groups := make(map[int]bool, len(input.Groups))
	for _, g := range input.Groups {
		if groups[g.ID] {
			return fmt.Errorf("%w: duplicate group id %d", ErrValidationFailed, g.ID)
		}
		groups[g.ID] = true
	}

	rounds := make(map[int]bool, len(input.Rounds))
	for _, r := range input.Rounds {
		if rounds[r.ID] {
			return fmt.Errorf("%w: duplicate round id %d", ErrValidationFailed, r.ID)
		}
		if !groups[r.GroupID] {
			return fmt.Errorf("%w: round %d references unknown group %d", ErrValidationFailed, r.ID, r.GroupID)
		}
		rounds[r.ID] = true
	}

	for _, m := range input.Matches {
		if !groups[m.GroupID] {
			return fmt.Errorf("%w: match %d references unknown group %d", ErrValidationFailed, m.ID, m.GroupID)
		}
		if !rounds[m.RoundID] {
			return fmt.Errorf("%w: match %d references unknown round %d", ErrValidationFailed, m.ID, m.RoundID)
		}
		for _, slot := range []models.Slot{m.Opponent1, m.Opponent2} {
			if slot.ParticipantID != nil && !participants[*slot.ParticipantID] {
				return fmt.Errorf("%w: match %d references unknown participant %d", ErrValidationFailed, m.ID, *slot.ParticipantID)
			}
			if err := validateResult(slot.Result); err != nil {
				return fmt.Errorf("match %d: %w", m.ID, err)
			}
		}
	}
	return nil
}

func validateResult(r *models.MatchResult) error {
	if r == nil {
		return nil
	}
	switch *r {
	case models.ResultWin, models.ResultLoss:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidResult, *r)
	}
}
