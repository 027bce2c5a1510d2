package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"slices"
	"sync"

	"github.com/Dosada05/tournament-brackets/models"
	"github.com/Dosada05/tournament-brackets/repositories"
	"github.com/Dosada05/tournament-brackets/storage"
)

// memStore backs every repository interface with maps for service tests.
type memStore struct {
	mu           sync.Mutex
	nextID       int
	stages       map[int]*models.Stage
	groups       []models.Group
	rounds       []models.Round
	matches      map[int]*models.Match
	participants []models.Participant

	txOpts  []*sql.TxOptions
	failOn  string
	failErr error
}

func newMemStore() *memStore {
	return &memStore{
		stages:  make(map[int]*models.Stage),
		matches: make(map[int]*models.Match),
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) fail(op string) error {
	if s.failOn == op {
		return s.failErr
	}
	return nil
}

// WithinTx has no rollback; tests that exercise failures check the returned error only.
func (s *memStore) WithinTx(_ context.Context, opts *sql.TxOptions, fn func(exec repositories.SQLExecutor) error) error {
	s.mu.Lock()
	s.txOpts = append(s.txOpts, opts)
	s.mu.Unlock()
	return fn(nil)
}

type stageRepo struct{ *memStore }

func (r stageRepo) Create(_ context.Context, _ repositories.SQLExecutor, st *models.Stage) error {
	if err := r.fail("stage.create"); err != nil {
		return err
	}
	st.ID = r.id()
	cp := *st
	r.stages[st.ID] = &cp
	return nil
}

func (r stageRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stages[id]
	if !ok {
		return nil, repositories.ErrStageNotFound
	}
	cp := *st
	return &cp, nil
}

func (r stageRepo) List(_ context.Context, eventName *string) ([]*models.Stage, error) {
	out := make([]*models.Stage, 0)
	for _, st := range r.stages {
		if eventName != nil && (st.EventName == nil || *st.EventName != *eventName) {
			continue
		}
		cp := *st
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.Stage) int { return a.ID - b.ID })
	return out, nil
}

func (r stageRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.stages[id]; !ok {
		return repositories.ErrStageNotFound
	}
	delete(r.stages, id)
	return nil
}

type structureRepo struct{ *memStore }

func (r structureRepo) CreateGroup(_ context.Context, _ repositories.SQLExecutor, g *models.Group) error {
	g.ID = r.id()
	r.groups = append(r.groups, *g)
	return nil
}

func (r structureRepo) CreateRound(_ context.Context, _ repositories.SQLExecutor, rd *models.Round) error {
	rd.ID = r.id()
	r.rounds = append(r.rounds, *rd)
	return nil
}

func (r structureRepo) ListGroupsByStage(_ context.Context, _ repositories.SQLExecutor, stageID int) ([]models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Group, 0)
	for _, g := range r.groups {
		if g.StageID == stageID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r structureRepo) ListRoundsByStage(_ context.Context, _ repositories.SQLExecutor, stageID int) ([]models.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Round, 0)
	for _, rd := range r.rounds {
		if rd.StageID == stageID {
			out = append(out, rd)
		}
	}
	return out, nil
}

type matchRepo struct{ *memStore }

func (r matchRepo) Create(_ context.Context, _ repositories.SQLExecutor, m *models.Match) error {
	m.ID = r.id()
	cp := *m
	r.matches[m.ID] = &cp
	return nil
}

func (r matchRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	cp := *m
	return &cp, nil
}

func (r matchRepo) ListByStage(_ context.Context, _ repositories.SQLExecutor, stageID int) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Match, 0)
	for _, m := range r.matches {
		if m.StageID == stageID {
			out = append(out, *m)
		}
	}
	slices.SortFunc(out, func(a, b models.Match) int { return a.ID - b.ID })
	return out, nil
}

func (r matchRepo) ListAll(ctx context.Context) ([]models.Match, error) {
	out := make([]models.Match, 0)
	for _, m := range r.matches {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b models.Match) int { return a.ID - b.ID })
	return out, nil
}

func (r matchRepo) UpdateResult(_ context.Context, _ repositories.SQLExecutor, id int, o1, o2 models.Slot) error {
	if err := r.fail("match.update"); err != nil {
		return err
	}
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Opponent1.Result, m.Opponent1.Score = o1.Result, o1.Score
	m.Opponent2.Result, m.Opponent2.Score = o2.Result, o2.Score
	return nil
}

type participantRepo struct{ *memStore }

func (r participantRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Participant) error {
	if err := r.fail("participant.create"); err != nil {
		return err
	}
	p.ID = r.id()
	r.participants = append(r.participants, *p)
	return nil
}

func (r participantRepo) FindByID(_ context.Context, id int) (*models.Participant, error) {
	for _, p := range r.participants {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrParticipantNotFound
}

func (r participantRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Participant, 0)
	for _, p := range r.participants {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r participantRepo) ListAll(_ context.Context) ([]models.Participant, error) {
	return slices.Clone(r.participants), nil
}

func (r participantRepo) Delete(_ context.Context, id int) error {
	for i, p := range r.participants {
		if p.ID == id {
			r.participants = slices.Delete(r.participants, i, i+1)
			return nil
		}
	}
	return repositories.ErrParticipantNotFound
}

type recordingBroadcaster struct {
	stageIDs []int
	payloads []interface{}
	err      error
}

func (b *recordingBroadcaster) BroadcastStandings(stageID int, payload interface{}) error {
	b.stageIDs = append(b.stageIDs, stageID)
	b.payloads = append(b.payloads, payload)
	return b.err
}

type recordingPublisher struct {
	stageIDs []int
	err      error
}

func (p *recordingPublisher) PublishStandings(_ context.Context, stageID int, _ interface{}) error {
	p.stageIDs = append(p.stageIDs, stageID)
	return p.err
}

func (p *recordingPublisher) Close() {}

type memUploader struct {
	keys   []string
	bodies [][]byte
}

func (u *memUploader) Upload(_ context.Context, key, _ string, r io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	u.keys = append(u.keys, key)
	u.bodies = append(u.bodies, body)
	return &storage.UploadResult{Key: key, Location: u.PublicURL(key)}, nil
}

func (u *memUploader) PublicURL(key string) string {
	return "https://files.test/" + key
}

var errBoom = errors.New("boom")
