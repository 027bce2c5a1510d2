package models

import "time"

type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
)

// Slot - одна сторона матча. ParticipantID == nil означает, что соперник ещё
// не определён; Result == nil означает, что матч не сыгран.
type Slot struct {
	ParticipantID *int         `json:"id"`
	Result        *MatchResult `json:"result,omitempty"`
	Score         *int         `json:"score,omitempty"`
}

// Won reports whether the slot carries a win.
func (s Slot) Won() bool {
	return s.Result != nil && *s.Result == ResultWin
}

type Match struct {
	ID        int       `json:"id" db:"id"`
	StageID   int       `json:"stage_id" db:"stage_id"`
	GroupID   int       `json:"group_id" db:"group_id"`
	RoundID   int       `json:"round_id" db:"round_id"`
	Number    int       `json:"number" db:"number"`
	Opponent1 Slot      `json:"opponent1" db:"-"`
	Opponent2 Slot      `json:"opponent2" db:"-"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Playable reports whether both opponents are known.
func (m Match) Playable() bool {
	return m.Opponent1.ParticipantID != nil && m.Opponent2.ParticipantID != nil
}
