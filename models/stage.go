package models

import "time"

// StageType соответствует типу сетки, который выдаёт внешний движок.
type StageType string

const (
	StageSingleElimination StageType = "single_elimination"
	StageDoubleElimination StageType = "double_elimination"
	StageRoundRobin        StageType = "round_robin"
)

// Valid reports whether t is one of the stage types the service can store.
func (t StageType) Valid() bool {
	switch t {
	case StageSingleElimination, StageDoubleElimination, StageRoundRobin:
		return true
	}
	return false
}

// Stage представляет одну сетку турнира.
type Stage struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	Type         StageType `json:"type" db:"type"`
	EventName    *string   `json:"event_name,omitempty" db:"event_name"`
	Number       int       `json:"number" db:"number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Group is a sub-bracket of a stage. In double elimination ascending numbers
// go winner bracket, loser bracket, grand final.
type Group struct {
	ID      int `json:"id" db:"id"`
	StageID int `json:"stage_id" db:"stage_id"`
	Number  int `json:"number" db:"number"`
}

type Round struct {
	ID      int `json:"id" db:"id"`
	StageID int `json:"stage_id" db:"stage_id"`
	GroupID int `json:"group_id" db:"group_id"`
	Number  int `json:"number" db:"number"`
}
