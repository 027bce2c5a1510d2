package models

import "time"

// Participant без имени - это BYE, заполнитель сетки до степени двойки.
type Participant struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Name         *string   `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsBye reports whether the participant is a bracket placeholder.
func (p Participant) IsBye() bool {
	return p.Name == nil
}
