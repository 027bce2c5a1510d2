package models

// PlacementRecord is one row of a stage's final standings.
type PlacementRecord struct {
	Placement       int    `json:"placement" yaml:"placement"`
	ParticipantID   int    `json:"participant_id" yaml:"participant_id"`
	ParticipantName string `json:"participant_name" yaml:"participant_name"`
	Wins            int    `json:"wins" yaml:"wins"`
	Losses          int    `json:"losses" yaml:"losses"`
}

// EventRanking aggregates placements of one participant across all stages of a named event.
type EventRanking struct {
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Played      int     `json:"played"`
	Tournaments int     `json:"tournaments"`
	WinRate     float64 `json:"win_rate"`
}
