package models

// StageSnapshot - всё, что нужно для отображения сетки и подсчёта мест одной стадии.
// Ключи совпадают с форматом хранилища внешнего движка сеток.
type StageSnapshot struct {
	Stage        Stage         `json:"stage"`
	Groups       []Group       `json:"group"`
	Rounds       []Round       `json:"round"`
	Matches      []Match       `json:"match"`
	Participants []Participant `json:"participant"`
}
