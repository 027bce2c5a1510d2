package brackets

import "github.com/Dosada05/tournament-brackets/models"

// Entry - накопленные показатели одного участника за один подсчёт.
type Entry struct {
	ParticipantID int
	Name          string
	Wins          int
	Losses        int

	// Самый поздний сыгранный матч участника.
	LastMatchID    int
	LastMatchGroup int
	LastMatchRound int
	WonLastMatch   bool
	hasLastMatch   bool
}

// Played reports whether at least one decided match was recorded for the entry.
func (e Entry) Played() bool {
	return e.hasLastMatch
}

// Scoreboard holds one Entry per non-BYE participant, keyed by participant id,
// and remembers roster order for stable ranking.
type Scoreboard struct {
	entries []*Entry
	index   map[int]*Entry
}

// NewScoreboard creates a fresh board. BYE placeholders and repeated ids are skipped.
func NewScoreboard(participants []models.Participant) *Scoreboard {
	b := &Scoreboard{
		entries: make([]*Entry, 0, len(participants)),
		index:   make(map[int]*Entry, len(participants)),
	}
	for _, p := range participants {
		if p.IsBye() {
			continue
		}
		if _, dup := b.index[p.ID]; dup {
			continue
		}
		e := &Entry{ParticipantID: p.ID, Name: *p.Name}
		b.entries = append(b.entries, e)
		b.index[p.ID] = e
	}
	return b
}

func (b *Scoreboard) Has(participantID int) bool {
	_, ok := b.index[participantID]
	return ok
}

func (b *Scoreboard) Len() int {
	return len(b.entries)
}

// RecordOutcome credits a win or a loss and moves the participant's progression
// marker to this match when it is strictly later than the recorded one, or when
// nothing is recorded yet. Unknown participants are ignored and reported as false.
func (b *Scoreboard) RecordOutcome(participantID int, won bool, matchID int, group models.Group, round models.Round) bool {
	e, ok := b.index[participantID]
	if !ok {
		return false
	}
	if won {
		e.Wins++
	} else {
		e.Losses++
	}
	if !e.hasLastMatch || isLater(group.Number, round.Number, e.LastMatchGroup, e.LastMatchRound) {
		e.LastMatchID = matchID
		e.LastMatchGroup = group.Number
		e.LastMatchRound = round.Number
		e.WonLastMatch = won
		e.hasLastMatch = true
	}
	return true
}

// Entries returns copies of all entries in roster order.
func (b *Scoreboard) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = *e
	}
	return out
}

// isLater: a higher group is a later bracket phase, a higher round is deeper
// inside the same phase.
func isLater(group, round, thanGroup, thanRound int) bool {
	return group > thanGroup || (group == thanGroup && round > thanRound)
}
