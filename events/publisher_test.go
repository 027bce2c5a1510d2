package events

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsSubject(t *testing.T) {
	assert.Equal(t, "brackets.standings.42", StandingsSubject("brackets", 42))
}

func TestNewNATSPublisher_EmptyURL(t *testing.T) {
	p, err := NewNATSPublisher("", "brackets", slog.Default())
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishStandings(context.Background(), 1, nil))
	p.Close()
}
