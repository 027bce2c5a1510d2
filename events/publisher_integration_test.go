//go:build integration

package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
)

func TestNATSPublisher_PublishStandings(t *testing.T) {
	ctx := context.Background()

	container, err := tcnats.Run(ctx, "nats:2.10")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	received := make(chan *nats.Msg, 1)
	_, err = sub.ChanSubscribe("test.standings.*", received)
	require.NoError(t, err)
	require.NoError(t, sub.Flush())

	p, err := NewNATSPublisher(url, "test", slog.Default())
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.PublishStandings(ctx, 9, []string{"a", "b"}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.standings.9", msg.Subject)
		var ev StandingsEvent
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
		assert.Equal(t, 9, ev.StageID)
	case <-time.After(5 * time.Second):
		t.Fatal("no standings event received")
	}
}
