package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// StandingsEvent is the body published after a stage's standings change.
type StandingsEvent struct {
	StageID    int         `json:"stage_id"`
	Standings  interface{} `json:"standings"`
	ComputedAt time.Time   `json:"computed_at"`
}

type Publisher interface {
	PublishStandings(ctx context.Context, stageID int, standings interface{}) error
	Close()
}

// StandingsSubject returns "<prefix>.standings.<stageID>".
func StandingsSubject(prefix string, stageID int) string {
	return fmt.Sprintf("%s.standings.%d", prefix, stageID)
}

type natsPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewNATSPublisher connects to url. An empty url yields a publisher that drops events.
func NewNATSPublisher(url, prefix string, logger *slog.Logger) (Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}

	conn, err := nats.Connect(url,
		nats.Name("tournament-brackets"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &natsPublisher{conn: conn, prefix: prefix, logger: logger}, nil
}

func (p *natsPublisher) PublishStandings(ctx context.Context, stageID int, standings interface{}) error {
	body, err := json.Marshal(StandingsEvent{
		StageID:    stageID,
		Standings:  standings,
		ComputedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode standings event: %w", err)
	}

	subject := StandingsSubject(p.prefix, stageID)
	if err := p.conn.Publish(subject, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush %s: %w", subject, err)
	}
	return nil
}

func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", slog.Any("error", err))
	}
}

type NoopPublisher struct{}

func (NoopPublisher) PublishStandings(context.Context, int, interface{}) error { return nil }

func (NoopPublisher) Close() {}
