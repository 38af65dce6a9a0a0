// Package notify is the outbound notification boundary. Lifecycle services
// emit events; delivery is somebody else's problem. A failed publish is
// logged and reported as a soft warning, never an error on the workflow
// operation that triggered it.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectInterviewScheduled = "notifications.interview.scheduled"
)

type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	OccurredAt time.Time         `json:"occurred_at"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func NewEvent(eventType string, fields map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Fields:     fields,
	}
}

type Notifier interface {
	Publish(ctx context.Context, subject string, event Event) error
	Close()
}

type natsNotifier struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewNATSNotifier connects to the broker with bounded timeout and endless
// reconnects; a down broker at boot is a hard error, a down broker at
// publish time is not.
func NewNATSNotifier(url string, connTimeout time.Duration, logger *zap.Logger) (Notifier, error) {
	conn, err := nats.Connect(url,
		nats.Timeout(connTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	return &natsNotifier{conn: conn, logger: logger}, nil
}

func (n *natsNotifier) Publish(ctx context.Context, subject string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok && time.Now().After(deadline) {
		return context.DeadlineExceeded
	}
	if err := n.conn.Publish(subject, data); err != nil {
		n.logger.Error("failed to publish event",
			zap.String("id", event.ID),
			zap.String("subject", subject),
			zap.Error(err))
		return err
	}
	n.logger.Debug("published event",
		zap.String("id", event.ID),
		zap.String("subject", subject))
	return nil
}

func (n *natsNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

// noopNotifier stands in when no broker is configured. Events are logged
// so they remain observable in development.
type noopNotifier struct {
	logger *zap.Logger
}

func NewNoopNotifier(logger *zap.Logger) Notifier {
	return &noopNotifier{logger: logger}
}

func (n *noopNotifier) Publish(_ context.Context, subject string, event Event) error {
	n.logger.Info("notification dropped (no broker configured)",
		zap.String("subject", subject),
		zap.String("type", event.Type))
	return nil
}

func (n *noopNotifier) Close() {}
