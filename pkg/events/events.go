// Package events publishes manifest-changed notifications to RabbitMQ.
//
// Downstream consumers (ticketing, pricing, seat-map frontends) react to
// manifest deltas, so only changed manifests are published, and the payload
// carries the delta rather than the full identifier set.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/manifest"
	"github.com/seatforge/seatforge/pkg/observability"
)

// QueueManifestChanged is the queue manifest deltas are published to.
const QueueManifestChanged = "manifest.changed"

// ChangedEvent is the published payload.
type ChangedEvent struct {
	EventID    string    `json:"event_id"`
	UpdateHash string    `json:"update_hash"`
	Added      []string  `json:"added,omitempty"`
	Removed    []string  `json:"removed,omitempty"`
	UpdateTime time.Time `json:"update_time"`
}

// Publisher emits manifest-changed events.
type Publisher interface {
	// PublishChanged publishes the delta. Unchanged diffs are skipped
	// silently.
	PublishChanged(ctx context.Context, d *manifest.Diff) error

	// Close releases the broker connection.
	Close() error
}

// changedEvent maps a manifest diff onto the wire payload.
func changedEvent(d *manifest.Diff) ChangedEvent {
	return ChangedEvent{
		EventID:    d.EventID,
		UpdateHash: d.UpdateHash,
		Added:      d.Added,
		Removed:    d.Removed,
		UpdateTime: d.UpdateTime,
	}
}

// AMQPPublisher publishes over a held RabbitMQ connection. The queue is
// declared durable and messages persistent, so deltas survive a broker
// restart.
type AMQPPublisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *log.Logger
}

// NewAMQPPublisher dials the broker and declares the manifest.changed
// queue.
func NewAMQPPublisher(url string, logger *log.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = log.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePublish, err, "dialing rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(errors.ErrCodePublish, err, "opening channel")
	}

	if _, err := ch.QueueDeclare(
		QueueManifestChanged,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.Wrap(errors.ErrCodePublish, err, "declaring queue %s", QueueManifestChanged)
	}

	return &AMQPPublisher{conn: conn, ch: ch, logger: logger}, nil
}

// PublishChanged publishes the delta as persistent JSON on the default
// exchange. Unchanged diffs are skipped.
func (p *AMQPPublisher) PublishChanged(ctx context.Context, d *manifest.Diff) error {
	if d == nil || !d.Changed {
		return nil
	}

	body, err := json.Marshal(changedEvent(d))
	if err != nil {
		return errors.Wrap(errors.ErrCodePublish, err, "marshaling changed event")
	}

	err = p.ch.PublishWithContext(ctx,
		"",                   // default exchange
		QueueManifestChanged, // routing key = queue name
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		observability.Events().OnPublishError(ctx, QueueManifestChanged, err)
		return errors.Wrap(errors.ErrCodePublish, err, "publishing manifest delta for %s", d.EventID)
	}
	observability.Events().OnPublish(ctx, QueueManifestChanged, len(body))

	p.logger.Info("published manifest delta",
		"event", d.EventID,
		"added", len(d.Added),
		"removed", len(d.Removed))
	return nil
}

// Close closes the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

var _ Publisher = (*AMQPPublisher)(nil)

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// PublishChanged does nothing.
func (NopPublisher) PublishChanged(ctx context.Context, d *manifest.Diff) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }

var _ Publisher = NopPublisher{}
