package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/signup/internal/domain"
)

// Publisher is a roster notifier that owns network resources.
type Publisher interface {
	domain.Notifier
	Close() error
}

// messageWriter describes the kafka.Writer functions the publisher interacts with.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes roster events to a single configured topic.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher creates a KafkaPublisher targeting topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
		timeout: timeout,
	}
}

// ParticipantSignedUp implements domain.Notifier.
func (p *KafkaPublisher) ParticipantSignedUp(ctx context.Context, change domain.RosterChange) error {
	return p.publish(ctx, TypeParticipantSignedUp, change)
}

// ParticipantUnregistered implements domain.Notifier.
func (p *KafkaPublisher) ParticipantUnregistered(ctx context.Context, change domain.RosterChange) error {
	return p.publish(ctx, TypeParticipantUnregistered, change)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, change domain.RosterChange) error {
	payload := RosterChanged{
		EventID:    change.EventID,
		EventType:  eventType,
		Activity:   change.Activity,
		Email:      change.Email,
		RosterSize: change.RosterSize,
		OccurredAt: change.OccurredAt,
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// Keyed by activity name so one activity's changes stay ordered per partition.
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.Activity),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops roster events for broker-less runs.
type NoopPublisher struct{}

// ParticipantSignedUp performs no action.
func (NoopPublisher) ParticipantSignedUp(context.Context, domain.RosterChange) error { return nil }

// ParticipantUnregistered performs no action.
func (NoopPublisher) ParticipantUnregistered(context.Context, domain.RosterChange) error { return nil }

// Close performs no action.
func (NoopPublisher) Close() error { return nil }
