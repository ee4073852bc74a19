package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Producer interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New returns a Kafka-backed producer, or a no-op one when no brokers are
// configured so callers never have to branch.
func New(brokers []string, topic, source string) Producer {
	if len(brokers) == 0 {
		return NopProducer{}
	}
	return NewKafkaProducer(brokers, topic, source)
}

// KafkaProducer wraps a kafka-go writer. Messages are keyed by entity id so
// all mutations of one room or booking land on the same partition in order.
type KafkaProducer struct {
	writer *kafka.Writer
	source string
	mu     sync.RWMutex
	closed bool
}

func NewKafkaProducer(brokers []string, topic, source string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}
	return &KafkaProducer{writer: writer, source: source}
}

func (p *KafkaProducer) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("producer is closed")
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
		Time: event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopProducer drops every event. Used when eventing is not configured.
type NopProducer struct{}

func (NopProducer) Publish(context.Context, Event) error { return nil }
func (NopProducer) Close() error                         { return nil }
