package facades

//go:generate mockgen -source=snapshot_kafka.go -destination=snapshot_kafka_mock.go -package=facades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SnapshotKafkaPublisher publishes todo snapshots as JSON events keyed by username.
type SnapshotKafkaPublisher struct {
	writer KafkaWriter
}

// NewSnapshotKafkaPublisher creates a publisher over writer.
func NewSnapshotKafkaPublisher(writer KafkaWriter) *SnapshotKafkaPublisher {
	return &SnapshotKafkaPublisher{writer: writer}
}

// WriteSnapshot publishes the snapshot.
func (p *SnapshotKafkaPublisher) WriteSnapshot(ctx context.Context, snapshot models.TodoSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(snapshot.Username),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(snapshot.EventID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}

	logger.FromContext(ctx).Infow("todo snapshot published", "event_id", snapshot.EventID, "username", snapshot.Username)
	return nil
}

// Close closes the underlying writer.
func (p *SnapshotKafkaPublisher) Close() error {
	return p.writer.Close()
}
