package services

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

func newEvent(eventType, actor string, attributes map[string]string) models.Event {
	return models.Event{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       eventType,
		Actor:      actor,
		Attributes: attributes,
	}
}

// publishEvent publishes an event to Kafka. Failures are logged only: the
// state change the event describes has already been committed.
func publishEvent(ctx context.Context, writer KafkaWriter, evt models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "actor", evt.Actor)
	}
}
