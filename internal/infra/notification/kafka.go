package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tablebook/internal/usecase/readmodel"

	"github.com/segmentio/kafka-go"
)

type event struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	ResourceID string `json:"resourceId"`
	Data       any    `json:"data"`
	Timestamp  string `json:"timestamp"`
}

// KafkaPublisher emits reservation lifecycle events for downstream
// consumers (confirmations, dashboards). Publishing is fire-and-forget:
// a broker failure is logged and the booking still succeeds.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) ReservationCreated(ctx context.Context, reservation *readmodel.ReservationRM) {
	payload, err := json.Marshal(event{
		Entity:     "reservation",
		Action:     "created",
		ResourceID: reservation.ID,
		Data:       reservation,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		slog.Warn("failed to encode reservation event", "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(reservation.ID),
		Value: payload,
	})
	if err != nil {
		slog.Warn("failed to publish reservation event",
			"reservationId", reservation.ID,
			"error", err,
		)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
