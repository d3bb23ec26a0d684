package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/nhattranq/profilehub/internal/config"
)

const (
	TopicProfileEvents = "profile.events"
)

// SectionUpdated is emitted after a profile section write commits.
type SectionUpdated struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Section   string    `json:"section"`
	UpdatedAt time.Time `json:"updated_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishSectionUpdated(ctx context.Context, ev SectionUpdated) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("cannot marshal section updated event: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.UserID.String()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producers")
}
