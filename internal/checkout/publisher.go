package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"seatly/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher hands checkout intents to the booking flow
type Publisher interface {
	PublishCheckout(ctx context.Context, intent *Intent) error
	Close() error
}

// KafkaConfig contains configuration for the Kafka checkout publisher
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

// DefaultKafkaConfig returns a default publisher configuration
func DefaultKafkaConfig() *KafkaConfig {
	return &KafkaConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "seat-checkouts",
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

// NewSaramaConfig builds the producer configuration used for checkout intents
func NewSaramaConfig(cfg *KafkaConfig) *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = cfg.RequiredAcks
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = cfg.Timeout
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash on event id so one event's intents stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	return saramaConfig
}

// KafkaPublisher publishes checkout intents to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaConfig
	log      *logger.Logger
}

// NewKafkaPublisher connects a sync producer to the configured brokers
func NewKafkaPublisher(cfg *KafkaConfig) (*KafkaPublisher, error) {
	if cfg == nil {
		cfg = DefaultKafkaConfig()
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, cfg), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, cfg *KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		config:   cfg,
		log:      logger.GetDefault(),
	}
}

func (p *KafkaPublisher) PublishCheckout(ctx context.Context, intent *Intent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := intent.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal checkout intent: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(intent.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   headers(intent),
		Timestamp: intent.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send checkout intent to Kafka: %w", err)
	}

	p.log.DebugWithContext(ctx, "Checkout intent delivered", map[string]interface{}{
		"topic":     p.config.Topic,
		"partition": partition,
		"offset":    offset,
		"intent_id": intent.IntentID.String(),
	})
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

func headers(intent *Intent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte("seat_checkout")},
		{Key: []byte("intent_id"), Value: []byte(intent.IntentID.String())},
		{Key: []byte("session_id"), Value: []byte(intent.SessionID)},
		{Key: []byte("event_id"), Value: []byte(intent.EventID)},
		{Key: []byte("seat_count"), Value: []byte(strconv.Itoa(len(intent.Seats)))},
		{Key: []byte("producer"), Value: []byte("seatly-seatmap")},
		{Key: []byte("created_at"), Value: []byte(intent.CreatedAt.Format(time.RFC3339))},
	}
}

// NoopPublisher only logs intents. Used when no broker is configured.
type NoopPublisher struct {
	log *logger.Logger
}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{log: logger.GetDefault()}
}

func (p *NoopPublisher) PublishCheckout(ctx context.Context, intent *Intent) error {
	p.log.InfoContext(ctx, "Checkout intent not published, no broker configured",
		"intent_id", intent.IntentID.String(),
		"session_id", intent.SessionID,
		"total_price", intent.TotalPrice,
	)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
