package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"seatly/internal/seatmap"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func sampleQuote() seatmap.Quote {
	cats := []seatmap.SeatCategory{
		{Name: "VIP", RowCount: 1, Color: "gold"},
		{Name: "General", RowCount: 2, Color: "blue"},
	}
	tts := []seatmap.TicketType{{Type: "VIP", Price: 100}, {Type: "General", Price: 50}}
	return seatmap.BuildQuote(seatmap.NewSelection("A1", "C4"), cats, tts)
}

func TestNewIntent(t *testing.T) {
	intent := NewIntent("s-1", "e-1", "Opening Night", "Grand Hall", sampleQuote())

	if intent.TotalPrice != 150 || intent.Currency != "USD" {
		t.Errorf("unexpected totals %+v", intent)
	}
	if len(intent.Seats) != 2 {
		t.Fatalf("seats = %d, want 2", len(intent.Seats))
	}
	if s := intent.Seats[1]; s.SeatID != "C4" || s.Row != "C" || s.Number != 4 || s.Category != "VIP" || s.Price != 100 {
		t.Errorf("unexpected seat %+v", s)
	}
	if intent.PartitionKey() != "e-1" {
		t.Errorf("partition key = %q", intent.PartitionKey())
	}
}

func TestKafkaPublisher_PublishCheckout(t *testing.T) {
	cfg := DefaultKafkaConfig()
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(cfg))
	defer producer.Close()

	intent := NewIntent("s-1", "e-1", "Opening Night", "Grand Hall", sampleQuote())

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "seat-checkouts" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "e-1" {
			return errors.New("wrong key " + string(key))
		}
		value, _ := msg.Value.Encode()
		var got Intent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.IntentID != intent.IntentID || got.TotalPrice != 150 {
			return errors.New("payload mismatch")
		}
		return nil
	})

	pub := NewKafkaPublisherWithProducer(producer, cfg)
	if err := pub.PublishCheckout(context.Background(), intent); err != nil {
		t.Fatalf("PublishCheckout: %v", err)
	}
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	cfg := DefaultKafkaConfig()
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(cfg))
	defer producer.Close()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewKafkaPublisherWithProducer(producer, cfg)
	err := pub.PublishCheckout(context.Background(), NewIntent("s", "e", "", "", sampleQuote()))
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Errorf("error = %v, want ErrOutOfBrokers", err)
	}
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	cfg := DefaultKafkaConfig()
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(cfg))
	defer producer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := NewKafkaPublisherWithProducer(producer, cfg)
	if err := pub.PublishCheckout(ctx, NewIntent("s", "e", "", "", sampleQuote())); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNoopPublisher(t *testing.T) {
	pub := NewNoopPublisher()
	if err := pub.PublishCheckout(context.Background(), NewIntent("s", "e", "", "", sampleQuote())); err != nil {
		t.Fatalf("PublishCheckout: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
