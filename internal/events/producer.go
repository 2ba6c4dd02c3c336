package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Publisher abstracts event emission so the domain layer can be tested
// without a broker.
type Publisher interface {
	PublishInsightCalculated(ctx context.Context, event InsightCalculated) error
}

// KafkaProducer lazily manages writers per topic.
type KafkaProducer struct {
	brokers []string
	topic   string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaProducer creates a KafkaProducer publishing insight events to the
// given topic.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		brokers: brokers,
		topic:   topic,
		writers: make(map[string]*kafka.Writer),
	}
}

// PublishInsightCalculated emits an insight.calculated event keyed by user,
// with the envelope headers consumers expect.
func (p *KafkaProducer) PublishInsightCalculated(ctx context.Context, event InsightCalculated) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(TypeInsightCalculated)},
			{Key: "tenant_id", Value: []byte(event.TenantID)},
		},
	}
	return p.writerForTopic(p.topic).WriteMessages(ctx, msg)
}

func (p *KafkaProducer) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// NoopPublisher drops events. Used when Kafka is not configured and in tests.
type NoopPublisher struct{}

// PublishInsightCalculated implements Publisher.
func (NoopPublisher) PublishInsightCalculated(context.Context, InsightCalculated) error {
	return nil
}
