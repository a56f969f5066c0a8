package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"pakt/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

// ToKafkaMessage encodes Value as JSON and addresses the message to topic.
func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Decode unmarshals the JSON value of msg into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type publisherImpl struct {
	writer messageWriter
}

// New returns a publisher for KAFKA_BROKERS, or one that drops messages when no broker is configured.
func New(config *config.Config) Publisher {
	if len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka brokers not configured, events will not be published")

		return noopPublisher{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Transport:              transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafkaGo.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("count", len(messages)).Msg("Failed to deliver messages to Kafka.")
			}
		},
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka publisher initialized")

	return newPublisher(writer)
}

func newPublisher(writer messageWriter) Publisher {
	return &publisherImpl{writer: writer}
}

func (p *publisherImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			return err
		}

		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Queued messages for Kafka.")

	return nil
}

func (p *publisherImpl) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ string, _ ...Message) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
