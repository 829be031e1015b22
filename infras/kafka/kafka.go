package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"mahalo/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value := m.Value

	jsonValue, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	message := kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}

	return message, nil
}

func DecodeKafkaMessage[T any](msg kafkaGo.Message) (Message, error) {
	var zero T

	err := json.Unmarshal(msg.Value, &zero)
	if err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return Message{}, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return Message{
		Key:   string(msg.Key),
		Value: zero,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type clientImpl struct {
	config *config.Config
}

func New(cfg *config.Config) Client {
	return &clientImpl{
		config: cfg,
	}
}

func (c *clientImpl) transport() *kafkaGo.Transport {
	transport := &kafkaGo.Transport{}

	if c.config.External.Kafka.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: c.config.External.Kafka.Username,
			Password: c.config.External.Kafka.Password,
		}
	}

	return transport
}

// SendMessages publishes the given messages to the topic. Disabled brokers
// make this a no-op so callers can fire notifications unconditionally.
func (c *clientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	if !c.config.External.Kafka.Enable || len(messages) == 0 {
		return nil
	}

	kafkaMessages := make([]kafkaGo.Message, len(messages))

	for i, message := range messages {
		kafkaMessages[i], err = message.ToKafkaMessage()
		if err != nil {
			return err
		}
	}

	writer := &kafkaGo.Writer{
		Addr:      kafkaGo.TCP(c.config.External.Kafka.Brokers...),
		Topic:     topic,
		Balancer:  &kafkaGo.LeastBytes{},
		Transport: c.transport(),
	}

	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close Kafka writer")
		}
	}()

	if err = writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to write Kafka messages")

		return fmt.Errorf("failed to write kafka messages: %w", err)
	}

	return nil
}
