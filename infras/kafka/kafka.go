package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"libraryhub/config"
	"libraryhub/infras/otel"
	"libraryhub/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	batchTimeout = 50 * time.Millisecond
	writeTimeout = 5 * time.Second
)

// Message is a keyed event. Value is encoded as JSON on the wire; messages sharing a
// key land on the same partition.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value}, nil
}

// DecodeKafkaMessage turns a raw message back into a Message whose Value has type T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (Message, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return Message{}, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return Message{Key: string(msg.Key), Value: value}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type producer struct {
	otel   otel.Otel
	writer *kafkaGo.Writer
}

// New builds a producer for the configured brokers. Without brokers a no-op client
// is returned so the service can run without Kafka.
func New(cfg *config.Config, ot otel.Otel) Client {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("No Kafka brokers configured, events will be dropped")

		return noopClient{}
	}

	transport := &kafkaGo.Transport{}
	if sasl := cfg.Kafka.SASL; sasl.Username != "" {
		transport.SASL = plain.Mechanism{Username: sasl.Username, Password: sasl.Password}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producer{
		otel: ot,
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			BatchTimeout:           batchTimeout,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// SendMessages encodes every message before writing any, so a bad value never
// leaves a partial batch on the topic.
func (p *producer) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"kafka.topic":    topic,
		"kafka.messages": len(messages),
	})

	batch := make([]kafkaGo.Message, len(messages))

	for i := range messages {
		if batch[i], err = messages[i].ToKafkaMessage(); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", messages[i].Key).Msg("failed to encode Kafka message")

			return err
		}

		batch[i].Topic = topic
	}

	if err = p.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to write Kafka messages")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("Kafka messages written")

	return nil
}

type noopClient struct{}

func (noopClient) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Debug().Str("topic", topic).Int("count", len(messages)).Msg("Kafka disabled, dropping messages")

	return nil
}
