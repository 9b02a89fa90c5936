package kafka

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway publishes rendered documents to a kafka topic.
type Gateway struct {
	config   kafka.ConfigMap
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

// ParseConfig builds the producer config and topic from a URL of the form
// kafka://broker:9092/topic?acks=all. Query params are passed to the producer.
func ParseConfig(uri *url.URL) (kafka.ConfigMap, string, error) {
	topic := strings.TrimPrefix(uri.Path, "/")
	if topic == "" {
		return nil, "", fmt.Errorf("topic must be specified in URL path")
	}

	if uri.Host == "" {
		return nil, "", fmt.Errorf("broker must be specified in URL host")
	}

	config := kafka.ConfigMap{
		"bootstrap.servers":   uri.Host,
		"client.id":           "salesreport",
		"acks":                "all",
		"compression.type":    "snappy",
		"delivery.timeout.ms": "30000",
	}

	for key, values := range uri.Query() {
		if len(values) > 0 {
			config[key] = values[0]
		}
	}

	return config, topic, nil
}

func NewGateway(uri *url.URL, logger *zap.Logger) (*Gateway, error) {
	config, topic, err := ParseConfig(uri)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		config: config,
		topic:  topic,
		logger: logger,
	}, nil
}

func (g *Gateway) Connect(ctx context.Context) error {
	producer, err := kafka.NewProducer(&g.config)
	if err != nil {
		return err
	}
	g.producer = producer

	go g.logEvents(producer.Events())

	g.logger.Info("Kafka gateway connected",
		zap.String("topic", g.topic),
		zap.Any("brokers", g.config["bootstrap.servers"]))

	return nil
}

// logEvents logs producer level events until the producer is closed.
// Delivery reports of uploads arrive on their own channel, so only
// messages produced without one show up here.
func (g *Gateway) logEvents(events <-chan kafka.Event) {
	defer g.logger.Info("Producer event loop closed")

	for e := range events {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				g.logger.Error("Delivery failed", zap.Error(ev.TopicPartition.Error))
			}
		case kafka.Error:
			g.logger.Error("Producer error",
				zap.Error(ev),
				zap.Bool("fatal", ev.IsFatal()),
			)
		}
	}
}

// UploadDocument produces the document and waits for its delivery report.
func (g *Gateway) UploadDocument(ctx context.Context, document string) error {
	if g.producer == nil {
		return fmt.Errorf("kafka gateway is not connected")
	}

	deliveryChan := make(chan kafka.Event, 1)
	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &g.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(uuid.NewString()),
		Value: []byte(document),
	}

	if err := g.producer.Produce(message, deliveryChan); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			g.logger.Error("Delivery failed", zap.Error(m.TopicPartition.Error))
			return m.TopicPartition.Error
		}
		g.logger.Debug("Document delivered",
			zap.String("topic", *m.TopicPartition.Topic),
			zap.Int32("partition", m.TopicPartition.Partition),
			zap.Int64("offset", int64(m.TopicPartition.Offset)))
	}

	return nil
}

func (g *Gateway) Close(ctx context.Context) error {
	if g.producer != nil {
		// Flush any remaining messages
		g.producer.Flush(5000)
		g.producer.Close()
	}
	return nil
}
