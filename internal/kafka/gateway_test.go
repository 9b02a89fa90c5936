package kafka

import (
	"context"
	"net/url"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseConfig(t *testing.T) {
	t.Run("topic and brokers", func(t *testing.T) {
		u, err := url.Parse("kafka://localhost:9092/sales-reports?acks=1&linger.ms=5")
		require.NoError(t, err)

		config, topic, err := ParseConfig(u)
		require.NoError(t, err)
		assert.Equal(t, "sales-reports", topic)
		assert.Equal(t, "localhost:9092", config["bootstrap.servers"])
		assert.Equal(t, "1", config["acks"])
		assert.Equal(t, "5", config["linger.ms"])
	})

	t.Run("missing topic", func(t *testing.T) {
		u, err := url.Parse("kafka://localhost:9092")
		require.NoError(t, err)

		_, _, err = ParseConfig(u)
		assert.Error(t, err)
	})

	t.Run("missing broker", func(t *testing.T) {
		u, err := url.Parse("kafka:///sales-reports")
		require.NoError(t, err)

		_, _, err = ParseConfig(u)
		assert.Error(t, err)
	})
}

func TestGateway_UploadDocument_NotConnected(t *testing.T) {
	u, err := url.Parse("kafka://localhost:9092/sales-reports")
	require.NoError(t, err)

	g, err := NewGateway(u, zap.NewNop())
	require.NoError(t, err)

	assert.Error(t, g.UploadDocument(context.Background(), "<SalesActivityReport/>"))
}

func TestGateway_LogEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g := &Gateway{logger: zap.New(core)}

	topic := "sales-reports"
	events := make(chan kafka.Event, 3)
	events <- kafka.NewError(kafka.ErrAllBrokersDown, "all brokers down", false)
	events <- &kafka.Message{TopicPartition: kafka.TopicPartition{
		Topic: &topic,
		Error: kafka.NewError(kafka.ErrMsgTimedOut, "timed out", false),
	}}
	events <- &kafka.Message{TopicPartition: kafka.TopicPartition{Topic: &topic}}
	close(events)

	g.logEvents(events)

	assert.Equal(t, 1, logs.FilterMessage("Producer error").Len())
	assert.Equal(t, 1, logs.FilterMessage("Delivery failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("Producer event loop closed").Len())
}
