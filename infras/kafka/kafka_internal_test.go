package kafka

import (
	"context"
	"errors"
	"pakt/config"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written []kafkaGo.Message
	err     error
	closed  bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	w.written = append(w.written, msgs...)

	return w.err
}

func (w *recordingWriter) Close() error {
	w.closed = true

	return nil
}

type timezoneUpdated struct {
	DeviceID string `json:"deviceId"`
	Timezone string `json:"timezone"`
}

func TestPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newPublisher(writer)

	err := publisher.Publish(context.Background(), "pakt.preference.timezone-updated", Message{
		Key:   "device-1",
		Value: timezoneUpdated{DeviceID: "device-1", Timezone: "Asia/Jakarta"},
	})
	require.NoError(t, err)

	require.Len(t, writer.written, 1)
	assert.Equal(t, "pakt.preference.timezone-updated", writer.written[0].Topic)
	assert.Equal(t, "device-1", string(writer.written[0].Key))

	decoded, err := Decode[timezoneUpdated](writer.written[0])
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", decoded.Timezone)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}

	err := newPublisher(writer).Publish(context.Background(), "topic", Message{Key: "k", Value: 1})

	assert.Error(t, err)
}

func TestPublisher_UnencodableValue(t *testing.T) {
	writer := &recordingWriter{}

	err := newPublisher(writer).Publish(context.Background(), "topic", Message{Key: "k", Value: make(chan int)})

	assert.Error(t, err)
	assert.Empty(t, writer.written)
}

func TestNew_WithoutBrokers(t *testing.T) {
	publisher := New(&config.Config{})

	assert.IsType(t, noopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), "topic", Message{Key: "k", Value: 1}))
	assert.NoError(t, publisher.Close())
}
