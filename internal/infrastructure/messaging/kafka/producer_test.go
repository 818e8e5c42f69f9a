package kafka

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/pkg/logger"
)

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields ...logger.Field) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithContext(ctx context.Context) logger.Logger {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields ...logger.Field) logger.Logger {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) Sync() error {
	args := m.Called()
	return args.Error(0)
}

type MockReader struct {
	mock.Mock
}

func (m *MockReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafkago.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}

func TestOrderProducer_PublishOrder_EmptyPayload(t *testing.T) {
	producer := &OrderProducer{topic: "test-topic", logger: new(MockLogger)}

	err := producer.PublishOrder(context.Background(), "ORD-1", []byte{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payload is empty")
}

func TestOrderProducer_Close(t *testing.T) {
	mockLog := new(MockLogger)
	producer := &OrderProducer{topic: "test-topic", logger: mockLog}
	mockLog.On("Info", "Closing Kafka producer", mock.Anything).Return()

	err := producer.Close(context.Background())

	assert.NoError(t, err)
	mockLog.AssertExpectations(t)
}

func TestOrderConsumer_HandlesAndCommits(t *testing.T) {
	reader := new(MockReader)
	mockLog := new(MockLogger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	good := kafkago.Message{Key: []byte("ORD-1"), Value: []byte("ok"), Offset: 1}
	bad := kafkago.Message{Key: []byte("ORD-2"), Value: []byte("bad"), Offset: 2}

	reader.On("FetchMessage", ctx).Return(good, nil).Once()
	reader.On("FetchMessage", ctx).Return(bad, nil).Once()
	reader.On("FetchMessage", ctx).Return(kafkago.Message{}, context.Canceled).Once()
	reader.On("CommitMessages", ctx, []kafkago.Message{good}).Return(nil).Once()
	reader.On("CommitMessages", ctx, []kafkago.Message{bad}).Return(nil).Once()
	mockLog.On("Error", "failed to handle order message", mock.Anything).Return().Once()

	var seen []string
	consumer := newOrderConsumer(reader, func(_ context.Context, payload []byte) error {
		seen = append(seen, string(payload))
		if string(payload) == "bad" {
			return errors.New("decode order: invalid json")
		}
		return nil
	}, mockLog)

	require.NoError(t, consumer.Start(ctx))
	assert.Equal(t, []string{"ok", "bad"}, seen)
	reader.AssertExpectations(t)
	mockLog.AssertExpectations(t)
}

func TestOrderConsumer_FetchError(t *testing.T) {
	reader := new(MockReader)
	ctx := context.Background()
	reader.On("FetchMessage", ctx).Return(kafkago.Message{}, errors.New("broker gone"))

	consumer := newOrderConsumer(reader, func(context.Context, []byte) error { return nil }, new(MockLogger))

	err := consumer.Start(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch message")
}
