//go:build integration

package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"podhub/internal/queue"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) newQueue(exchange string) *RabbitMQ {
	q, err := New(Config{
		URL:            s.amqpURL,
		Exchange:       exchange,
		MaxAttempts:    3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
	}, s.logger)
	s.Require().NoError(err)
	return q
}

func (s *RabbitMQIntegrationSuite) TestConnection() {
	q := s.newQueue("test-exchange-conn")
	s.NoError(q.Close())
}

func (s *RabbitMQIntegrationSuite) TestPublish_MessageFormat() {
	q := s.newQueue("test-exchange-format")
	defer q.Close()

	payload := queue.SyncContentPayload{ID: "source-1"}
	s.NoError(q.Publish(s.ctx, "test-topic-format", payload))

	msg := s.consumeRaw("test-topic-format")
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
	s.Equal(int32(0), msg.Headers["x-attempts"])

	var received queue.SyncContentPayload
	s.NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("source-1", received.ID)
}

func (s *RabbitMQIntegrationSuite) TestSubscribe_DeliversPublishedJobs() {
	q := s.newQueue("test-exchange-deliver")
	defer q.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	received := make(chan []byte, 1)
	err := q.Subscribe(ctx, "test-topic-deliver", func(_ context.Context, body []byte) error {
		received <- body
		return nil
	})
	s.Require().NoError(err)

	s.NoError(q.Publish(s.ctx, "test-topic-deliver", queue.SyncContentPayload{ID: "source-2"}))

	select {
	case body := <-received:
		var payload queue.SyncContentPayload
		s.NoError(json.Unmarshal(body, &payload))
		s.Equal("source-2", payload.ID)
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for delivery")
	}
}

func (s *RabbitMQIntegrationSuite) TestSubscribe_RetriesUntilSuccess() {
	q := s.newQueue("test-exchange-retry")
	defer q.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})
	err := q.Subscribe(ctx, "test-topic-retry", func(context.Context, []byte) error {
		if calls.Add(1) < 2 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	})
	s.Require().NoError(err)

	s.NoError(q.Publish(s.ctx, "test-topic-retry", queue.SyncContentPayload{ID: "source-3"}))

	select {
	case <-done:
		s.Equal(int32(2), calls.Load())
	case <-time.After(10 * time.Second):
		s.Fail("timeout waiting for retry")
	}
}

func (s *RabbitMQIntegrationSuite) TestSubscribe_DropsAfterMaxAttempts() {
	q := s.newQueue("test-exchange-drop")
	defer q.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	var calls atomic.Int32
	err := q.Subscribe(ctx, "test-topic-drop", func(context.Context, []byte) error {
		calls.Add(1)
		return errors.New("permanent failure")
	})
	s.Require().NoError(err)

	s.NoError(q.Publish(s.ctx, "test-topic-drop", queue.SyncContentPayload{ID: "source-4"}))

	// MaxAttempts is 3: the job is handled three times, then dropped.
	s.Eventually(func() bool {
		return calls.Load() == 3
	}, 10*time.Second, 100*time.Millisecond)

	time.Sleep(500 * time.Millisecond)
	s.Equal(int32(3), calls.Load())
}

func (s *RabbitMQIntegrationSuite) TestPublishBeforeSubscribeIsNotLost() {
	q := s.newQueue("test-exchange-early")
	defer q.Close()

	s.NoError(q.Publish(s.ctx, "test-topic-early", queue.SyncContentPayload{ID: "source-5"}))

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	received := make(chan struct{})
	err := q.Subscribe(ctx, "test-topic-early", func(context.Context, []byte) error {
		close(received)
		return nil
	})
	s.Require().NoError(err)

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for pre-published job")
	}
}

func (s *RabbitMQIntegrationSuite) consumeRaw(topic string) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(topic, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for message")
		return nil
	}
}
