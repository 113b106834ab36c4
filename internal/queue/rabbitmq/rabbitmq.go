// Package rabbitmq backs the queue boundary with a direct exchange and one
// durable queue per topic.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"podhub/internal/queue"
)

const attemptsHeader = "x-attempts"

type Config struct {
	URL            string
	Exchange       string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type RabbitMQ struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	cfg      Config
	logger   *slog.Logger
	mu       sync.Mutex
	declared map[string]bool
}

func New(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	logger.Info("connected to rabbitmq", "exchange", cfg.Exchange)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		cfg:      cfg,
		logger:   logger,
		declared: make(map[string]bool),
	}, nil
}

// declareTopic declares the topic's durable queue and binds it. Publishing
// declares too, so jobs published before any consumer exists are not lost.
func (q *RabbitMQ) declareTopic(ch *amqp.Channel, topic string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.declared[topic] {
		return nil
	}

	if _, err := ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	if err := ch.QueueBind(topic, topic, q.cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", topic, err)
	}

	q.declared[topic] = true
	return nil
}

func (q *RabbitMQ) Publish(ctx context.Context, topic string, payload any) error {
	if err := q.declareTopic(q.channel, topic); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	return q.publish(ctx, topic, body, 0)
}

func (q *RabbitMQ) publish(ctx context.Context, topic string, body []byte, attempts int) error {
	err := q.channel.PublishWithContext(ctx, q.cfg.Exchange, topic, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
			Headers:      amqp.Table{attemptsHeader: int32(attempts)},
		})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe consumes the topic on its own channel until ctx is cancelled.
// Failed jobs are republished with an incremented attempt counter after a
// backoff; once the attempt budget is spent the job is logged as permanently
// failed and dropped.
func (q *RabbitMQ) Subscribe(ctx context.Context, topic string, handler queue.Handler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}

	if err := q.declareTopic(ch, topic); err != nil {
		ch.Close()
		return err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, topic, "", false, false, false, false, nil)
	if err != nil {
		ch.Close()
		return fmt.Errorf("consume %s: %w", topic, err)
	}

	go q.consume(ctx, topic, deliveries, handler)

	q.logger.Info("subscribed", "topic", topic)
	return nil
}

func (q *RabbitMQ) consume(ctx context.Context, topic string, deliveries <-chan amqp.Delivery, handler queue.Handler) {
	for d := range deliveries {
		attempts := attemptsFrom(d.Headers)

		err := handler(ctx, d.Body)
		if err == nil {
			_ = d.Ack(false)
			continue
		}

		if attempts+1 >= q.cfg.MaxAttempts {
			q.logger.Error("job permanently failed",
				"topic", topic,
				"attempts", attempts+1,
				"error", err,
			)
			_ = d.Ack(false)
			continue
		}

		q.logger.Warn("job failed, retrying",
			"topic", topic,
			"attempt", attempts+1,
			"error", err,
		)

		select {
		case <-time.After(q.backoff(attempts)):
		case <-ctx.Done():
			_ = d.Nack(false, true)
			return
		}

		if err := q.publish(ctx, topic, d.Body, attempts+1); err != nil {
			q.logger.Error("requeue failed, returning delivery", "topic", topic, "error", err)
			_ = d.Nack(false, true)
			continue
		}
		_ = d.Ack(false)
	}
}

func (q *RabbitMQ) backoff(attempts int) time.Duration {
	delay := q.cfg.InitialBackoff << uint(attempts)
	if delay > q.cfg.MaxBackoff || delay <= 0 {
		delay = q.cfg.MaxBackoff
	}
	return delay
}

func attemptsFrom(headers amqp.Table) int {
	switch v := headers[attemptsHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (q *RabbitMQ) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}
