package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultDialTimeout = 2 * time.Second

// AMQPPublisher sends booking notifications to durable RabbitMQ queues
// through the default exchange. A connection is opened per publish.
type AMQPPublisher struct {
	url         string
	dialTimeout time.Duration
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{
		url:         url,
		dialTimeout: defaultDialTimeout,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, queue string, event BookingEvent) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	// Publishing runs after the commit, so an unreachable broker must fail fast.
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return fmt.Errorf("amqp.DialConfig -> %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("conn.Channel -> %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("ch.QueueDeclare -> %w", err)
	}

	if err = ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return fmt.Errorf("ch.PublishWithContext -> %w", err)
	}

	return nil
}

func newPublishing(event BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}
