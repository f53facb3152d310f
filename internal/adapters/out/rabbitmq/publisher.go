// Package rabbitmq forwards committed order changes to a durable RabbitMQ queue.
//
// The publisher survives broker restarts: a closed channel is detected through
// NotifyClose or a failed publish, and the connection is dialed again before
// the message is sent.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"jinbbq/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue receives order changes when no queue is configured.
const DefaultQueue = "order-changed"

type Config struct {
	URL   string
	Queue string
}

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	Close() error
}

// dialFunc opens a channel together with the connection that owns it.
// The connection may be nil when the channel owns no separate resource.
type dialFunc func() (channel, io.Closer, error)

// OrderChangedMessage is the JSON body of every published message.
type OrderChangedMessage struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	Deleted    bool      `json:"deleted"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.OrderEventPublisher.
type Publisher struct {
	dial    dialFunc
	queue   string
	mu      sync.Mutex
	conn    io.Closer
	channel channel
	closed  chan *amqp.Error
}

func NewPublisher(cfg Config) (*Publisher, error) {
	return newPublisher(dialer(cfg.URL), cfg.Queue)
}

func dialer(url string) dialFunc {
	return func() (channel, io.Closer, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("failed to open channel: %w", err)
		}
		return ch, conn, nil
	}
}

func newPublisher(dial dialFunc, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	p := &Publisher{dial: dial, queue: queue}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, change ports.OrderChange) error {
	body, err := json.Marshal(OrderChangedMessage{
		OrderID:    change.OrderID.String(),
		CustomerID: change.CustomerID,
		Status:     change.Status.String(),
		Deleted:    change.Deleted,
		OccurredAt: change.OccurredAt,
	})
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    change.OccurredAt,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ensureChannel(); err != nil {
		return fmt.Errorf("failed to reconnect: %w", err)
	}

	err = p.publish(ctx, msg)
	if errors.Is(err, amqp.ErrClosed) {
		// The broker went away between the close notification and the publish.
		p.release()
		if err = p.ensureChannel(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
		err = p.publish(ctx, msg)
	}
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, msg amqp.Publishing) error {
	return p.channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		msg,
	)
}

// ensureChannel reuses the open channel, or dials again when the broker has
// closed it. Callers hold p.mu.
func (p *Publisher) ensureChannel() error {
	if p.channel != nil {
		select {
		case <-p.closed:
			p.release()
		default:
			return nil
		}
	}
	return p.connect()
}

func (p *Publisher) connect() error {
	ch, conn, err := p.dial()
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		_ = ch.Close()
		if conn != nil {
			_ = conn.Close()
		}
		return fmt.Errorf("failed to declare queue %s: %w", p.queue, err)
	}

	p.channel = ch
	p.conn = conn
	p.closed = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

func (p *Publisher) release() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.channel = nil
	p.conn = nil
	p.closed = nil
}
