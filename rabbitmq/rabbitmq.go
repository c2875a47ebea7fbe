package rabbitmq

import (
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Cfg     *config.AppConfig
	// Queue is this instance's queue name, set by Setup.
	Queue string
}

func NewRabbitMQ(cfg *config.AppConfig) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQ{
		Conn:    conn,
		Channel: ch,
		Cfg:     cfg,
	}, nil
}

// Setup declares the catalog fanout exchange and binds a queue owned by
// this instance, so every storefront instance receives every change event.
// The queue is removed when the connection closes.
func (r *RabbitMQ) Setup() error {
	if err := r.DeclareExchange(); err != nil {
		return err
	}

	q, err := r.Channel.QueueDeclare(
		r.Cfg.CatalogQueue+"."+uuid.NewString()[:8],
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}
	r.Queue = q.Name

	return r.Channel.QueueBind(
		q.Name,
		"", // routing key
		r.Cfg.CatalogExchange,
		false,
		nil,
	)
}

// DeclareExchange declares only the exchange; publishers need nothing more.
func (r *RabbitMQ) DeclareExchange() error {
	return r.Channel.ExchangeDeclare(
		r.Cfg.CatalogExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
}

// Consume registers a manual-ack consumer on the instance queue.
func (r *RabbitMQ) Consume(tag string) (<-chan amqp.Delivery, error) {
	return r.Channel.Consume(
		r.Queue,
		tag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
}

func (r *RabbitMQ) PublishEvent(body []byte) error {
	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
	}

	return r.Channel.Publish(
		r.Cfg.CatalogExchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		msg,
	)
}

func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}
