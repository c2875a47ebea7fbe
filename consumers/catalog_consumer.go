package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	catalog_cache "github.com/digitalbuddiesspune/stylishtouches-sub000/cache"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/middleware"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "storefront-catalog"

// DeliverySource opens a delivery stream and returns a func that releases it.
type DeliverySource func() (<-chan amqp.Delivery, func(), error)

// RabbitDeliveries dials RabbitMQ and binds a fresh instance queue on every
// call, so a dropped connection is replaced by a new one.
func RabbitDeliveries(cfg *config.AppConfig) DeliverySource {
	return func() (<-chan amqp.Delivery, func(), error) {
		rmq, err := rabbitmq.NewRabbitMQ(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect: %w", err)
		}
		if err := rmq.Setup(); err != nil {
			rmq.Close()
			return nil, nil, fmt.Errorf("setup queues: %w", err)
		}
		msgs, err := rmq.Consume(consumerTag)
		if err != nil {
			rmq.Close()
			return nil, nil, fmt.Errorf("register consumer: %w", err)
		}
		return msgs, rmq.Close, nil
	}
}

// RunCatalogConsumer invalidates cached snapshots as catalog events arrive
// and reopens the stream after retry whenever it closes, until ctx is done.
// Every snapshot is dropped when a stream opens or closes, since events
// published while disconnected are never delivered to the new queue.
func RunCatalogConsumer(ctx context.Context, open DeliverySource, retry time.Duration) {
	for {
		msgs, release, err := open()
		if err != nil {
			log.Printf("⚠️ catalog consumer unavailable: %v (retrying in %s)", err, retry)
		} else {
			catalog_cache.InvalidateAll()
			log.Println("✅ Catalog event consumer started")
			consume(ctx, msgs)
			release()
			catalog_cache.InvalidateAll()
			if ctx.Err() != nil {
				return
			}
			log.Printf("⚠️ catalog event channel closed, reconnecting in %s", retry)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
	}
}

func consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			processCatalogMessage(msg.Body)
			_ = msg.Ack(false)
		}
	}
}

// processCatalogMessage applies one event. Undecodable or unknown events
// drop every snapshot, since the change they describe cannot be scoped.
func processCatalogMessage(body []byte) {
	var event models.CatalogEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("Failed to unmarshal catalog event: %v", err)
		middleware.RecordCatalogEvent("invalid")
		catalog_cache.InvalidateAll()
		return
	}
	middleware.RecordCatalogEvent(event.EventType)

	switch event.EventType {
	case models.EventProductCreated, models.EventProductDeleted:
		log.Printf("Catalog change %s: product=%s category=%q", event.EventType, event.ProductID, event.Category)
		catalog_cache.Invalidate(event.Category)
	case models.EventProductUpdated:
		// an update may move the product out of its old category
		log.Printf("Catalog change %s: product=%s", event.EventType, event.ProductID)
		catalog_cache.InvalidateAll()
	case models.EventCatalogReloaded:
		log.Printf("Catalog reloaded, dropping all snapshots")
		catalog_cache.InvalidateAll()
	default:
		log.Printf("Unknown catalog event type: %s", event.EventType)
		catalog_cache.InvalidateAll()
	}
}
