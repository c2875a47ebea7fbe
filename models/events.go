package models

import (
	"encoding/json"
	"time"
)

// Catalog change event types
const (
	EventProductCreated  = "product_created"
	EventProductUpdated  = "product_updated"
	EventProductDeleted  = "product_deleted"
	EventCatalogReloaded = "catalog_reloaded"
)

// CatalogEvent is published by the admin side whenever catalog data changes.
// Category is empty when the change is not scoped to one category.
type CatalogEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	ProductID string    `json:"product_id,omitempty"`
	Category  string    `json:"category,omitempty"`
}

// ToJSON encodes the event for publishing
func (e *CatalogEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
