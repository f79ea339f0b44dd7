package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserVerified      EventType = "user_verified"
	EventUserDeleted       EventType = "user_deleted"
	EventProductListed     EventType = "product_listed"
	EventProductDeleted    EventType = "product_deleted"
	EventProductAdvertised EventType = "product_advertised"
	EventOrderPlaced       EventType = "order_placed"
)

// AllEventTypes lists every event a subscriber may register for.
var AllEventTypes = []EventType{
	EventUserRegistered,
	EventUserVerified,
	EventUserDeleted,
	EventProductListed,
	EventProductDeleted,
	EventProductAdvertised,
	EventOrderPlaced,
}

// Event represents a domain event emitted by services after a store write.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Actor      string    `json:"actor,omitempty"`
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload,omitempty"`
}

// AdvertisementChangedPayload payload.
type AdvertisementChangedPayload struct {
	Advertisement string `json:"advertisement"`
	Upserted      bool   `json:"upserted"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	ProductID string `json:"product_id"`
}
