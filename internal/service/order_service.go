package service

import (
	"context"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// OrderService exposes buyer orders. Orders have no update path.
type OrderService struct {
	orders repository.Collection
	events publisher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.Collection, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, events: publisher{dispatcher: dispatcher}}
}

// List returns the orders placed by user, optionally for one product.
func (s *OrderService) List(ctx context.Context, user string, productID query.Option[string]) ([]domain.Document, error) {
	return s.orders.Find(ctx, query.Orders(user, productID))
}

// Place stores the posted order document as-is.
func (s *OrderService) Place(ctx context.Context, actor string, order domain.Document) (*repository.InsertResult, error) {
	res, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, events.Event{
		Type:       events.EventOrderPlaced,
		Actor:      actor,
		DocumentID: res.InsertedID,
		Payload:    events.OrderPlacedPayload{ProductID: order.String(domain.OrderFieldProductID)},
	})
	return res, nil
}
