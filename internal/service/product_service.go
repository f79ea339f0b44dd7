package service

import (
	"context"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// ProductService exposes product listings and seller writes.
type ProductService struct {
	products repository.Collection
	events   publisher
}

// NewProductService builds the service.
func NewProductService(products repository.Collection, dispatcher events.Dispatcher) *ProductService {
	return &ProductService{products: products, events: publisher{dispatcher: dispatcher}}
}

func (s *ProductService) List(ctx context.Context, limit query.Option[int64]) ([]domain.Document, error) {
	return s.products.Find(ctx, query.Products(limit))
}

func (s *ProductService) ListAvailable(ctx context.Context, limit query.Option[int64]) ([]domain.Document, error) {
	return s.products.Find(ctx, query.AvailableProducts(limit))
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Document, error) {
	return s.products.Find(ctx, query.ProductsByCategory(categoryID))
}

func (s *ProductService) ListBySeller(ctx context.Context, seller string) ([]domain.Document, error) {
	return s.products.Find(ctx, query.ProductsBySeller(seller))
}

func (s *ProductService) ListAdvertised(ctx context.Context) ([]domain.Document, error) {
	return s.products.Find(ctx, query.AdvertisedProducts())
}

// Create stores the posted product document as-is. No category or seller
// consistency checks are made.
func (s *ProductService) Create(ctx context.Context, actor string, product domain.Document) (*repository.InsertResult, error) {
	res, err := s.products.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, events.Event{Type: events.EventProductListed, Actor: actor, DocumentID: res.InsertedID})
	return res, nil
}

// Delete removes the product with id if actor is its seller. Another seller's
// product is left alone and reported as deletedCount 0.
func (s *ProductService) Delete(ctx context.Context, actor, id string) (*repository.DeleteResult, error) {
	res, err := s.products.DeleteOne(ctx, query.ProductOwnedBy(id, actor))
	if err != nil {
		return nil, err
	}
	if res.DeletedCount > 0 {
		s.events.publish(ctx, events.Event{Type: events.EventProductDeleted, Actor: actor, DocumentID: id})
	}
	return res, nil
}

// SetAdvertisement sets the advertisement flag on the product with id,
// creating the document if needed. actor is empty for anonymous callers.
func (s *ProductService) SetAdvertisement(ctx context.Context, actor, id string, ad domain.Advertisement) (*repository.UpdateResult, error) {
	set := domain.Document{domain.ProductFieldAdvertisement: string(ad)}
	res, err := s.products.UpdateOne(ctx, query.ByID(id), set, true)
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, events.Event{
		Type:       events.EventProductAdvertised,
		Actor:      actor,
		DocumentID: id,
		Payload: events.AdvertisementChangedPayload{
			Advertisement: string(ad),
			Upserted:      res.UpsertedCount > 0,
		},
	})
	return res, nil
}
