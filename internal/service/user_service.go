package service

import (
	"context"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// UserService exposes the user collection.
type UserService struct {
	users  repository.Collection
	events publisher
}

// NewUserService builds the service.
func NewUserService(users repository.Collection, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, events: publisher{dispatcher: dispatcher}}
}

// List returns every user, or only the one matching email.
func (s *UserService) List(ctx context.Context, email query.Option[string]) ([]domain.Document, error) {
	return s.users.Find(ctx, query.Users(email))
}

// ListByRole returns users holding role.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.Document, error) {
	return s.users.Find(ctx, query.UsersByRole(role))
}

// Register stores the submitted user document as-is.
func (s *UserService) Register(ctx context.Context, user domain.Document) (*repository.InsertResult, error) {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, events.Event{
		Type:       events.EventUserRegistered,
		Actor:      user.String(domain.UserFieldEmail),
		DocumentID: res.InsertedID,
	})
	return res, nil
}

// Delete removes the user with id.
func (s *UserService) Delete(ctx context.Context, actor, id string) (*repository.DeleteResult, error) {
	res, err := s.users.DeleteOne(ctx, query.ByID(id))
	if err != nil {
		return nil, err
	}
	if res.DeletedCount > 0 {
		s.events.publish(ctx, events.Event{Type: events.EventUserDeleted, Actor: actor, DocumentID: id})
	}
	return res, nil
}

// Verify marks the user with id as verified, creating the document if needed.
func (s *UserService) Verify(ctx context.Context, actor, id string) (*repository.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, query.ByID(id), domain.Document{domain.UserFieldVerified: true}, true)
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, events.Event{Type: events.EventUserVerified, Actor: actor, DocumentID: id})
	return res, nil
}
