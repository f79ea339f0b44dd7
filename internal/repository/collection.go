package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
)

// Collection names shared by every backend.
const (
	CollectionUsers      = "users"
	CollectionCategories = "categories"
	CollectionProducts   = "products"
	CollectionOrders     = "orders"
)

// InsertResult mirrors the document store's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the document store's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult mirrors the document store's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is a set of schemaless documents. Every method is a single
// store round trip; none of them are transactional across documents.
type Collection interface {
	// Find returns matching documents in query order. It never returns a nil slice.
	Find(ctx context.Context, q query.Query) ([]domain.Document, error)
	// FindOne returns the first match or nil when nothing matches.
	FindOne(ctx context.Context, filter query.Filter) (domain.Document, error)
	InsertOne(ctx context.Context, doc domain.Document) (*InsertResult, error)
	// UpdateOne sets fields on the first match, inserting one when upsert is true.
	UpdateOne(ctx context.Context, filter query.Filter, set domain.Document, upsert bool) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter query.Filter) (*DeleteResult, error)
	Count(ctx context.Context, filter query.Filter) (int64, error)
}

// Collections bundles the handles opened once at startup.
type Collections struct {
	Users      Collection
	Categories Collection
	Products   Collection
	Orders     Collection
}

// upsertDocument seeds a new document from the equality conditions of filter
// followed by the fields being set.
func upsertDocument(filter query.Filter, set domain.Document) domain.Document {
	doc := make(domain.Document, len(filter)+len(set))
	for _, c := range filter {
		doc[c.Field] = c.Value
	}
	for k, v := range set {
		doc[k] = v
	}
	return doc
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}
