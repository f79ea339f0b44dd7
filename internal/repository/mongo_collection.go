package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
)

type mongoCollection struct {
	coll *mongo.Collection
}

// NewMongoCollection wraps a driver collection handle.
func NewMongoCollection(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

// NewMongoCollections opens a handle for every collection in db.
func NewMongoCollections(db *mongo.Database) Collections {
	return Collections{
		Users:      NewMongoCollection(db.Collection(CollectionUsers)),
		Categories: NewMongoCollection(db.Collection(CollectionCategories)),
		Products:   NewMongoCollection(db.Collection(CollectionProducts)),
		Orders:     NewMongoCollection(db.Collection(CollectionOrders)),
	}
}

func (c *mongoCollection) Find(ctx context.Context, q query.Query) ([]domain.Document, error) {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(toSort(q.Sort))
	}
	if n, ok := q.Limit.Get(); ok {
		opts.SetLimit(n)
	}

	cursor, err := c.coll.Find(ctx, toFilter(q.Filter), opts)
	if err != nil {
		return nil, err
	}
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, domain.Document(m))
	}
	return docs, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter query.Filter) (domain.Document, error) {
	var m bson.M
	if err := c.coll.FindOne(ctx, toFilter(filter)).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return domain.Document(m), nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc domain.Document) (*InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, err
	}
	return &InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}, nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter query.Filter, set domain.Document, upsert bool) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M(set)}
	res, err := c.coll.UpdateOne(ctx, toFilter(filter), update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}
	out := &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := hexID(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter query.Filter) (*DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, toFilter(filter))
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (c *mongoCollection) Count(ctx context.Context, filter query.Filter) (int64, error) {
	return c.coll.CountDocuments(ctx, toFilter(filter))
}

// toFilter converts equality conditions into a bson filter. String ids that
// parse as ObjectIDs are matched as ObjectIDs; anything else is matched verbatim.
func toFilter(filter query.Filter) bson.D {
	out := make(bson.D, 0, len(filter))
	for _, cond := range filter {
		value := cond.Value
		if cond.Field == domain.FieldID {
			if s, ok := value.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					value = oid
				}
			}
		}
		out = append(out, bson.E{Key: cond.Field, Value: value})
	}
	return out
}

func toSort(keys []query.SortKey) bson.D {
	out := make(bson.D, 0, len(keys))
	for _, key := range keys {
		out = append(out, bson.E{Key: key.Field, Value: int(key.Direction)})
	}
	return out
}

func hexID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return idString(v)
}
