package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
)

// ErrDuplicateID is returned when inserting a document whose _id is taken.
var ErrDuplicateID = errors.New("duplicate document _id")

type memoryCollection struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewMemoryCollection returns a process-local collection with the same
// filter, sort and limit semantics as the persistent backends.
func NewMemoryCollection() Collection {
	return &memoryCollection{}
}

// NewMemoryCollections builds an in-memory handle for every collection.
func NewMemoryCollections() Collections {
	return Collections{
		Users:      NewMemoryCollection(),
		Categories: NewMemoryCollection(),
		Products:   NewMemoryCollection(),
		Orders:     NewMemoryCollection(),
	}
}

func (c *memoryCollection) Find(_ context.Context, q query.Query) ([]domain.Document, error) {
	c.mu.RLock()
	result := make([]domain.Document, 0, len(c.docs))
	for _, doc := range c.docs {
		if matches(doc, q.Filter) {
			result = append(result, doc.Clone())
		}
	}
	c.mu.RUnlock()

	if len(q.Sort) > 0 {
		sort.SliceStable(result, func(i, j int) bool {
			for _, key := range q.Sort {
				order := compareValues(result[i][key.Field], result[j][key.Field])
				if order == 0 {
					continue
				}
				if key.Direction == query.Descending {
					return order > 0
				}
				return order < 0
			}
			return false
		})
	}

	if n, ok := q.Limit.Get(); ok && int64(len(result)) > n {
		result = result[:n]
	}
	return result, nil
}

func (c *memoryCollection) FindOne(_ context.Context, filter query.Filter) (domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(filter); i >= 0 {
		return c.docs[i].Clone(), nil
	}
	return nil, nil
}

func (c *memoryCollection) InsertOne(_ context.Context, doc domain.Document) (*InsertResult, error) {
	stored := doc.Clone()
	id := idString(stored[domain.FieldID])
	if id == "" {
		id = uuid.NewString()
	}
	stored[domain.FieldID] = id

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(query.ByID(id)) >= 0 {
		return nil, ErrDuplicateID
	}
	c.docs = append(c.docs, stored)
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *memoryCollection) UpdateOne(_ context.Context, filter query.Filter, set domain.Document, upsert bool) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(filter); i >= 0 {
		res := &UpdateResult{Acknowledged: true, MatchedCount: 1}
		doc := c.docs[i]
		for k, v := range set {
			if k == domain.FieldID {
				continue
			}
			if existing, ok := doc[k]; !ok || !equalValues(existing, v) {
				res.ModifiedCount = 1
			}
			doc[k] = v
		}
		return res, nil
	}

	if !upsert {
		return &UpdateResult{Acknowledged: true}, nil
	}
	doc := upsertDocument(filter, set)
	id := idString(doc[domain.FieldID])
	if id == "" {
		id = uuid.NewString()
	}
	doc[domain.FieldID] = id
	c.docs = append(c.docs, doc)
	return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func (c *memoryCollection) DeleteOne(_ context.Context, filter query.Filter) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(filter)
	if i < 0 {
		return &DeleteResult{Acknowledged: true}, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (c *memoryCollection) Count(_ context.Context, filter query.Filter) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

// indexOf must be called with the lock held.
func (c *memoryCollection) indexOf(filter query.Filter) int {
	for i, doc := range c.docs {
		if matches(doc, filter) {
			return i
		}
	}
	return -1
}

func matches(doc domain.Document, filter query.Filter) bool {
	for _, cond := range filter {
		v, ok := doc[cond.Field]
		if !ok || !equalValues(v, cond.Value) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

// compareValues follows the document store's cross-type sort order: missing
// and null, numbers, strings, objects, arrays, booleans, then dates. Values of
// the same kind compare naturally.
func compareValues(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNull:
		return 0
	case rankNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return cmp.Compare(fa, fb)
	case rankString:
		return cmp.Compare(a.(string), b.(string))
	case rankBool:
		return cmp.Compare(boolRank(a.(bool)), boolRank(b.(bool)))
	case rankDate:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

const (
	rankNull = iota
	rankNumber
	rankString
	rankObject
	rankArray
	rankBool
	rankDate
	rankOther
)

func typeRank(v any) int {
	if v == nil {
		return rankNull
	}
	if _, ok := toFloat(v); ok {
		return rankNumber
	}
	switch v.(type) {
	case string:
		return rankString
	case domain.Document, map[string]any:
		return rankObject
	case []any:
		return rankArray
	case bool:
		return rankBool
	case time.Time:
		return rankDate
	default:
		return rankOther
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
