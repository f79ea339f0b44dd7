package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/marketplace-service/internal/query"
)

func TestToFilterConvertsObjectIDs(t *testing.T) {
	oid := primitive.NewObjectID()

	got := toFilter(query.ByID(oid.Hex()).And("status", "available"))
	assert.Equal(t, bson.D{{Key: "_id", Value: oid}, {Key: "status", Value: "available"}}, got)

	plain := toFilter(query.ByID("phones"))
	assert.Equal(t, bson.D{{Key: "_id", Value: "phones"}}, plain)

	assert.Empty(t, toFilter(query.Filter{}))
}

func TestToSort(t *testing.T) {
	got := toSort(query.Products(query.None[int64]()).Sort)
	assert.Equal(t, bson.D{{Key: "publishedDate", Value: -1}, {Key: "_id", Value: -1}}, got)
}

func TestHexID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), hexID(oid))
	assert.Equal(t, "custom", hexID("custom"))
	assert.Equal(t, "", hexID(nil))
}
