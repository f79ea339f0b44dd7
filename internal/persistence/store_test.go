package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/marketplace-service/internal/config"
	"github.com/spec-kit/marketplace-service/internal/domain"
)

func TestOpenMemoryStore(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
	}, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	assert.Empty(t, store.Checks)
	res, err := store.Collections.Products.InsertOne(context.Background(), domain.Document{"name": "Pixel"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{
		Store: config.StoreConfig{Driver: "sqlite"},
	}, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenPostgresRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{
		Store: config.StoreConfig{Driver: config.StoreDriverPostgres},
	}, zap.NewNop())
	assert.ErrorContains(t, err, "POSTGRES_DSN")
}

func TestRedisDisabledWithoutAddr(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{}, zap.NewNop())
	assert.False(t, r.Enabled())
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}

func TestMigrationFilesSorted(t *testing.T) {
	files, err := migrationFiles("../../migrations")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_collections.sql", files[0])
}
