package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

type stubCache struct {
	docs        []domain.Document
	hit         bool
	getErr      error
	sets        int
	invalidated int
}

func (s *stubCache) Get(context.Context) ([]domain.Document, bool, error) {
	return s.docs, s.hit, s.getErr
}

func (s *stubCache) Set(_ context.Context, docs []domain.Document) error {
	s.sets++
	s.docs, s.hit = docs, true
	return nil
}

func (s *stubCache) Invalidate(context.Context) error {
	s.invalidated++
	s.docs, s.hit = nil, false
	return nil
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const seedYAML = `
categories:
  - id: apple
    name: Apple
  - id: samsung
    name: Samsung
  - name: ""
  - name: Xiaomi
`

func TestCategorySeedFromFile(t *testing.T) {
	coll := repository.NewMemoryCollection()
	cache := &stubCache{}
	svc := NewCategoryService(coll, cache, zap.NewNop())
	ctx := context.Background()
	path := writeSeed(t, seedYAML)

	n, err := svc.SeedFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, cache.invalidated)

	apple, err := svc.GetByID(ctx, "apple")
	require.NoError(t, err)
	assert.Equal(t, "Apple", apple.String("name"))

	xiaomi, err := svc.GetByName(ctx, "Xiaomi")
	require.NoError(t, err)
	assert.NotEmpty(t, xiaomi.String("_id"))

	missing, err := svc.GetByName(ctx, "Nokia")
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err = svc.SeedFromFile(ctx, path)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCategorySeedRejectsBadYAML(t *testing.T) {
	svc := NewCategoryService(repository.NewMemoryCollection(), nil, zap.NewNop())
	_, err := svc.SeedFromFile(context.Background(), writeSeed(t, "categories: [oops"))
	assert.Error(t, err)
}

func TestCategoryListReadsThroughCache(t *testing.T) {
	coll := repository.NewMemoryCollection()
	_, err := coll.InsertOne(context.Background(), domain.Category{ID: "apple", Name: "Apple"}.Document())
	require.NoError(t, err)
	cache := &stubCache{}
	svc := NewCategoryService(coll, cache, zap.NewNop())
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestCategoryListFallsBackOnCacheError(t *testing.T) {
	coll := repository.NewMemoryCollection()
	_, err := coll.InsertOne(context.Background(), domain.Category{Name: "Apple"}.Document())
	require.NoError(t, err)
	svc := NewCategoryService(coll, &stubCache{getErr: errors.New("redis down")}, zap.NewNop())

	docs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
