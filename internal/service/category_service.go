package service

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// CategoryService serves read-only category reference data.
type CategoryService struct {
	categories repository.Collection
	cache      repository.CategoryCache
	logger     *zap.Logger
}

// NewCategoryService builds the service. A nil cache disables caching.
func NewCategoryService(categories repository.Collection, cache repository.CategoryCache, logger *zap.Logger) *CategoryService {
	if cache == nil {
		cache = repository.NewCategoryCache(nil, 0)
	}
	return &CategoryService{categories: categories, cache: cache, logger: logger}
}

// List returns all categories, reading through the cache. Cache failures fall
// back to the store.
func (s *CategoryService) List(ctx context.Context) ([]domain.Document, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn("category cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	docs, err := s.categories.Find(ctx, query.Categories())
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, docs); err != nil {
		s.logger.Warn("category cache write failed", zap.Error(err))
	}
	return docs, nil
}

// GetByID returns the category with id, or nil.
func (s *CategoryService) GetByID(ctx context.Context, id string) (domain.Document, error) {
	return s.categories.FindOne(ctx, query.ByID(id))
}

// GetByName returns the category named name, or nil.
func (s *CategoryService) GetByName(ctx context.Context, name string) (domain.Document, error) {
	return s.categories.FindOne(ctx, query.CategoryByName(name))
}

type categorySeedFile struct {
	Categories []domain.Category `yaml:"categories"`
}

// SeedFromFile loads categories from a YAML file into an empty collection.
// It returns the number of categories inserted.
func (s *CategoryService) SeedFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var seed categorySeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse category seed: %w", err)
	}

	existing, err := s.categories.Count(ctx, query.Filter{})
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		s.logger.Info("categories already present; skipping seed", zap.Int64("count", existing))
		return 0, nil
	}

	inserted := 0
	for _, category := range seed.Categories {
		if category.Name == "" {
			continue
		}
		if _, err := s.categories.InsertOne(ctx, category.Document()); err != nil {
			return inserted, fmt.Errorf("seed category %q: %w", category.Name, err)
		}
		inserted++
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("category cache invalidate failed", zap.Error(err))
	}
	s.logger.Info("categories seeded", zap.Int("count", inserted))
	return inserted, nil
}
