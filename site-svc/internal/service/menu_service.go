package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sabor-autentico/site-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

// MenuService serves the catalog from memory after loading it once from the repository.
type MenuService struct {
	repo CatalogRepository

	mu         sync.RWMutex
	categories []domain.Category
	items      []domain.MenuItem
	byID       map[string]domain.MenuItem
}

func NewMenuService(repo CatalogRepository) *MenuService {
	return &MenuService{
		repo: repo,
		byID: map[string]domain.MenuItem{},
	}
}

func (s *MenuService) Load(ctx context.Context) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}

	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	s.mu.Lock()
	s.categories = categories
	s.items = items
	s.byID = byID
	s.mu.Unlock()

	log.Info().Int("categories", len(categories)).Int("items", len(items)).Msg("menu catalog loaded")
	return nil
}

func (s *MenuService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Items lists the catalog filtered by category and dietary tag. Empty category
// means every category; empty or "all" diet disables the tag filter. A tag
// matches when its lower-cased text contains the lower-cased diet.
func (s *MenuService) Items(category, diet string) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diet = strings.ToLower(strings.TrimSpace(diet))
	items := []domain.MenuItem{}
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		if diet != "" && diet != "all" && !hasTag(item, diet) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *MenuService) Item(id string) (domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byID[id]
	if !ok {
		return domain.MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

func hasTag(item domain.MenuItem, diet string) bool {
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), diet) {
			return true
		}
	}
	return false
}
