package service

import (
	"context"

	"sabor-autentico/site-svc/internal/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.SiteEvent) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type MenuServiceInterface interface {
	Categories() []domain.Category
	Items(category, diet string) []domain.MenuItem
	Item(id string) (domain.MenuItem, error)
}

type SessionRegistry interface {
	GetOrCreate(id string) (*Session, bool)
}

var (
	_ MenuServiceInterface = (*MenuService)(nil)
	_ SessionRegistry      = (*SessionStore)(nil)
)
