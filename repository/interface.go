package repository

import (
	"context"

	"product-helium-addon/models"
)

// SettingsRepositoryInterface defines the contract for global option storage of one site
type SettingsRepositoryInterface interface {
	GetOption(ctx context.Context, name string) (string, bool, error)
	AddOption(ctx context.Context, name, value string) (bool, error)
	SetOption(ctx context.Context, name, value string) error
	DeleteOption(ctx context.Context, name string) error
	ListSites(ctx context.Context) ([]int64, error)
	ForSite(siteID int64) SettingsRepositoryInterface
}

// ProductMetaRepositoryInterface defines the contract for per-product meta storage
type ProductMetaRepositoryInterface interface {
	GetMeta(ctx context.Context, productID int64, key string) (string, error)
	SetMeta(ctx context.Context, productID int64, key, value string) error
}

// ProductRepositoryInterface defines the contract for loading catalog products
type ProductRepositoryInterface interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// OrderRepositoryInterface defines the contract for order persistence
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	AddOrderItemMeta(ctx context.Context, orderLineID int64, key, value string) error
}

// CartSessionRepositoryInterface defines the contract for cart session storage
type CartSessionRepositoryInterface interface {
	Load(ctx context.Context, sessionID string) ([]models.SessionValues, error)
	Save(ctx context.Context, sessionID string, lines []models.SessionValues) error
	Clear(ctx context.Context, sessionID string) error
}
