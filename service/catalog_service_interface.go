package service

import (
	"context"

	"product-helium-addon/models"
)

// CatalogServiceInterface defines the contract for product page operations
type CatalogServiceInterface interface {
	HeliumOption(ctx context.Context, scope Scope, productID int64, requestFlag string) (*models.OptInView, error)
}
