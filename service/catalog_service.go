package service

import (
	"context"
	"errors"

	"product-helium-addon/errx"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/repository"
)

// CatalogService builds the helium section of the product page
type CatalogService struct {
	factory  *AddonFactory
	products repository.ProductRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(factory *AddonFactory, products repository.ProductRepositoryInterface) *CatalogService {
	return &CatalogService{factory: factory, products: products}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// HeliumOption returns the opt-in control for a product page, or nil when the product
// does not offer helium
func (s *CatalogService) HeliumOption(ctx context.Context, scope Scope, productID int64, requestFlag string) (*models.OptInView, error) {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errx.NotFound(err, "product not found")
		}
		return nil, errx.WrapDatabase(err)
	}

	view, err := s.factory.ForRequest(ctx, scope.Currency, scope.Lang).RenderOptIn(ctx, productID, requestFlag)
	if err != nil {
		logx.Error().Err(err).Int64("product_id", productID).Msg("❌ HeliumOption: render failed")
		return nil, err
	}
	return view, nil
}
