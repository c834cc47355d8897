package service

import (
	"context"
	"errors"
	"net/url"

	"product-helium-addon/addon"
	"product-helium-addon/errx"
	"product-helium-addon/models"
	"product-helium-addon/repository"
)

// SettingsService backs the helium settings screen and the product edit panel
type SettingsService struct {
	factory  *AddonFactory
	settings repository.SettingsRepositoryInterface
	meta     repository.ProductMetaRepositoryInterface
	products repository.ProductRepositoryInterface
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(
	factory *AddonFactory,
	settings repository.SettingsRepositoryInterface,
	meta repository.ProductMetaRepositoryInterface,
	products repository.ProductRepositoryInterface,
) *SettingsService {
	return &SettingsService{
		factory:  factory,
		settings: settings,
		meta:     meta,
		products: products,
	}
}

// Ensure SettingsService implements SettingsServiceInterface
var _ SettingsServiceInterface = (*SettingsService)(nil)

// GetSettings returns the settings fields with their stored values
func (s *SettingsService) GetSettings(ctx context.Context, lang string) (*models.SettingsResponse, error) {
	fields, err := addon.NewAdminSettings(s.settings, s.factory.Translator(lang)).Fields(ctx)
	if err != nil {
		return nil, errx.WrapDatabase(err)
	}
	return &models.SettingsResponse{Fields: fields}, nil
}

// SaveSettings stores the submitted settings form and returns the saved values
func (s *SettingsService) SaveSettings(ctx context.Context, lang string, form url.Values) (*models.SettingsResponse, error) {
	if err := addon.NewAdminSettings(s.settings, s.factory.Translator(lang)).Save(ctx, form); err != nil {
		return nil, errx.WrapDatabase(err)
	}
	return s.GetSettings(ctx, lang)
}

// GetProductPanel returns the helium overrides of a product
func (s *SettingsService) GetProductPanel(ctx context.Context, lang string, productID int64) (*models.ProductPanel, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	panel := s.factory.ForRequest(ctx, "", lang).ProductPanel(ctx, productID)
	return &panel, nil
}

// SaveProductPanel stores the submitted product overrides and returns the saved panel
func (s *SettingsService) SaveProductPanel(ctx context.Context, lang string, productID int64, form url.Values) (*models.ProductPanel, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	a := s.factory.ForRequest(ctx, "", lang)
	if err := a.SaveProductPanel(ctx, s.meta, productID, form); err != nil {
		return nil, errx.WrapDatabase(err)
	}
	panel := a.ProductPanel(ctx, productID)
	return &panel, nil
}

func (s *SettingsService) requireProduct(ctx context.Context, productID int64) error {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errx.NotFound(err, "product not found")
		}
		return errx.WrapDatabase(err)
	}
	return nil
}
