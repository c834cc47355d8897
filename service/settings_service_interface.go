package service

import (
	"context"
	"net/url"

	"product-helium-addon/models"
)

// SettingsServiceInterface defines the contract for the helium admin screens
type SettingsServiceInterface interface {
	GetSettings(ctx context.Context, lang string) (*models.SettingsResponse, error)
	SaveSettings(ctx context.Context, lang string, form url.Values) (*models.SettingsResponse, error)
	GetProductPanel(ctx context.Context, lang string, productID int64) (*models.ProductPanel, error)
	SaveProductPanel(ctx context.Context, lang string, productID int64, form url.Values) (*models.ProductPanel, error)
}
