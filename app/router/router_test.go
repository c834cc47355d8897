package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"product-helium-addon/app/controller"
	"product-helium-addon/models"
	"product-helium-addon/service"
)

type stubCatalog struct{ productID int64 }

func (s *stubCatalog) HeliumOption(_ context.Context, _ service.Scope, productID int64, _ string) (*models.OptInView, error) {
	s.productID = productID
	return nil, nil
}

type stubCart struct{}

func (stubCart) AddToCart(context.Context, service.Scope, models.AddToCartRequest) (*models.CartLine, error) {
	return &models.CartLine{}, nil
}
func (stubCart) GetCart(context.Context, service.Scope) (*models.Cart, error) {
	return &models.Cart{}, nil
}
func (stubCart) Checkout(context.Context, service.Scope) (*models.Order, error) {
	return &models.Order{}, nil
}

type stubSettings struct{}

func (stubSettings) GetSettings(context.Context, string) (*models.SettingsResponse, error) {
	return &models.SettingsResponse{}, nil
}
func (stubSettings) SaveSettings(context.Context, string, url.Values) (*models.SettingsResponse, error) {
	return &models.SettingsResponse{}, nil
}
func (stubSettings) GetProductPanel(_ context.Context, _ string, id int64) (*models.ProductPanel, error) {
	return &models.ProductPanel{ProductID: id}, nil
}
func (stubSettings) SaveProductPanel(_ context.Context, _ string, id int64, _ url.Values) (*models.ProductPanel, error) {
	return &models.ProductPanel{ProductID: id}, nil
}

func TestRoutes(t *testing.T) {
	catalog := &stubCatalog{}
	mux := SetupRoutes(&Controllers{
		Catalog:  controller.NewCatalogController(catalog),
		Cart:     controller.NewCartController(stubCart{}),
		Settings: controller.NewSettingsController(stubSettings{}),
	})

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodGet, "/products/42/helium-option", http.StatusNoContent},
		{http.MethodGet, "/cart", http.StatusOK},
		{http.MethodPost, "/cart/checkout", http.StatusCreated},
		{http.MethodGet, "/admin/settings/helium", http.StatusOK},
		{http.MethodPost, "/admin/settings/helium", http.StatusOK},
		{http.MethodGet, "/admin/products/7/helium", http.StatusOK},
		{http.MethodDelete, "/cart", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
	assert.Equal(t, int64(42), catalog.productID)
}
