package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-helium-addon/errx"
	"product-helium-addon/models"
	"product-helium-addon/service"
)

type fakeCatalog struct {
	view  *models.OptInView
	err   error
	scope service.Scope
	flag  string
}

func (f *fakeCatalog) HeliumOption(_ context.Context, scope service.Scope, _ int64, flag string) (*models.OptInView, error) {
	f.scope, f.flag = scope, flag
	return f.view, f.err
}

type fakeCart struct {
	added   []models.AddToCartRequest
	scopes  []service.Scope
	cart    *models.Cart
	order   *models.Order
	addErr  error
	cartErr error
}

func (f *fakeCart) AddToCart(_ context.Context, scope service.Scope, req models.AddToCartRequest) (*models.CartLine, error) {
	f.scopes = append(f.scopes, scope)
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, req)
	return &models.CartLine{ProductID: req.ProductID}, nil
}

func (f *fakeCart) GetCart(_ context.Context, scope service.Scope) (*models.Cart, error) {
	f.scopes = append(f.scopes, scope)
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	return f.cart, nil
}

func (f *fakeCart) Checkout(_ context.Context, scope service.Scope) (*models.Order, error) {
	f.scopes = append(f.scopes, scope)
	if f.order == nil {
		return nil, errx.BadRequest(service.ErrEmptyCart, "cart is empty")
	}
	return f.order, nil
}

func TestHeliumOptionHTML(t *testing.T) {
	fc := &fakeCatalog{view: &models.OptInView{ProductID: 80, PriceText: "$2.00", HTML: "<p>helium</p>"}}
	c := NewCatalogController(fc)

	req := httptest.NewRequest(http.MethodGet, "/products/80/helium-option?helium_add=1&currency=EUR", nil)
	req.SetPathValue("id", "80")
	req.Header.Set("Accept-Language", "es")
	rec := httptest.NewRecorder()
	c.HeliumOption(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>helium</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "1", fc.flag)
	assert.Equal(t, "EUR", fc.scope.Currency)
	assert.Equal(t, "es", fc.scope.Lang)
}

func TestHeliumOptionJSONAndNoContent(t *testing.T) {
	fc := &fakeCatalog{view: &models.OptInView{ProductID: 80, PriceText: "$2.00"}}
	c := NewCatalogController(fc)

	req := httptest.NewRequest(http.MethodGet, "/products/80/helium-option?format=json", nil)
	req.SetPathValue("id", "80")
	rec := httptest.NewRecorder()
	c.HeliumOption(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var view models.OptInView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "$2.00", view.PriceText)

	fc.view = nil
	rec = httptest.NewRecorder()
	c.HeliumOption(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHeliumOptionErrors(t *testing.T) {
	c := NewCatalogController(&fakeCatalog{err: errx.NotFound(errors.New("gone"), "product not found")})

	req := httptest.NewRequest(http.MethodGet, "/products/abc/helium-option", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	c.HeliumOption(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req.SetPathValue("id", "9")
	rec = httptest.NewRecorder()
	c.HeliumOption(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"product not found"}`, rec.Body.String())
}

func TestAddItemForm(t *testing.T) {
	fc := &fakeCart{cart: &models.Cart{Subtotal: decimal.RequireFromString("14.50")}}
	c := NewCartController(fc)

	form := url.Values{"product_id": {"80"}, "quantity": {"2"}, "helium_add": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	c.AddItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fc.added, 1)
	assert.Equal(t, models.AddToCartRequest{ProductID: 80, Quantity: 2, HeliumAdd: "1"}, fc.added[0])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, fc.scopes[0].SessionID)
	assert.Equal(t, fc.scopes[0].SessionID, fc.scopes[1].SessionID, "cart read uses the same session")
}

func TestAddItemJSONReusesSession(t *testing.T) {
	fc := &fakeCart{cart: &models.Cart{}}
	c := NewCartController(fc)

	req := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id": 20, "variation_id": 21, "quantity": 1, "helium_add": "0"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-9"})
	req.Header.Set("X-Currency", "COP")
	rec := httptest.NewRecorder()
	c.AddItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(21), fc.added[0].VariationID)
	assert.Equal(t, "sess-9", fc.scopes[0].SessionID)
	assert.Equal(t, "COP", fc.scopes[0].Currency)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAddItemJSONAcceptsBoolAndNumberFlags(t *testing.T) {
	tests := []struct {
		name string
		flag string
		want models.FlagValue
	}{
		{name: "bool true", flag: `true`, want: "1"},
		{name: "bool false", flag: `false`, want: ""},
		{name: "number one", flag: `1`, want: "1"},
		{name: "number zero", flag: `0`, want: ""},
		{name: "string", flag: `"on"`, want: "on"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeCart{cart: &models.Cart{}}
			c := NewCartController(fc)

			body := `{"product_id": 80, "quantity": 1, "helium_add": ` + tc.flag + `}`
			req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c.AddItem(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.Len(t, fc.added, 1)
			assert.Equal(t, tc.want, fc.added[0].HeliumAdd)
		})
	}
}

func TestAddItemBadInput(t *testing.T) {
	c := NewCartController(&fakeCart{})

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("product_id=abc"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	c.AddItem(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	c.AddItem(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id": 80, "helium_add": {}}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	c.AddItem(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCartAndCheckout(t *testing.T) {
	fc := &fakeCart{cartErr: errx.WrapRedis(errors.New("connection refused"))}
	c := NewCartController(fc)

	rec := httptest.NewRecorder()
	c.GetCart(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = httptest.NewRecorder()
	c.Checkout(rec, httptest.NewRequest(http.MethodPost, "/cart/checkout", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fc.order = &models.Order{Currency: "USD"}
	rec = httptest.NewRecorder()
	c.Checkout(rec, httptest.NewRequest(http.MethodPost, "/cart/checkout", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
