package controller

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"product-helium-addon/errx"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/service"
)

// CartController handles cart and checkout requests
type CartController struct {
	service service.CartServiceInterface
}

// NewCartController creates a new CartController
func NewCartController(svc service.CartServiceInterface) *CartController {
	return &CartController{service: svc}
}

// AddItem handles POST /cart/items
// Example request (form or JSON):
//
//	{"product_id": 80, "variation_id": 0, "quantity": 1, "helium_add": "1"}
//
// Responds with the updated cart.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	logx.Info().Str("path", r.URL.Path).Msg("📥 AddItem: request received")

	req, err := decodeAddToCart(r)
	if err != nil {
		writeError(w, "AddItem", err)
		return
	}

	scope := storefrontScope(w, r)
	if _, err := c.service.AddToCart(r.Context(), scope, req); err != nil {
		writeError(w, "AddItem", err)
		return
	}

	cart, err := c.service.GetCart(r.Context(), scope)
	if err != nil {
		writeError(w, "AddItem", err)
		return
	}
	writeJSON(w, "AddItem", http.StatusOK, cart)
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.service.GetCart(r.Context(), storefrontScope(w, r))
	if err != nil {
		writeError(w, "GetCart", err)
		return
	}
	writeJSON(w, "GetCart", http.StatusOK, cart)
}

// Checkout handles POST /cart/checkout
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	logx.Info().Str("path", r.URL.Path).Msg("📥 Checkout: request received")

	order, err := c.service.Checkout(r.Context(), storefrontScope(w, r))
	if err != nil {
		writeError(w, "Checkout", err)
		return
	}
	writeJSON(w, "Checkout", http.StatusCreated, order)
}

func decodeAddToCart(r *http.Request) (models.AddToCartRequest, error) {
	var req models.AddToCartRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errx.BadRequest(err, "invalid request body")
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, errx.BadRequest(err, "invalid form")
	}
	var err error
	if req.ProductID, err = formInt(r, "product_id"); err != nil {
		return req, err
	}
	if req.VariationID, err = formInt(r, "variation_id"); err != nil {
		return req, err
	}
	qty, err := formInt(r, "quantity")
	if err != nil {
		return req, err
	}
	req.Quantity = int(qty)
	req.HeliumAdd = models.FlagValue(r.PostForm.Get("helium_add"))
	return req, nil
}

func formInt(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PostForm.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errx.BadRequest(fmt.Errorf("invalid %s %q: %w", key, raw, err), key+" must be a number")
	}
	return v, nil
}
