package controller

import (
	"net/http"

	"product-helium-addon/logx"
	"product-helium-addon/service"
)

// CatalogController handles product page requests
type CatalogController struct {
	service service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(svc service.CatalogServiceInterface) *CatalogController {
	return &CatalogController{service: svc}
}

// HeliumOption handles GET /products/{id}/helium-option?helium_add=1
// Responds with the HTML fragment of the opt-in checkbox, or the view model with
// ?format=json. Products without helium get 204 No Content.
func (c *CatalogController) HeliumOption(w http.ResponseWriter, r *http.Request) {
	logx.Debug().Str("path", r.URL.Path).Msg("📥 HeliumOption: request received")

	productID, err := pathID(r)
	if err != nil {
		writeError(w, "HeliumOption", err)
		return
	}

	view, err := c.service.HeliumOption(r.Context(), storefrontScope(w, r), productID, r.URL.Query().Get("helium_add"))
	if err != nil {
		writeError(w, "HeliumOption", err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, "HeliumOption", http.StatusOK, view)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(view.HTML)); err != nil {
		logx.Error().Err(err).Msg("❌ HeliumOption: Error writing response")
	}
}
