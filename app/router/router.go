package router

import (
	"net/http"

	"product-helium-addon/app/controller"
)

type Controllers struct {
	Catalog  *controller.CatalogController
	Cart     *controller.CartController
	Settings *controller.SettingsController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on a new mux
func SetupRoutes(controllers *Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("GET /ping", pingHandler)

	// Product page
	mux.HandleFunc("GET /products/{id}/helium-option", controllers.Catalog.HeliumOption)

	// Cart and checkout
	mux.HandleFunc("POST /cart/items", controllers.Cart.AddItem)
	mux.HandleFunc("GET /cart", controllers.Cart.GetCart)
	mux.HandleFunc("POST /cart/checkout", controllers.Cart.Checkout)

	// Admin settings
	mux.HandleFunc("GET /admin/settings/helium", controllers.Settings.GetSettings)
	mux.HandleFunc("POST /admin/settings/helium", controllers.Settings.SaveSettings)

	// Product write panel
	mux.HandleFunc("GET /admin/products/{id}/helium", controllers.Settings.GetProductPanel)
	mux.HandleFunc("POST /admin/products/{id}/helium", controllers.Settings.SaveProductPanel)

	return mux
}
