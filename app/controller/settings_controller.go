package controller

import (
	"net/http"

	"product-helium-addon/errx"
	"product-helium-addon/service"
)

// SettingsController handles the helium admin screens
type SettingsController struct {
	service service.SettingsServiceInterface
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(svc service.SettingsServiceInterface) *SettingsController {
	return &SettingsController{service: svc}
}

// GetSettings handles GET /admin/settings/helium
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.GetSettings(r.Context(), r.Header.Get("Accept-Language"))
	if err != nil {
		writeError(w, "GetSettings", err)
		return
	}
	writeJSON(w, "GetSettings", http.StatusOK, resp)
}

// SaveSettings handles POST /admin/settings/helium with a form body of option names to values.
// An unchecked checkbox is simply absent from the form.
func (c *SettingsController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, "SaveSettings", errx.BadRequest(err, "invalid form"))
		return
	}
	resp, err := c.service.SaveSettings(r.Context(), r.Header.Get("Accept-Language"), r.PostForm)
	if err != nil {
		writeError(w, "SaveSettings", err)
		return
	}
	writeJSON(w, "SaveSettings", http.StatusOK, resp)
}

// GetProductPanel handles GET /admin/products/{id}/helium
func (c *SettingsController) GetProductPanel(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, "GetProductPanel", err)
		return
	}
	panel, err := c.service.GetProductPanel(r.Context(), r.Header.Get("Accept-Language"), productID)
	if err != nil {
		writeError(w, "GetProductPanel", err)
		return
	}
	writeJSON(w, "GetProductPanel", http.StatusOK, panel)
}

// SaveProductPanel handles POST /admin/products/{id}/helium
// Form fields: _is_helium_addable, _helium_addon_cost, _helium_addon_weight
func (c *SettingsController) SaveProductPanel(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, "SaveProductPanel", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, "SaveProductPanel", errx.BadRequest(err, "invalid form"))
		return
	}
	panel, err := c.service.SaveProductPanel(r.Context(), r.Header.Get("Accept-Language"), productID, r.PostForm)
	if err != nil {
		writeError(w, "SaveProductPanel", err)
		return
	}
	writeJSON(w, "SaveProductPanel", http.StatusOK, panel)
}
