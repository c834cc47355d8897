package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"product-helium-addon/errx"
	"product-helium-addon/logx"
	"product-helium-addon/service"
)

// SessionCookie carries the cart session id
const SessionCookie = "helium_cart_session"

const sessionCookieMaxAge = 48 * time.Hour

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, op string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msgf("❌ %s: Error encoding response", op)
	}
}

// writeError maps err to its HTTP status and writes a JSON error payload
func writeError(w http.ResponseWriter, op string, err error) {
	status, message := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Int("status", status).Msgf("❌ %s: request failed", op)
	} else {
		logx.Warn().Err(err).Int("status", status).Msgf("⚠️  %s: request rejected", op)
	}
	writeJSON(w, op, status, errorResponse{Error: message})
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errx.BadRequest(fmt.Errorf("invalid id %q", raw), "invalid id")
	}
	return id, nil
}

// activeCurrency reads the shopper currency from the currency query parameter or the X-Currency header
func activeCurrency(r *http.Request) string {
	if c := strings.TrimSpace(r.URL.Query().Get("currency")); c != "" {
		return c
	}
	return strings.TrimSpace(r.Header.Get("X-Currency"))
}

// storefrontScope builds the shopper scope of a request, issuing a session cookie when absent
func storefrontScope(w http.ResponseWriter, r *http.Request) service.Scope {
	sessionID := ""
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		sessionID = c.Value
	} else {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(sessionCookieMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return service.Scope{
		SessionID: sessionID,
		Currency:  activeCurrency(r),
		Lang:      r.Header.Get("Accept-Language"),
	}
}
