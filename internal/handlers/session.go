package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-formtest/internal/middlewares"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

// NewSessionHandler returns the session placed in the context by middlewares.SessionMiddleware.
// @Summary Current session
// @Description Shows which user the session cookie is logged in as.
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Failure 401 "No active session"
// @Router /session [get]
func NewSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())
		if s == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, models.SessionResponse{
			SessionID: s.SessionID.String(),
			Username:  s.Username,
		})
	}
}
