package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/middlewares"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

// NewSimpleFormHandler returns a handler for the simplified form flow.
// It skips the schema check and always answers 200 with an "errors" member.
// @Summary Submit login form (simplified)
// @Description Runs the form rules only. Errors is [] on success.
// @Tags forms
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login form"
// @Success 200 {object} models.SimpleFormResponse
// @Failure 500 "Malformed body"
// @Router /simple [post]
func NewSimpleFormHandler(form FormValidator, auth Authenticator, sessions SessionLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.RequestIDFromContext(ctx)

		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Errorw("failed to decode form payload", "request_id", reqID, "error", err)
			writeServerError(w)
			return
		}

		cleaned, formErrs := form.Validate(payload)
		if len(formErrs) > 0 {
			writeJSON(w, http.StatusOK, models.SimpleFormResponse{Errors: formErrs})
			return
		}

		if err := login(ctx, w, r, auth, sessions, cleaned); err != nil {
			logger.Log.Errorw("login failed", "request_id", reqID, "error", err)
			writeServerError(w)
			return
		}

		writeJSON(w, http.StatusOK, models.SimpleFormResponse{Errors: []models.FormError{}})
	}
}
