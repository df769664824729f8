package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-formtest/internal/logger"
	"github.com/sbilibin2017/gw-formtest/internal/middlewares"
	"github.com/sbilibin2017/gw-formtest/internal/models"
)

//go:generate mockgen -source=form.go -destination=form_mock_test.go -package=handlers

var (
	errInvalidEncoding = errors.New("request body is not valid UTF-8")
	errNotObject       = errors.New("request body is not a JSON object")
)

// SchemaChecker checks a raw payload against the static schema contract.
type SchemaChecker interface {
	Check(payload map[string]any) []models.SchemaError
}

// FormValidator applies the form field rules and returns the cleaned form.
type FormValidator interface {
	Validate(payload map[string]any) (*models.LoginForm, models.FormErrors)
}

// Authenticator matches credentials to a user. A nil user means no match.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// SessionLoginer starts a session for an authenticated user.
type SessionLoginer interface {
	Login(ctx context.Context, w http.ResponseWriter, r *http.Request, user *models.User) error
}

// FormVariant holds the status codes and success body a form route answers with.
type FormVariant struct {
	Name             string
	SchemaStatus     int
	ValidationStatus int
	SuccessStatus    int
	SuccessBody      any // nil for an empty body
}

var (
	// DefaultVariant reports every failure with 200 and succeeds with 204.
	DefaultVariant = FormVariant{
		Name:             "default",
		SchemaStatus:     http.StatusOK,
		ValidationStatus: http.StatusOK,
		SuccessStatus:    http.StatusNoContent,
	}

	StatusCodesVariant = FormVariant{
		Name:             "status",
		SchemaStatus:     http.StatusTeapot,
		ValidationStatus: http.StatusUnprocessableEntity,
		SuccessStatus:    http.StatusNoContent,
	}

	CustomVariant = FormVariant{
		Name:             "custom",
		SchemaStatus:     http.StatusTeapot,
		ValidationStatus: http.StatusUnprocessableEntity,
		SuccessStatus:    http.StatusOK,
		SuccessBody:      models.CustomResponse{Extra: "foo"},
	}
)

// NewFormHandler returns an HTTP handler that checks a login form and logs the user in.
// Failed authentication is not reported: the variant's success response is returned either way.
// @Summary Submit login form
// @Description Checks the payload against the schema contract, then the form rules, then tries to log the user in.
// @Description Status codes depend on the route: / answers 200/200/204, /status 418/422/204, /custom 418/422/200.
// @Tags forms
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login form"
// @Success 200 {object} models.CustomResponse "Custom success body (/custom)"
// @Success 204 "Form accepted"
// @Failure 418 {object} models.SchemaErrorResponse "Schema error"
// @Failure 422 {object} models.ValidationErrorResponse "Validation error"
// @Failure 500 "Malformed body"
// @Router / [post]
// @Router /status [post]
// @Router /custom [post]
func NewFormHandler(
	variant FormVariant,
	schema SchemaChecker,
	form FormValidator,
	auth Authenticator,
	sessions SessionLoginer,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.RequestIDFromContext(ctx)

		payload, err := decodePayload(r)
		if err != nil {
			logger.Log.Errorw("failed to decode form payload", "request_id", reqID, "variant", variant.Name, "error", err)
			writeServerError(w)
			return
		}

		if schemaErrs := schema.Check(payload); len(schemaErrs) > 0 {
			logger.Log.Infow("schema check failed", "request_id", reqID, "variant", variant.Name, "errors", len(schemaErrs))
			writeJSON(w, variant.SchemaStatus, models.SchemaErrorResponse{
				Error:  models.ErrorType{Type: models.ErrorTypeSchema},
				Errors: schemaErrs,
			})
			return
		}

		cleaned, formErrs := form.Validate(payload)
		if len(formErrs) > 0 {
			logger.Log.Infow("form validation failed", "request_id", reqID, "variant", variant.Name, "fields", len(formErrs))
			writeJSON(w, variant.ValidationStatus, models.ValidationErrorResponse{
				Error:  models.ErrorType{Type: models.ErrorTypeValidation},
				Errors: formErrs,
			})
			return
		}

		if err := login(ctx, w, r, auth, sessions, cleaned); err != nil {
			logger.Log.Errorw("login failed", "request_id", reqID, "variant", variant.Name, "error", err)
			writeServerError(w)
			return
		}

		if variant.SuccessBody == nil {
			w.WriteHeader(variant.SuccessStatus)
			return
		}
		writeJSON(w, variant.SuccessStatus, variant.SuccessBody)
	}
}

// login authenticates the form credentials and starts a session on a match.
func login(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	auth Authenticator,
	sessions SessionLoginer,
	form *models.LoginForm,
) error {
	user, err := auth.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return sessions.Login(ctx, w, r, user)
}

// decodePayload reads the body as a UTF-8 JSON object.
func decodePayload(r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		return nil, errInvalidEncoding
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNotObject
	}
	return payload, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
