// Package router wires the form routes onto a chi router.
package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-formtest/internal/handlers"
	"github.com/sbilibin2017/gw-formtest/internal/middlewares"
)

// Sessions starts sessions on login and resolves them on later requests.
type Sessions interface {
	handlers.SessionLoginer
	middlewares.SessionResolver
}

// Deps are the collaborators the routes are built from.
type Deps struct {
	Schema     handlers.SchemaChecker
	Form       handlers.FormValidator
	Auth       handlers.Authenticator
	Sessions   Sessions
	SwaggerURL string // doc.json location; empty disables /swagger
}

// New returns the router serving every form route.
// Form routes accept POST and PUT and are not CSRF protected; /error answers every method.
func New(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	forms := map[string]handlers.FormVariant{
		"/":       handlers.DefaultVariant,
		"/status": handlers.StatusCodesVariant,
		"/custom": handlers.CustomVariant,
	}
	for pattern, variant := range forms {
		h := handlers.NewFormHandler(variant, d.Schema, d.Form, d.Auth, d.Sessions)
		r.Post(pattern, h)
		r.Put(pattern, h)
	}

	simple := handlers.NewSimpleFormHandler(d.Form, d.Auth, d.Sessions)
	r.Post("/simple", simple)
	r.Put("/simple", simple)

	r.HandleFunc("/error", handlers.NewServerErrorHandler())

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(d.Sessions))
		r.Get("/session", handlers.NewSessionHandler())
	})

	if d.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))
	}

	return r
}
