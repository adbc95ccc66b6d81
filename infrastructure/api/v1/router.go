package v1

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nightowl-labs/homedash"
	apimiddleware "github.com/nightowl-labs/homedash/infrastructure/api/middleware"
)

// NewRouter builds a standalone router with all v1 API routes.
func NewRouter(client *homedash.Client) chi.Router {
	router := chi.NewRouter()
	Register(router, client)
	return router
}

// Register wires the v1 API routes and their middleware onto an existing
// router. Call it before registering any further routes.
//
// The sync endpoint handles its own dual authentication (identity header
// or shared secret); the read endpoints require a verified identity.
func Register(router chi.Router, client *homedash.Client) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", client.IdentityHeader(), apimiddleware.SyncSecretHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(apimiddleware.Logging(client.Logger()))

	router.Route("/api/v1", func(r chi.Router) {
		// Sync authenticates per request: no identity middleware here.
		// Its /runs subtree applies identity itself.
		r.Mount("/sync", NewSyncRouter(client).Routes())

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(30 * time.Second))
			r.Use(apimiddleware.RequireIdentity(client.Verifier(), client.IdentityHeader()))

			holdings := NewHoldingsRouter(client)
			r.Get("/assets", holdings.ListAssets)
			r.Get("/places", holdings.ListPlaces)
			r.Get("/investments", holdings.ListInvestments)
			r.Mount("/links", NewLinksRouter(client).Routes())
		})
	})
}
