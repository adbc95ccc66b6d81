// Package v1 provides the v1 API routes.
package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
	"github.com/nightowl-labs/homedash/infrastructure/api"
	"github.com/nightowl-labs/homedash/infrastructure/api/middleware"
	"github.com/nightowl-labs/homedash/infrastructure/api/v1/dto"
)

// SyncRouter handles sync trigger endpoints.
//
// POST /sync accepts two callers. Interactive callers authenticate with
// the identity header and sync their own data. Machine callers (the
// source's change webhook) authenticate with a shared secret and name the
// target owner in the body.
type SyncRouter struct {
	client *homedash.Client
	logger *slog.Logger
}

// NewSyncRouter creates a new SyncRouter.
func NewSyncRouter(client *homedash.Client) *SyncRouter {
	return &SyncRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for sync endpoints. Run history lives
// under /runs and requires a verified identity.
func (s *SyncRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", s.Trigger)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity(s.client.Verifier(), s.client.IdentityHeader()))
		r.Mount("/runs", NewRunsRouter(s.client).Routes())
	})

	return router
}

// Trigger handles POST /api/v1/sync.
func (s *SyncRouter) Trigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if secret := r.Header.Get(middleware.SyncSecretHeader); secret != "" {
		if !middleware.SecretMatches(s.client.SyncSecrets(), secret) {
			api.WriteError(w, r, api.NewAuthenticationError("invalid sync secret"), s.logger)
			return
		}

		var req dto.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, "invalid request body", err), s.logger)
			return
		}
		if req.UserID == "" {
			api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, "userId is required", nil), s.logger)
			return
		}

		run, err := s.runSync(ctx, req.UserID, req.DBType, syncrun.TriggerWebhook)
		if err != nil {
			api.WriteError(w, r, err, s.logger)
			return
		}
		api.WriteJSON(w, http.StatusOK, dto.NewSyncResponse(run))
		return
	}

	ownerID, err := s.client.Verifier().Verify(ctx, r.Header.Get(s.client.IdentityHeader()))
	if err != nil {
		api.WriteError(w, r, api.NewAuthenticationError("no verified identity"), s.logger)
		return
	}

	run, err := s.runSync(ctx, ownerID, "", syncrun.TriggerAPI)
	if err != nil {
		api.WriteError(w, r, err, s.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, dto.NewSyncResponse(run))
}

func (s *SyncRouter) runSync(ctx context.Context, ownerID, dbType string, trigger syncrun.Trigger) (syncrun.Run, error) {
	if dbType == "" {
		return s.client.Sync.SyncAll(ctx, ownerID, trigger)
	}
	kind, err := holding.ParseKind(dbType)
	if err != nil {
		return syncrun.Run{}, api.NewAPIError(http.StatusBadRequest, err.Error(), err)
	}
	return s.client.Sync.SyncKind(ctx, ownerID, kind, trigger)
}
