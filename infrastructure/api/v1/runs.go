package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/infrastructure/api"
	"github.com/nightowl-labs/homedash/infrastructure/api/middleware"
	"github.com/nightowl-labs/homedash/infrastructure/api/v1/dto"
)

// RunsRouter serves sync run history.
type RunsRouter struct {
	client *homedash.Client
	logger *slog.Logger
}

// NewRunsRouter creates a new RunsRouter.
func NewRunsRouter(client *homedash.Client) *RunsRouter {
	return &RunsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for run history endpoints.
func (rr *RunsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", rr.List)

	return router
}

// List handles GET /api/v1/sync/runs. Runs are returned newest first.
func (rr *RunsRouter) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	pagination := ParsePagination(r)
	runs, err := rr.client.Holdings.Runs(r.Context(), ownerID, pagination.Options()...)
	if err != nil {
		api.WriteError(w, r, err, rr.logger)
		return
	}

	out := make([]dto.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, dto.NewRunResponse(run))
	}
	api.WriteJSON(w, http.StatusOK, out)
}
