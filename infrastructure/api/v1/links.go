package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/infrastructure/api"
	"github.com/nightowl-labs/homedash/infrastructure/api/middleware"
	"github.com/nightowl-labs/homedash/infrastructure/api/v1/dto"
)

// LinksRouter manages the owner's database links, one per entity kind.
type LinksRouter struct {
	client *homedash.Client
	logger *slog.Logger
}

// NewLinksRouter creates a new LinksRouter.
func NewLinksRouter(client *homedash.Client) *LinksRouter {
	return &LinksRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for link endpoints.
func (l *LinksRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", l.List)
	router.Put("/{kind}", l.Save)
	router.Delete("/{kind}", l.Delete)

	return router
}

// List handles GET /api/v1/links.
func (l *LinksRouter) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	links, err := l.client.Holdings.Links(r.Context(), ownerID)
	if err != nil {
		api.WriteError(w, r, err, l.logger)
		return
	}

	out := make([]dto.LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, dto.NewLinkResponse(link))
	}
	api.WriteJSON(w, http.StatusOK, out)
}

// Save handles PUT /api/v1/links/{kind}.
func (l *LinksRouter) Save(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	kind, err := holding.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, err.Error(), err), l.logger)
		return
	}

	var req dto.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, "invalid request body", err), l.logger)
		return
	}
	if req.DatabaseID == "" {
		api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, "databaseId is required", nil), l.logger)
		return
	}

	link, err := l.client.Holdings.SaveLink(r.Context(), ownerID, kind, req.DatabaseID)
	if err != nil {
		api.WriteError(w, r, err, l.logger)
		return
	}
	api.WriteJSON(w, http.StatusOK, dto.NewLinkResponse(link))
}

// Delete handles DELETE /api/v1/links/{kind}.
func (l *LinksRouter) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	kind, err := holding.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		api.WriteError(w, r, api.NewAPIError(http.StatusBadRequest, err.Error(), err), l.logger)
		return
	}

	if err := l.client.Holdings.DeleteLink(r.Context(), ownerID, kind); err != nil {
		api.WriteError(w, r, err, l.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
