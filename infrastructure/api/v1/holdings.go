package v1

import (
	"log/slog"
	"net/http"

	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/infrastructure/api"
	"github.com/nightowl-labs/homedash/infrastructure/api/middleware"
	"github.com/nightowl-labs/homedash/infrastructure/api/v1/dto"
)

// HoldingsRouter serves the mirrored entities. All endpoints are scoped to
// the verified owner and read-only: rows are written exclusively by sync.
type HoldingsRouter struct {
	client *homedash.Client
	logger *slog.Logger
}

// NewHoldingsRouter creates a new HoldingsRouter.
func NewHoldingsRouter(client *homedash.Client) *HoldingsRouter {
	return &HoldingsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// ListAssets handles GET /api/v1/assets.
func (h *HoldingsRouter) ListAssets(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	pagination := ParsePagination(r)
	assets, err := h.client.Holdings.Assets(r.Context(), ownerID, pagination.Options()...)
	if err != nil {
		api.WriteError(w, r, err, h.logger)
		return
	}

	out := make([]dto.AssetResponse, 0, len(assets))
	for _, asset := range assets {
		out = append(out, dto.NewAssetResponse(asset))
	}
	api.WriteJSON(w, http.StatusOK, out)
}

// ListPlaces handles GET /api/v1/places.
func (h *HoldingsRouter) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	pagination := ParsePagination(r)
	places, err := h.client.Holdings.Places(r.Context(), ownerID, pagination.Options()...)
	if err != nil {
		api.WriteError(w, r, err, h.logger)
		return
	}

	out := make([]dto.PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, dto.NewPlaceResponse(place))
	}
	api.WriteJSON(w, http.StatusOK, out)
}

// ListInvestments handles GET /api/v1/investments.
func (h *HoldingsRouter) ListInvestments(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())

	pagination := ParsePagination(r)
	investments, err := h.client.Holdings.Investments(r.Context(), ownerID, pagination.Options()...)
	if err != nil {
		api.WriteError(w, r, err, h.logger)
		return
	}

	out := make([]dto.InvestmentResponse, 0, len(investments))
	for _, investment := range investments {
		out = append(out, dto.NewInvestmentResponse(investment))
	}
	api.WriteJSON(w, http.StatusOK, out)
}
