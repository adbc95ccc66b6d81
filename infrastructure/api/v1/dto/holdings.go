// Package dto contains v1 API request and response types.
package dto

import (
	"time"

	"github.com/nightowl-labs/homedash/domain/holding"
)

// AssetResponse represents a mirrored asset.
type AssetResponse struct {
	ID           int64          `json:"id"`
	ExternalID   string         `json:"externalId"`
	Name         string         `json:"name"`
	Symbol       string         `json:"symbol,omitempty"`
	CurrentPrice *float64       `json:"currentPrice,omitempty"`
	Balance      *float64       `json:"balance,omitempty"`
	Icon         string         `json:"icon,omitempty"`
	IconURL      string         `json:"iconUrl,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	LastSyncedAt time.Time      `json:"lastSyncedAt"`
}

// NewAssetResponse maps an asset to its response shape.
func NewAssetResponse(a holding.Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID(),
		ExternalID:   a.ExternalID(),
		Name:         a.Name(),
		Symbol:       a.Symbol(),
		CurrentPrice: a.CurrentPrice(),
		Balance:      a.Balance(),
		Icon:         a.Icon(),
		IconURL:      a.IconURL(),
		Properties:   a.Properties(),
		LastSyncedAt: a.LastSyncedAt(),
	}
}

// PlaceResponse represents a mirrored place.
type PlaceResponse struct {
	ID            int64          `json:"id"`
	ExternalID    string         `json:"externalId"`
	Name          string         `json:"name"`
	PurchasePrice *float64       `json:"purchasePrice,omitempty"`
	PurchaseDate  string         `json:"purchaseDate,omitempty"`
	Icon          string         `json:"icon,omitempty"`
	IconURL       string         `json:"iconUrl,omitempty"`
	Properties    map[string]any `json:"properties,omitempty"`
	LastSyncedAt  time.Time      `json:"lastSyncedAt"`
}

// NewPlaceResponse maps a place to its response shape.
func NewPlaceResponse(p holding.Place) PlaceResponse {
	return PlaceResponse{
		ID:            p.ID(),
		ExternalID:    p.ExternalID(),
		Name:          p.Name(),
		PurchasePrice: p.PurchasePrice(),
		PurchaseDate:  p.PurchaseDate(),
		Icon:          p.Icon(),
		IconURL:       p.IconURL(),
		Properties:    p.Properties(),
		LastSyncedAt:  p.LastSyncedAt(),
	}
}

// InvestmentResponse represents a mirrored investment.
type InvestmentResponse struct {
	ID            int64          `json:"id"`
	ExternalID    string         `json:"externalId"`
	Name          string         `json:"name"`
	Quantity      *float64       `json:"quantity,omitempty"`
	PurchasePrice *float64       `json:"purchasePrice,omitempty"`
	PurchaseDate  string         `json:"purchaseDate,omitempty"`
	AssetID       *int64         `json:"assetId,omitempty"`
	PlaceID       *int64         `json:"placeId,omitempty"`
	Properties    map[string]any `json:"properties,omitempty"`
	LastSyncedAt  time.Time      `json:"lastSyncedAt"`
}

// NewInvestmentResponse maps an investment to its response shape.
func NewInvestmentResponse(i holding.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            i.ID(),
		ExternalID:    i.ExternalID(),
		Name:          i.Name(),
		Quantity:      i.Quantity(),
		PurchasePrice: i.PurchasePrice(),
		PurchaseDate:  i.PurchaseDate(),
		AssetID:       i.AssetID(),
		PlaceID:       i.PlaceID(),
		Properties:    i.Properties(),
		LastSyncedAt:  i.LastSyncedAt(),
	}
}

// LinkResponse represents a database link.
type LinkResponse struct {
	Kind       string    `json:"kind"`
	DatabaseID string    `json:"databaseId"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewLinkResponse maps a database link to its response shape.
func NewLinkResponse(l holding.DatabaseLink) LinkResponse {
	return LinkResponse{
		Kind:       l.Kind().String(),
		DatabaseID: l.DatabaseID(),
		UpdatedAt:  l.UpdatedAt(),
	}
}

// LinkRequest is the body of PUT /links/{kind}.
type LinkRequest struct {
	DatabaseID string `json:"databaseId"`
}
