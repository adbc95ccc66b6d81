package persistence

import (
	"encoding/json"

	"github.com/nightowl-labs/homedash/domain/holding"
	"github.com/nightowl-labs/homedash/domain/syncrun"
)

// AssetMapper maps between domain Asset and persistence AssetModel.
type AssetMapper struct{}

// ToDomain converts an AssetModel to a domain Asset.
func (m AssetMapper) ToDomain(e AssetModel) holding.Asset {
	return holding.ReconstructAsset(
		e.ID,
		e.OwnerID, e.ExternalID, e.DatabaseID, e.Name, e.Symbol,
		e.CurrentPrice, e.Balance,
		e.Icon, e.IconURL,
		propertiesFromDB(e.Properties),
		e.CreatedAt, e.UpdatedAt, e.LastSyncedAt,
	)
}

// ToModel converts a domain Asset to an AssetModel.
func (m AssetMapper) ToModel(a holding.Asset) AssetModel {
	return AssetModel{
		ID:           a.ID(),
		OwnerID:      a.OwnerID(),
		ExternalID:   a.ExternalID(),
		DatabaseID:   a.DatabaseID(),
		Name:         a.Name(),
		Symbol:       a.Symbol(),
		CurrentPrice: a.CurrentPrice(),
		Balance:      a.Balance(),
		Icon:         a.Icon(),
		IconURL:      a.IconURL(),
		Properties:   propertiesToDB(a.Properties()),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
		LastSyncedAt: a.LastSyncedAt(),
	}
}

// PlaceMapper maps between domain Place and persistence PlaceModel.
type PlaceMapper struct{}

// ToDomain converts a PlaceModel to a domain Place.
func (m PlaceMapper) ToDomain(e PlaceModel) holding.Place {
	return holding.ReconstructPlace(
		e.ID,
		e.OwnerID, e.ExternalID, e.DatabaseID, e.Name,
		e.PurchasePrice,
		e.PurchaseDate, e.Icon, e.IconURL,
		propertiesFromDB(e.Properties),
		e.CreatedAt, e.UpdatedAt, e.LastSyncedAt,
	)
}

// ToModel converts a domain Place to a PlaceModel.
func (m PlaceMapper) ToModel(p holding.Place) PlaceModel {
	return PlaceModel{
		ID:            p.ID(),
		OwnerID:       p.OwnerID(),
		ExternalID:    p.ExternalID(),
		DatabaseID:    p.DatabaseID(),
		Name:          p.Name(),
		PurchasePrice: p.PurchasePrice(),
		PurchaseDate:  p.PurchaseDate(),
		Icon:          p.Icon(),
		IconURL:       p.IconURL(),
		Properties:    propertiesToDB(p.Properties()),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
		LastSyncedAt:  p.LastSyncedAt(),
	}
}

// InvestmentMapper maps between domain Investment and persistence InvestmentModel.
type InvestmentMapper struct{}

// ToDomain converts an InvestmentModel to a domain Investment.
func (m InvestmentMapper) ToDomain(e InvestmentModel) holding.Investment {
	return holding.ReconstructInvestment(
		e.ID,
		e.OwnerID, e.ExternalID, e.DatabaseID, e.Name,
		e.Quantity, e.PurchasePrice,
		e.PurchaseDate,
		e.AssetID, e.PlaceID,
		propertiesFromDB(e.Properties),
		e.CreatedAt, e.UpdatedAt, e.LastSyncedAt,
	)
}

// ToModel converts a domain Investment to an InvestmentModel.
func (m InvestmentMapper) ToModel(i holding.Investment) InvestmentModel {
	return InvestmentModel{
		ID:            i.ID(),
		OwnerID:       i.OwnerID(),
		ExternalID:    i.ExternalID(),
		DatabaseID:    i.DatabaseID(),
		Name:          i.Name(),
		Quantity:      i.Quantity(),
		PurchasePrice: i.PurchasePrice(),
		PurchaseDate:  i.PurchaseDate(),
		AssetID:       i.AssetID(),
		PlaceID:       i.PlaceID(),
		Properties:    propertiesToDB(i.Properties()),
		CreatedAt:     i.CreatedAt(),
		UpdatedAt:     i.UpdatedAt(),
		LastSyncedAt:  i.LastSyncedAt(),
	}
}

// DatabaseLinkMapper maps between domain DatabaseLink and DatabaseLinkModel.
type DatabaseLinkMapper struct{}

// ToDomain converts a DatabaseLinkModel to a domain DatabaseLink.
func (m DatabaseLinkMapper) ToDomain(e DatabaseLinkModel) holding.DatabaseLink {
	return holding.ReconstructDatabaseLink(
		e.ID, e.OwnerID, holding.Kind(e.Kind), e.DatabaseID, e.CreatedAt, e.UpdatedAt,
	)
}

// ToModel converts a domain DatabaseLink to a DatabaseLinkModel.
func (m DatabaseLinkMapper) ToModel(l holding.DatabaseLink) DatabaseLinkModel {
	return DatabaseLinkModel{
		ID:         l.ID(),
		OwnerID:    l.OwnerID(),
		Kind:       string(l.Kind()),
		DatabaseID: l.DatabaseID(),
		CreatedAt:  l.CreatedAt(),
		UpdatedAt:  l.UpdatedAt(),
	}
}

// entityResultJSON is the persisted form of one kind's sync outcome.
type entityResultJSON struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}

// SyncRunMapper maps between domain Run and persistence SyncRunModel.
type SyncRunMapper struct{}

// ToDomain converts a SyncRunModel to a domain Run.
func (m SyncRunMapper) ToDomain(e SyncRunModel) syncrun.Run {
	var persisted map[string]entityResultJSON
	_ = json.Unmarshal([]byte(e.Results), &persisted)

	results := make(syncrun.Result, len(persisted))
	for kind, r := range persisted {
		if r.Success {
			results[holding.Kind(kind)] = syncrun.Succeeded(r.Added, r.Removed, r.Total)
		} else {
			results[holding.Kind(kind)] = syncrun.Failed(r.Error)
		}
	}

	return syncrun.NewRun(e.ID, e.OwnerID, syncrun.Trigger(e.Trigger), results, e.StartedAt, e.FinishedAt)
}

// ToModel converts a domain Run to a SyncRunModel.
func (m SyncRunMapper) ToModel(r syncrun.Run) SyncRunModel {
	persisted := make(map[string]entityResultJSON, len(r.Results()))
	for kind, er := range r.Results() {
		persisted[string(kind)] = entityResultJSON{
			Success: er.Success(),
			Added:   er.Added(),
			Removed: er.Removed(),
			Total:   er.Total(),
			Error:   er.Err(),
		}
	}
	data, _ := json.Marshal(persisted)

	return SyncRunModel{
		ID:         r.ID(),
		OwnerID:    r.OwnerID(),
		Trigger:    string(r.Trigger()),
		Results:    string(data),
		StartedAt:  r.StartedAt(),
		FinishedAt: r.FinishedAt(),
	}
}

func propertiesToDB(properties map[string]any) string {
	if len(properties) == 0 {
		return ""
	}
	data, err := json.Marshal(properties)
	if err != nil {
		return ""
	}
	return string(data)
}

func propertiesFromDB(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var properties map[string]any
	if err := json.Unmarshal([]byte(raw), &properties); err != nil {
		return nil
	}
	return properties
}
