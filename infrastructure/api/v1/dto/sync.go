package dto

import (
	"time"

	"github.com/nightowl-labs/homedash/domain/syncrun"
)

// SyncRequest is the body of a webhook-triggered sync. UserID names the
// owner to sync on behalf of; DBType optionally restricts the run to one
// entity kind.
type SyncRequest struct {
	UserID string `json:"userId"`
	DBType string `json:"dbType"`
}

// EntityResultResponse reports the outcome for one entity kind.
type EntityResultResponse struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Total   int    `json:"total"`
	Error   string `json:"error,omitempty"`
}

// SyncResponse reports a completed sync run. Success acknowledges that the
// authorized request ran to completion; per-kind outcomes, including
// failures, are reported inside Results.
type SyncResponse struct {
	Success    bool                            `json:"success"`
	RunID      string                          `json:"runId"`
	Trigger    string                          `json:"trigger"`
	Results    map[string]EntityResultResponse `json:"results"`
	StartedAt  time.Time                       `json:"startedAt"`
	FinishedAt time.Time                       `json:"finishedAt"`
}

// NewSyncResponse maps a sync run to its response shape.
func NewSyncResponse(run syncrun.Run) SyncResponse {
	results := make(map[string]EntityResultResponse, len(run.Results()))
	for kind, result := range run.Results() {
		results[kind.String()] = EntityResultResponse{
			Success: result.Success(),
			Added:   result.Added(),
			Removed: result.Removed(),
			Total:   result.Total(),
			Error:   result.Err(),
		}
	}
	return SyncResponse{
		Success:    true,
		RunID:      run.ID(),
		Trigger:    string(run.Trigger()),
		Results:    results,
		StartedAt:  run.StartedAt(),
		FinishedAt: run.FinishedAt(),
	}
}

// RunResponse represents one historical sync run.
type RunResponse struct {
	ID         string                          `json:"id"`
	Trigger    string                          `json:"trigger"`
	Results    map[string]EntityResultResponse `json:"results"`
	StartedAt  time.Time                       `json:"startedAt"`
	FinishedAt time.Time                       `json:"finishedAt"`
}

// NewRunResponse maps a sync run to its history shape.
func NewRunResponse(run syncrun.Run) RunResponse {
	sync := NewSyncResponse(run)
	return RunResponse{
		ID:         sync.RunID,
		Trigger:    sync.Trigger,
		Results:    sync.Results,
		StartedAt:  sync.StartedAt,
		FinishedAt: sync.FinishedAt,
	}
}
