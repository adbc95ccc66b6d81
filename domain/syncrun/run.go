package syncrun

import (
	"context"
	"time"

	"github.com/nightowl-labs/homedash/domain/holding"
)

// Trigger identifies what started a sync run.
type Trigger string

// Trigger values.
const (
	TriggerAPI     Trigger = "api"
	TriggerWebhook Trigger = "webhook"
	TriggerCLI     Trigger = "cli"
)

// Run is one completed sync invocation, persisted for the history endpoint.
type Run struct {
	id         string
	ownerID    string
	trigger    Trigger
	results    Result
	startedAt  time.Time
	finishedAt time.Time
}

// NewRun creates a Run. id is caller-generated (a uuid).
func NewRun(id, ownerID string, trigger Trigger, results Result, startedAt, finishedAt time.Time) Run {
	return Run{
		id:         id,
		ownerID:    ownerID,
		trigger:    trigger,
		results:    results,
		startedAt:  startedAt,
		finishedAt: finishedAt,
	}
}

// ID returns the run id.
func (r Run) ID() string { return r.id }

// OwnerID returns the owner the run synced for.
func (r Run) OwnerID() string { return r.ownerID }

// Trigger returns what started the run.
func (r Run) Trigger() Trigger { return r.trigger }

// Results returns the per-kind outcomes.
func (r Run) Results() Result { return r.results }

// StartedAt returns when the run began.
func (r Run) StartedAt() time.Time { return r.startedAt }

// FinishedAt returns when the run completed.
func (r Run) FinishedAt() time.Time { return r.finishedAt }

// Store persists run history.
type Store interface {
	Save(ctx context.Context, run Run) (Run, error)
	Find(ctx context.Context, options ...holding.Option) ([]Run, error)
}
