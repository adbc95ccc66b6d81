// Package syncrun models the outcome of one sync invocation: per-kind
// results, the aggregate, and the persisted run history.
package syncrun

import "github.com/nightowl-labs/homedash/domain/holding"

// EntityResult is the outcome of one entity kind's sync machine.
type EntityResult struct {
	success bool
	added   int
	removed int
	total   int
	err     string
}

// Succeeded creates a successful EntityResult with its counts.
func Succeeded(added, removed, total int) EntityResult {
	return EntityResult{success: true, added: added, removed: removed, total: total}
}

// Failed creates a failed EntityResult carrying the error message.
func Failed(message string) EntityResult {
	return EntityResult{success: false, err: message}
}

// Success reports whether the kind synced completely.
func (r EntityResult) Success() bool { return r.success }

// Added returns the count of records new in this run.
func (r EntityResult) Added() int { return r.added }

// Removed returns the count of records deleted in this run.
func (r EntityResult) Removed() int { return r.removed }

// Total returns the full current record count for the kind.
func (r EntityResult) Total() int { return r.total }

// Err returns the failure message, or "".
func (r EntityResult) Err() string { return r.err }

// Result aggregates per-kind outcomes for one invocation. A kind absent
// from the map was not requested.
type Result map[holding.Kind]EntityResult

// AllFailed reports whether every requested kind failed.
func (r Result) AllFailed() bool {
	if len(r) == 0 {
		return false
	}
	for _, er := range r {
		if er.Success() {
			return false
		}
	}
	return true
}
