package record

// Diff is the result of comparing the current external dataset against the
// previously stored external ids for the same owner and database.
type Diff struct {
	added   []Record
	removed []string
}

// Added returns the external records not yet present in the store.
func (d Diff) Added() []Record { return d.added }

// Removed returns the normalized stored ids absent from the current fetch.
// The corresponding rows must be deleted to uphold deletion completeness.
func (d Diff) Removed() []string { return d.removed }

// AddedCount returns the number of added records.
func (d Diff) AddedCount() int { return len(d.added) }

// RemovedCount returns the number of removed ids.
func (d Diff) RemovedCount() int { return len(d.removed) }

// Compare diffs the full external record set against the stored external ids.
// Both sides are compared through NormalizeID, so ids stored with or without
// dashes are treated as the same record. The diff is informational for the
// run summary; reconciliation itself upserts the full current set and deletes
// Removed unconditionally.
func Compare(external []Record, storedIDs []string) Diff {
	current := make(map[string]struct{}, len(external))
	for _, rec := range external {
		current[rec.NormalizedID()] = struct{}{}
	}

	stored := make(map[string]struct{}, len(storedIDs))
	for _, id := range storedIDs {
		stored[NormalizeID(id)] = struct{}{}
	}

	var diff Diff
	for _, rec := range external {
		if _, ok := stored[rec.NormalizedID()]; !ok {
			diff.added = append(diff.added, rec)
		}
	}
	for _, id := range storedIDs {
		normalized := NormalizeID(id)
		if _, ok := current[normalized]; !ok {
			diff.removed = append(diff.removed, normalized)
		}
	}
	return diff
}
