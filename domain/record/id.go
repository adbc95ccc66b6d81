package record

import "strings"

// NormalizeID strips separator punctuation from an external record id.
//
// The external service represents the same id in two textual forms, with and
// without dashes (e.g. "abc-123-def" and "abc123def"). The dashless form is
// the canonical comparison and storage key; every diff, lookup, and upsert
// must normalize through this function so the two forms compare equal.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
