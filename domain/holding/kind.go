// Package holding models the mirrored dashboard entities (assets, places,
// and investments) together with their store interfaces and query options.
package holding

import "fmt"

// Kind identifies one mirrored entity kind and its target table.
type Kind string

// Entity kinds.
const (
	KindAsset      Kind = "asset"
	KindPlace      Kind = "place"
	KindInvestment Kind = "investment"
)

// SyncOrder lists all kinds in dependency order. Investments reference
// assets and places by internal primary key, so both referenced kinds must
// be fully committed before investment relation resolution runs.
func SyncOrder() []Kind {
	return []Kind{KindAsset, KindPlace, KindInvestment}
}

// ParseKind validates a kind received from a webhook or CLI flag.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAsset, KindPlace, KindInvestment:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown entity kind %q", s)
	}
}

// HasIcon reports whether records of this kind carry a mirrored icon.
func (k Kind) HasIcon() bool {
	return k == KindAsset || k == KindPlace
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }
