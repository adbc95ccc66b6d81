package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/infrastructure/api"
)

// SyncSecretHeader carries the shared secret on webhook sync requests.
const SyncSecretHeader = "X-Sync-Secret"

type contextKey string

const ownerKey contextKey = "owner_id"

// SecretMatches reports whether the candidate equals one of the configured
// secrets. Every configured secret is compared in constant time, so the
// comparison count does not reveal which secret matched.
func SecretMatches(secrets []string, candidate string) bool {
	if candidate == "" {
		return false
	}
	matched := false
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1 {
			matched = true
		}
	}
	return matched
}

// WithOwner returns a context carrying the verified owner id.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey, ownerID)
}

// OwnerID returns the verified owner id from the context, or "".
func OwnerID(ctx context.Context) string {
	id, _ := ctx.Value(ownerKey).(string)
	return id
}

// RequireIdentity returns middleware that verifies the identity header and
// stores the owner id in the request context. Requests without a verified
// identity are rejected with 401.
func RequireIdentity(verifier service.IdentityVerifier, header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, err := verifier.Verify(r.Context(), r.Header.Get(header))
			if err != nil {
				api.WriteError(w, r, api.NewAuthenticationError("no verified identity"), nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}
