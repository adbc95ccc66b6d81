// Package auth provides identity verification for interactive requests.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/nightowl-labs/homedash/domain/service"
)

// ErrNoIdentity is returned when a request carries no identity.
var ErrNoIdentity = errors.New("no verified identity")

// HeaderVerifier accepts identities asserted by a trusted reverse proxy.
// The deployment terminates authentication upstream and forwards the
// verified user id in a request header; the credential passed to Verify
// is that header value.
type HeaderVerifier struct{}

// NewHeaderVerifier creates a HeaderVerifier.
func NewHeaderVerifier() HeaderVerifier {
	return HeaderVerifier{}
}

// Verify returns the forwarded identity, or ErrNoIdentity when absent.
func (HeaderVerifier) Verify(_ context.Context, credential string) (string, error) {
	id := strings.TrimSpace(credential)
	if id == "" {
		return "", ErrNoIdentity
	}
	return id, nil
}

var _ service.IdentityVerifier = HeaderVerifier{}

// StaticVerifier maps fixed credentials to owner ids. It backs tests and
// single-user deployments where a bearer token doubles as identity.
type StaticVerifier struct {
	identities map[string]string
}

// NewStaticVerifier creates a StaticVerifier from credential to owner id
// pairs.
func NewStaticVerifier(identities map[string]string) StaticVerifier {
	copied := make(map[string]string, len(identities))
	for credential, owner := range identities {
		copied[credential] = owner
	}
	return StaticVerifier{identities: copied}
}

// Verify looks up the credential, or returns ErrNoIdentity.
func (v StaticVerifier) Verify(_ context.Context, credential string) (string, error) {
	owner, ok := v.identities[strings.TrimSpace(credential)]
	if !ok {
		return "", ErrNoIdentity
	}
	return owner, nil
}

var _ service.IdentityVerifier = StaticVerifier{}
