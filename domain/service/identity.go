package service

import "context"

// IdentityVerifier abstracts the external authentication collaborator. It
// turns the credential material attached to an interactive request into an
// opaque verified owner identifier.
type IdentityVerifier interface {
	// Verify returns the owner id for the given credential, or an error
	// when the credential is missing or invalid.
	Verify(ctx context.Context, credential string) (string, error)
}
