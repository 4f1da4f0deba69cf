// Package admin holds the operator-facing endpoints. They sit behind a
// shared static password supplied via header; the verification capability
// is injected so the ledger never stores the admin credential itself.
package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// adminVerifier checks the admin gate credential.
type adminVerifier interface {
	VerifyAdmin(candidate string) bool
}

func requireAdmin(verifier adminVerifier, password string) error {
	if !verifier.VerifyAdmin(password) {
		return huma.NewError(http.StatusUnauthorized, "unauthorized")
	}
	return nil
}
