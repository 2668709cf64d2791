package custostest

import (
	"context"

	"github.com/safenet-dev/custos"
)

// Auth is a mock implementing the custos.Authenticator interface.
//
// This structure authenticates any of the referenced addresses. You can use
// either Signer or Signers (or both) attributes. This is for convenience and
// each time all signers (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication for a single
	// signer.
	Signer custos.Address

	// Signers represents an authentication of multiple signers.
	Signers []custos.Address
}

var _ custos.Authenticator = (*Auth)(nil)

func (a *Auth) HasAddress(ctx context.Context, addr custos.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// NobodyAuth is a custos.Authenticator that rejects every address.
type NobodyAuth struct{}

var _ custos.Authenticator = NobodyAuth{}

func (NobodyAuth) HasAddress(context.Context, custos.Address) bool {
	return false
}
