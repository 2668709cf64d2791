package custos

import "context"

// Authenticator verifies that a caller truly controls a claimed identity.
//
// How identities are proven (signatures, sessions, host-provided facts) is
// outside of the engine. The engine only consumes the resulting boolean:
// either the given address authenticated the current call or it did not.
// Every operation takes the caller identity as an explicit parameter and
// checks it against the Authenticator before touching any state.
type Authenticator interface {
	// HasAddress returns true iff the given address authenticated the
	// call described by ctx.
	HasAddress(ctx context.Context, addr Address) bool
}
