package multisig

import "github.com/safenet-dev/custos"

// EventType names a lifecycle notification.
type EventType string

const (
	EventInitialized      EventType = "initialized"
	EventSubmitted        EventType = "submitted"
	EventApproved         EventType = "approved"
	EventExecuted         EventType = "executed"
	EventThresholdUpdated EventType = "threshold_updated"
)

// Event is a notification about a completed state transition. Events are a
// side channel for observers and are never read back by the engine. They are
// emitted only after all writes of an operation succeeded.
type Event struct {
	Type EventType

	// TxID is set for all transaction scoped events, zero otherwise.
	TxID uint64

	// Caller is the identity that triggered the transition. Unset for
	// initialization, which has no caller.
	Caller custos.Address

	// Transfer details, set on submission and execution.
	To     custos.Address
	Token  custos.Address
	Amount int64

	// Approvals is the approval count after the transition, set on
	// submission and approval.
	Approvals uint32

	// Configuration details, set on initialization and threshold update.
	Owners    int
	Threshold uint32
}

// Emitter receives lifecycle events. Implementations must be fire-and-forget
// and must not fail the calling operation; at-least-once delivery is
// acceptable.
type Emitter interface {
	Emit(Event)
}
