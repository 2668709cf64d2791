// Package events provides ready-made sinks for the engine's lifecycle
// notifications: structured logging, metrics instrumentation and a recorder
// for tests. All sinks are fire-and-forget, an emitted event can never fail
// the operation that produced it.
package events

import (
	"github.com/safenet-dev/custos/x/multisig"
)

// Discard drops every event.
type Discard struct{}

var _ multisig.Emitter = Discard{}

func (Discard) Emit(multisig.Event) {}

// Recorder collects every emitted event, for inspection in tests.
type Recorder struct {
	Events []multisig.Event
}

var _ multisig.Emitter = (*Recorder)(nil)

func (r *Recorder) Emit(ev multisig.Event) {
	r.Events = append(r.Events, ev)
}

// OfType returns all recorded events of the given type, in emission order.
func (r *Recorder) OfType(t multisig.EventType) []multisig.Event {
	var out []multisig.Event
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
