package events

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/safenet-dev/custos/x/multisig"
)

// Instrumented counts emitted events by type before handing them to the next
// sink. Use it to expose submission/approval/execution rates without
// touching the engine.
type Instrumented struct {
	next    multisig.Emitter
	emitted *prometheus.CounterVec
}

var _ multisig.Emitter = (*Instrumented)(nil)

// NewInstrumented registers the event counter with the given registerer and
// returns the decorating sink. next may be nil to only count.
func NewInstrumented(next multisig.Emitter, reg prometheus.Registerer) *Instrumented {
	emitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "custos",
		Subsystem: "multisig",
		Name:      "events_total",
		Help:      "Number of lifecycle events emitted by the custody engine.",
	}, []string{"type"})
	reg.MustRegister(emitted)
	return &Instrumented{
		next:    next,
		emitted: emitted,
	}
}

func (i *Instrumented) Emit(ev multisig.Event) {
	i.emitted.WithLabelValues(string(ev.Type)).Inc()
	if i.next != nil {
		i.next.Emit(ev)
	}
}
