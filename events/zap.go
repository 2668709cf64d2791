package events

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safenet-dev/custos/x/multisig"
)

// ZapSink renders lifecycle events as structured log entries. Every entry
// carries a fresh uuid, so downstream consumers can deduplicate in
// at-least-once setups.
type ZapSink struct {
	logger *zap.Logger
}

var _ multisig.Emitter = (*ZapSink)(nil)

// NewZapSink returns a sink logging through the given logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Emit(ev multisig.Event) {
	fields := make([]zap.Field, 0, 10)
	fields = append(fields,
		zap.String("event_id", uuid.NewString()),
		zap.String("type", string(ev.Type)),
	)
	if ev.TxID != 0 {
		fields = append(fields, zap.Uint64("tx_id", ev.TxID))
	}
	if ev.Caller != nil {
		fields = append(fields, zap.Stringer("caller", ev.Caller))
	}
	if ev.To != nil {
		fields = append(fields,
			zap.Stringer("to", ev.To),
			zap.Stringer("token", ev.Token),
			zap.Int64("amount", ev.Amount),
		)
	}
	if ev.Approvals != 0 {
		fields = append(fields, zap.Uint32("approvals", ev.Approvals))
	}
	if ev.Owners != 0 {
		fields = append(fields,
			zap.Int("owners", ev.Owners),
			zap.Uint32("threshold", ev.Threshold),
		)
	}
	s.logger.Info("multisig event", fields...)
}
