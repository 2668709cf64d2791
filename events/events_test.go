package events

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/safenet-dev/custos/custostest"
	"github.com/safenet-dev/custos/x/multisig"
)

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.Emit(multisig.Event{Type: multisig.EventSubmitted, TxID: 1})
	rec.Emit(multisig.Event{Type: multisig.EventApproved, TxID: 1})
	rec.Emit(multisig.Event{Type: multisig.EventApproved, TxID: 2})

	require.Len(t, rec.Events, 3)
	assert.Len(t, rec.OfType(multisig.EventApproved), 2)
	assert.Len(t, rec.OfType(multisig.EventExecuted), 0)
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewZapSink(zap.New(core))

	sink.Emit(multisig.Event{
		Type:      multisig.EventExecuted,
		TxID:      7,
		Caller:    custostest.SeqAddress("a"),
		To:        custostest.SeqAddress("b"),
		Token:     custostest.SeqAddress("tok"),
		Amount:    100,
		Approvals: 2,
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	got := entries[0].ContextMap()
	assert.Equal(t, "executed", got["type"])
	assert.Equal(t, uint64(7), got["tx_id"])
	assert.Equal(t, int64(100), got["amount"])
	assert.NotEmpty(t, got["event_id"])

	// Each entry gets its own event id.
	sink.Emit(multisig.Event{Type: multisig.EventApproved, TxID: 7, Approvals: 3})
	entries = logs.All()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ContextMap()["event_id"], entries[1].ContextMap()["event_id"])
}

func TestInstrumented(t *testing.T) {
	reg := prometheus.NewRegistry()
	var rec Recorder
	sink := NewInstrumented(&rec, reg)

	sink.Emit(multisig.Event{Type: multisig.EventSubmitted, TxID: 1})
	sink.Emit(multisig.Event{Type: multisig.EventApproved, TxID: 1})
	sink.Emit(multisig.Event{Type: multisig.EventApproved, TxID: 1})

	// Events pass through to the wrapped sink.
	require.Len(t, rec.Events, 3)

	count := testutil.ToFloat64(sink.emitted.WithLabelValues("approved"))
	assert.Equal(t, float64(2), count)
	count = testutil.ToFloat64(sink.emitted.WithLabelValues("submitted"))
	assert.Equal(t, float64(1), count)
}
