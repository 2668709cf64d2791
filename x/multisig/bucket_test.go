package multisig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/custostest"
	"github.com/safenet-dev/custos/errors"
	"github.com/safenet-dev/custos/store"
)

func TestConfigBucket(t *testing.T) {
	db := store.MemStore()
	bucket := NewConfigBucket()

	exists, err := bucket.Exists(db)
	require.NoError(t, err)
	assert.False(t, exists)

	// Loading before initialization is an authorization failure, not a
	// lookup failure.
	_, err = bucket.Load(db)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	conf := &MultisigConfig{
		Owners:            []custos.Address{custostest.SeqAddress("a"), custostest.SeqAddress("b")},
		RequiredApprovals: 2,
		TransactionCount:  7,
	}
	require.NoError(t, bucket.Save(db, conf))

	exists, err = bucket.Exists(db)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := bucket.Load(db)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}

func TestTransactionBucket(t *testing.T) {
	db := store.MemStore()
	bucket := NewTransactionBucket()

	_, err := bucket.Get(db, 1)
	assert.True(t, errors.ErrNotFound.Is(err))

	tx := &Transaction{
		To:        custostest.SeqAddress("to"),
		Amount:    500,
		Token:     custostest.SeqAddress("token"),
		Data:      make([]byte, DataSize),
		Approvals: 1,
		Submitter: custostest.SeqAddress("submitter"),
	}
	require.NoError(t, bucket.Save(db, 1, tx))

	loaded, err := bucket.Get(db, 1)
	require.NoError(t, err)
	assert.Equal(t, tx, loaded)

	// Neighbouring ids stay independent.
	_, err = bucket.Get(db, 2)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestApprovalBucket(t *testing.T) {
	db := store.MemStore()
	bucket := NewApprovalBucket()

	// A list that was never written reads as empty.
	list, err := bucket.Get(db, 1)
	require.NoError(t, err)
	assert.Empty(t, list.Addresses)

	a := custostest.SeqAddress("a")
	b := custostest.SeqAddress("b")
	require.NoError(t, bucket.Save(db, 1, &ApprovalList{Addresses: []custos.Address{a, b}}))

	loaded, err := bucket.Get(db, 1)
	require.NoError(t, err)
	require.Len(t, loaded.Addresses, 2)
	assert.True(t, loaded.Addresses[0].Equals(a))
	assert.True(t, loaded.Addresses[1].Equals(b))
}

func TestRecordKeysDoNotCollide(t *testing.T) {
	seen := map[string]bool{
		configKey: true,
	}
	for _, id := range []uint64{0, 1, 2, 255, 256, 1 << 40} {
		for _, key := range [][]byte{txKey(id), approvalKey(id)} {
			assert.False(t, seen[string(key)], "key collision: %q", key)
			seen[string(key)] = true
		}
	}
}
