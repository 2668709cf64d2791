package multisig

import (
	"encoding/binary"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/errors"
)

// Storage keys follow the bucket convention: a fixed prefix per record kind,
// with the transaction id as the key component where one applies.
const (
	configKey      = "multisig:config"
	txPrefix       = "multisig:tx:"
	approvalPrefix = "multisig:approvals:"
)

func txKey(id uint64) []byte {
	return seqKey(txPrefix, id)
}

func approvalKey(id uint64) []byte {
	return seqKey(approvalPrefix, id)
}

func seqKey(prefix string, id uint64) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], id)
	return key
}

// ConfigBucket gives typed access to the singleton custody configuration.
type ConfigBucket struct{}

// NewConfigBucket returns a bucket for the configuration record.
func NewConfigBucket() ConfigBucket {
	return ConfigBucket{}
}

// Exists returns true if a configuration was persisted before.
func (ConfigBucket) Exists(db custos.ReadOnlyKVStore) (bool, error) {
	return db.Has([]byte(configKey))
}

// Load returns the configuration. A missing configuration means there is
// nothing to authorize against, so it surfaces as unauthorized rather than a
// distinct not-initialized error.
func (ConfigBucket) Load(db custos.ReadOnlyKVStore) (*MultisigConfig, error) {
	raw, err := db.Get([]byte(configKey))
	if err != nil {
		return nil, errors.Wrap(err, "config lookup")
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not initialized")
	}
	var conf MultisigConfig
	if err := conf.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal config")
	}
	return &conf, nil
}

// Save persists the configuration record.
func (ConfigBucket) Save(db custos.KVStore, conf *MultisigConfig) error {
	raw, err := conf.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal config")
	}
	return db.Set([]byte(configKey), raw)
}

// TransactionBucket gives typed access to transaction records, keyed by their
// 1-based id.
type TransactionBucket struct{}

// NewTransactionBucket returns a bucket for transaction records.
func NewTransactionBucket() TransactionBucket {
	return TransactionBucket{}
}

// Get returns the transaction with the given id.
func (TransactionBucket) Get(db custos.ReadOnlyKVStore, id uint64) (*Transaction, error) {
	raw, err := db.Get(txKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "transaction lookup")
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "transaction %d", id)
	}
	var tx Transaction
	if err := tx.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal transaction %d", id)
	}
	return &tx, nil
}

// Save persists the transaction record under the given id.
func (TransactionBucket) Save(db custos.KVStore, id uint64, tx *Transaction) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal transaction %d", id)
	}
	return db.Set(txKey(id), raw)
}

// ApprovalBucket gives typed access to the per-transaction approval lists.
type ApprovalBucket struct{}

// NewApprovalBucket returns a bucket for approval lists.
func NewApprovalBucket() ApprovalBucket {
	return ApprovalBucket{}
}

// Get returns the approval list of the given transaction id. A missing
// record is an empty list, not an error.
func (ApprovalBucket) Get(db custos.ReadOnlyKVStore, id uint64) (*ApprovalList, error) {
	raw, err := db.Get(approvalKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "approvals lookup")
	}
	var list ApprovalList
	if raw == nil {
		return &list, nil
	}
	if err := list.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal approvals %d", id)
	}
	return &list, nil
}

// Save persists the approval list under the given transaction id.
func (ApprovalBucket) Save(db custos.KVStore, id uint64, list *ApprovalList) error {
	raw, err := list.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal approvals %d", id)
	}
	return db.Set(approvalKey(id), raw)
}
