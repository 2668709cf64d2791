package multisig

import (
	"context"

	"github.com/safenet-dev/custos"
)

// Read-only projections over the configuration and the transaction registry.
// Repeated calls are pure reads with no state change. The transaction scoped
// queries apply the same owner gate as the mutating operations; IsOwner is
// deliberately open to external observers.

// GetTransaction returns the transaction with the given id.
func (e Engine) GetTransaction(ctx context.Context, db custos.ReadOnlyKVStore, caller custos.Address, id uint64) (*Transaction, error) {
	if _, err := e.authorize(ctx, db, caller); err != nil {
		return nil, err
	}
	return e.txs.Get(db, id)
}

// GetApprovals returns the identities that approved the transaction with the
// given id, in approval order.
func (e Engine) GetApprovals(ctx context.Context, db custos.ReadOnlyKVStore, caller custos.Address, id uint64) ([]custos.Address, error) {
	if _, err := e.authorize(ctx, db, caller); err != nil {
		return nil, err
	}
	// An unknown id is an error, an empty list is not.
	if _, err := e.txs.Get(db, id); err != nil {
		return nil, err
	}
	list, err := e.approvals.Get(db, id)
	if err != nil {
		return nil, err
	}
	return list.Addresses, nil
}

// IsOwner returns true if the given address is a member of the owner set. No
// authentication required.
func (e Engine) IsOwner(db custos.ReadOnlyKVStore, addr custos.Address) (bool, error) {
	conf, err := e.config.Load(db)
	if err != nil {
		return false, err
	}
	return conf.IsOwner(addr), nil
}

// OwnerCount returns the size of the owner set.
func (e Engine) OwnerCount(db custos.ReadOnlyKVStore) (int, error) {
	conf, err := e.config.Load(db)
	if err != nil {
		return 0, err
	}
	return len(conf.Owners), nil
}

// Threshold returns the number of approvals that gate execution.
func (e Engine) Threshold(db custos.ReadOnlyKVStore) (uint32, error) {
	conf, err := e.config.Load(db)
	if err != nil {
		return 0, err
	}
	return conf.RequiredApprovals, nil
}

// TransactionCount returns the id of the most recently submitted
// transaction, zero right after initialization.
func (e Engine) TransactionCount(db custos.ReadOnlyKVStore) (uint64, error) {
	conf, err := e.config.Load(db)
	if err != nil {
		return 0, err
	}
	return conf.TransactionCount, nil
}
