package multisig

import (
	"context"
	"math"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/errors"
)

// TokenMover is the external transfer primitive. Moving funds between
// accounts is delegated to it and only a success/failure fact comes back. A
// failure is ordinary, not fatal: the engine rolls its own state back and the
// execution stays retryable.
type TokenMover interface {
	MoveCoins(db custos.KVStore, token, src, dest custos.Address, amount int64) error
}

// CustodyCondition derives the condition of the account that holds the funds
// under management. The address is deterministic, so it can be funded before
// the configuration exists.
func CustodyCondition(label string) custos.Condition {
	return custos.NewCondition("multisig", "custody", []byte(label))
}

// Engine implements the transaction lifecycle:
//
//	Proposed -> Approved(k) -> Executable -> Executed
//
// Executed is terminal. A failed transfer reverts Executable -> Executable,
// never to a dead end. Every operation takes the caller as an explicit
// parameter, checks it against the Authenticator and the owner set before
// touching state, and runs to completion as one indivisible unit (the host
// serializes calls against one store).
type Engine struct {
	auth      custos.Authenticator
	mover     TokenMover
	events    Emitter
	custody   custos.Address
	config    ConfigBucket
	txs       TransactionBucket
	approvals ApprovalBucket
}

// NewEngine wires an engine with its collaborators. The events emitter may
// be nil, in which case notifications are dropped. The custody label selects
// the account funds are released from, empty means "global".
func NewEngine(auth custos.Authenticator, mover TokenMover, events Emitter, custodyLabel string) Engine {
	if custodyLabel == "" {
		custodyLabel = "global"
	}
	return Engine{
		auth:      auth,
		mover:     mover,
		events:    events,
		custody:   CustodyCondition(custodyLabel).Address(),
		config:    NewConfigBucket(),
		txs:       NewTransactionBucket(),
		approvals: NewApprovalBucket(),
	}
}

// CustodyAddress returns the address funds are released from on execution.
func (e Engine) CustodyAddress() custos.Address {
	return e.custody
}

// Initialize persists the owner set and threshold. It can succeed exactly
// once; any further call fails with ErrAlreadyInitialized no matter the
// arguments.
func (e Engine) Initialize(db custos.KVStore, owners []custos.Address, requiredApprovals uint32) error {
	switch exists, err := e.config.Exists(db); {
	case err != nil:
		return errors.Wrap(err, "config existence")
	case exists:
		return errors.Wrap(errors.ErrAlreadyInitialized, "config exists")
	}

	conf := &MultisigConfig{
		Owners:            owners,
		RequiredApprovals: requiredApprovals,
		TransactionCount:  0,
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	if err := e.config.Save(db, conf); err != nil {
		return err
	}

	e.emit(Event{
		Type:      EventInitialized,
		Owners:    len(owners),
		Threshold: requiredApprovals,
	})
	return nil
}

// SubmitTransaction proposes a transfer of amount of token to the given
// destination and returns the 1-based id of the new transaction. The
// submitter approves implicitly, so the proposal starts with one approval.
//
// The bumped counter is persisted before the transaction record: after a
// crash in between, a skipped id is recoverable while a record without a
// counter is not.
func (e Engine) SubmitTransaction(ctx context.Context, db custos.KVStore, caller, to custos.Address, amount int64, token custos.Address, data []byte) (uint64, error) {
	conf, err := e.authorize(ctx, db, caller)
	if err != nil {
		return 0, err
	}

	tx := &Transaction{
		To:        to,
		Amount:    amount,
		Token:     token,
		Data:      data,
		Executed:  false,
		Approvals: 1,
		Submitter: caller,
	}
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	newID, err := nextID(conf.TransactionCount)
	if err != nil {
		return 0, err
	}

	conf.TransactionCount = newID
	if err := e.config.Save(db, conf); err != nil {
		return 0, err
	}
	if err := e.txs.Save(db, newID, tx); err != nil {
		return 0, err
	}
	list := &ApprovalList{Addresses: []custos.Address{caller}}
	if err := e.approvals.Save(db, newID, list); err != nil {
		return 0, err
	}

	e.emit(Event{
		Type:      EventSubmitted,
		TxID:      newID,
		Caller:    caller,
		To:        to,
		Token:     token,
		Amount:    amount,
		Approvals: 1,
	})
	return newID, nil
}

// ApproveTransaction records one distinct owner approval on a pending
// transaction. Approving twice fails with ErrAlreadyApproved and leaves the
// count untouched.
func (e Engine) ApproveTransaction(ctx context.Context, db custos.KVStore, caller custos.Address, id uint64) error {
	if _, err := e.authorize(ctx, db, caller); err != nil {
		return err
	}

	tx, err := e.txs.Get(db, id)
	if err != nil {
		return err
	}
	if tx.Executed {
		return errors.Wrapf(errors.ErrExecuted, "transaction %d", id)
	}

	list, err := e.approvals.Get(db, id)
	if err != nil {
		return err
	}
	if list.Contains(caller) {
		return errors.Wrapf(errors.ErrAlreadyApproved, "%s on transaction %d", caller, id)
	}

	// Unreachable while the owner set bounds the approval count, but a
	// silent wrap must never be an option.
	newCount, err := incApprovals(tx.Approvals)
	if err != nil {
		return err
	}

	tx.Approvals = newCount
	if err := e.txs.Save(db, id, tx); err != nil {
		return err
	}
	list.Addresses = append(list.Addresses, caller)
	if err := e.approvals.Save(db, id, list); err != nil {
		return err
	}

	e.emit(Event{
		Type:      EventApproved,
		TxID:      id,
		Caller:    caller,
		Approvals: newCount,
	})
	return nil
}

// ExecuteTransaction releases a transfer once the approval count reached the
// configured threshold.
//
// The executed flag is persisted before the token mover is invoked. A
// reentrant execute call triggered from within the transfer sees the flag
// already set and is rejected with ErrExecuted, so funds can never be
// released twice. If the transfer fails the flag is rolled back and the call
// fails with ErrTransferFailed, keeping the transaction executable for a
// retry.
func (e Engine) ExecuteTransaction(ctx context.Context, db custos.KVStore, caller custos.Address, id uint64) error {
	conf, err := e.authorize(ctx, db, caller)
	if err != nil {
		return err
	}

	tx, err := e.txs.Get(db, id)
	if err != nil {
		return err
	}
	if tx.Executed {
		return errors.Wrapf(errors.ErrExecuted, "transaction %d", id)
	}
	if tx.Approvals < conf.RequiredApprovals {
		return errors.Wrapf(errors.ErrInsufficientApprovals,
			"%d of %d", tx.Approvals, conf.RequiredApprovals)
	}

	tx.Executed = true
	if err := e.txs.Save(db, id, tx); err != nil {
		return err
	}

	if err := e.mover.MoveCoins(db, tx.Token, e.custody, tx.To, tx.Amount); err != nil {
		tx.Executed = false
		if rerr := e.txs.Save(db, id, tx); rerr != nil {
			return errors.Wrapf(rerr, "rollback of transaction %d", id)
		}
		return errors.Wrapf(errors.ErrTransferFailed, "transaction %d: %s", id, err)
	}

	e.emit(Event{
		Type:   EventExecuted,
		TxID:   id,
		Caller: caller,
		To:     tx.To,
		Token:  tx.Token,
		Amount: tx.Amount,
	})
	return nil
}

// UpdateThreshold sets a new execution quorum. The owner set itself is
// immutable, only the threshold moves, within 1 <= t <= len(owners).
func (e Engine) UpdateThreshold(ctx context.Context, db custos.KVStore, caller custos.Address, threshold uint32) error {
	conf, err := e.authorize(ctx, db, caller)
	if err != nil {
		return err
	}
	if err := validateThreshold(threshold, len(conf.Owners)); err != nil {
		return err
	}

	conf.RequiredApprovals = threshold
	if err := e.config.Save(db, conf); err != nil {
		return err
	}

	e.emit(Event{
		Type:      EventThresholdUpdated,
		Caller:    caller,
		Owners:    len(conf.Owners),
		Threshold: threshold,
	})
	return nil
}

// authorize runs the shared pre-processing of every owner gated operation:
// the caller must have authenticated and must be a member of the owner set.
// Both failures surface as ErrUnauthorized, a non-owner learns nothing else.
func (e Engine) authorize(ctx context.Context, db custos.ReadOnlyKVStore, caller custos.Address) (*MultisigConfig, error) {
	if !e.auth.HasAddress(ctx, caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller not authenticated")
	}
	conf, err := e.config.Load(db)
	if err != nil {
		return nil, err
	}
	if !conf.IsOwner(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	return conf, nil
}

func (e Engine) emit(ev Event) {
	if e.events != nil {
		e.events.Emit(ev)
	}
}

// nextID returns the incremented transaction counter. It never wraps
// silently.
func nextID(count uint64) (uint64, error) {
	if count == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "transaction counter exhausted")
	}
	return count + 1, nil
}

// incApprovals returns the incremented approval counter. It never wraps
// silently.
func incApprovals(count uint32) (uint32, error) {
	if count == math.MaxUint32 {
		return 0, errors.Wrap(errors.ErrOverflow, "approval counter exhausted")
	}
	return count + 1, nil
}
