package cash

import (
	"encoding/binary"
	"math"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/errors"
)

// ErrInsufficientFunds is returned when an account does not hold enough of a
// token to cover a transfer.
var ErrInsufficientFunds = errors.Register(1020, "insufficient funds")

const balancePrefix = "cash:"

// balanceKey addresses the holdings of one account in one token.
func balanceKey(account, token custos.Address) []byte {
	key := make([]byte, 0, len(balancePrefix)+len(account)+len(token))
	key = append(key, balancePrefix...)
	key = append(key, account...)
	key = append(key, token...)
	return key
}

// Ledger keeps integer token balances per (account, token) pair and moves
// value between accounts. It satisfies the engine's TokenMover interface and
// performs all checks before any write, so a failed transfer leaves both
// accounts untouched.
type Ledger struct{}

// NewLedger returns an empty ledger view over whatever store it is used
// with.
func NewLedger() Ledger {
	return Ledger{}
}

// Balance returns how much of a token the account holds. A missing record is
// a zero balance.
func (Ledger) Balance(db custos.ReadOnlyKVStore, account, token custos.Address) (int64, error) {
	raw, err := db.Get(balanceKey(account, token))
	if err != nil {
		return 0, errors.Wrap(err, "balance lookup")
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.ErrState.Newf("malformed balance record: %d bytes", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

// Deposit adds the given amount of token to the account. Fails on a
// non-positive amount or if the account balance would overflow.
func (l Ledger) Deposit(db custos.KVStore, account, token custos.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "deposit %d", amount)
	}
	cur, err := l.Balance(db, account, token)
	if err != nil {
		return err
	}
	if amount > math.MaxInt64-cur {
		return errors.Wrapf(errors.ErrOverflow, "balance %d + %d", cur, amount)
	}
	return setBalance(db, account, token, cur+amount)
}

// MoveCoins moves the given amount of token from src to dest. If src does
// not hold sufficient funds, it fails.
func (l Ledger) MoveCoins(db custos.KVStore, token, src, dest custos.Address, amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "move %d", amount)
	}

	from, err := l.Balance(db, src, token)
	if err != nil {
		return err
	}
	if from < amount {
		return errors.Wrapf(ErrInsufficientFunds, "%d < %d", from, amount)
	}
	to, err := l.Balance(db, dest, token)
	if err != nil {
		return err
	}
	if amount > math.MaxInt64-to {
		return errors.Wrapf(errors.ErrOverflow, "balance %d + %d", to, amount)
	}

	// All checks done, both writes from here.
	if err := setBalance(db, src, token, from-amount); err != nil {
		return err
	}
	return setBalance(db, dest, token, to+amount)
}

func setBalance(db custos.KVStore, account, token custos.Address, value int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(value))
	return db.Set(balanceKey(account, token), raw)
}
