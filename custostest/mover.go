package custostest

import (
	"github.com/safenet-dev/custos"
)

// Move records a single MoveCoins invocation.
type Move struct {
	Token  custos.Address
	Src    custos.Address
	Dest   custos.Address
	Amount int64
}

// Mover is a token mover mock. It records every call and returns the
// configured error, so tests can choose between a succeeding and a failing
// transfer primitive without a real ledger.
type Mover struct {
	// Err is returned by every MoveCoins call. Nil means success.
	Err error

	// Moves collects all calls, successful or not, in order.
	Moves []Move
}

func (m *Mover) MoveCoins(db custos.KVStore, token, src, dest custos.Address, amount int64) error {
	m.Moves = append(m.Moves, Move{
		Token:  token,
		Src:    src,
		Dest:   dest,
		Amount: amount,
	})
	return m.Err
}

// MoveCount returns how often the mover was invoked.
func (m *Mover) MoveCount() int {
	return len(m.Moves)
}
