package custostest

import (
	"fmt"

	"github.com/safenet-dev/custos"
)

// SeqAddress returns a deterministic test address derived from the given
// name. The same name always maps to the same address, so fixtures can be
// referenced across test steps without bookkeeping.
func SeqAddress(name string) custos.Address {
	return custos.NewAddress([]byte("custostest:" + name))
}

// NumAddress returns the n-th deterministic test address.
func NumAddress(n int) custos.Address {
	return SeqAddress(fmt.Sprintf("addr-%d", n))
}
