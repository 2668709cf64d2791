package multisig

import (
	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/errors"
)

const (
	// DataSize is the exact length of the opaque reference payload carried
	// by every transaction, e.g. the hash of an off-band document.
	DataSize = 32
)

var _ custos.Persistent = (*MultisigConfig)(nil)
var _ custos.Persistent = (*Transaction)(nil)
var _ custos.Persistent = (*ApprovalList)(nil)

// Validate enforces owner set and threshold boundaries.
func (m *MultisigConfig) Validate() error {
	if len(m.Owners) == 0 {
		return errors.Wrap(errors.ErrInvalidOwner, "no owners")
	}
	seen := make(addrSet, len(m.Owners))
	for _, owner := range m.Owners {
		if err := owner.Validate(); err != nil {
			return errors.Wrapf(errors.ErrInvalidOwner, "owner %s", owner)
		}
		if !seen.add(owner) {
			return errors.Wrapf(errors.ErrDuplicateOwner, "owner %s", owner)
		}
	}
	return validateThreshold(m.RequiredApprovals, len(m.Owners))
}

// IsOwner returns true if the given address is a member of the owner set.
func (m *MultisigConfig) IsOwner(addr custos.Address) bool {
	for _, owner := range m.Owners {
		if owner.Equals(addr) {
			return true
		}
	}
	return false
}

// validateThreshold returns an error unless 1 <= threshold <= owners.
func validateThreshold(threshold uint32, owners int) error {
	if threshold == 0 || threshold > uint32(owners) {
		return errors.Wrapf(errors.ErrInvalidThreshold,
			"threshold %d of %d owners", threshold, owners)
	}
	return nil
}

// Validate enforces transfer boundaries. Only fields frozen at submission
// time are checked, counters are maintained by the engine.
func (m *Transaction) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := m.Submitter.Validate(); err != nil {
		return errors.Wrap(err, "submitter")
	}
	if m.Amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "amount %d", m.Amount)
	}
	if len(m.Data) != DataSize {
		return errors.ErrInput.Newf("data must be %d bytes", DataSize)
	}
	return nil
}

// Contains runs a linear membership check over the approval list.
func (m *ApprovalList) Contains(addr custos.Address) bool {
	for _, a := range m.Addresses {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// addrSet is a helper for duplicate detection. No ordering semantics, only
// membership.
type addrSet map[string]struct{}

// add returns false if the address was already a member.
func (s addrSet) add(addr custos.Address) bool {
	k := string(addr)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}
