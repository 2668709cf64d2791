package multisig

import (
	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/errors"
)

// Initializer fulfils the custos.Initializer interface to load the custody
// configuration from the genesis file.
type Initializer struct {
	Engine Engine
}

var _ custos.Initializer = (*Initializer)(nil)

// FromGenesis will parse the owner set and threshold from genesis and save
// them in the database. A genesis without a multisig section is a noop.
func (i *Initializer) FromGenesis(opts custos.Options, kv custos.KVStore) error {
	var conf struct {
		Owners            []custos.Address `json:"owners"`
		RequiredApprovals uint32           `json:"required_approvals"`
	}
	if err := opts.ReadOptions("multisig", &conf); err != nil {
		return errors.Wrap(err, "cannot read multisig options")
	}
	if len(conf.Owners) == 0 && conf.RequiredApprovals == 0 {
		return nil
	}
	return i.Engine.Initialize(kv, conf.Owners, conf.RequiredApprovals)
}
