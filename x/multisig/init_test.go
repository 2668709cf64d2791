package multisig

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/custostest"
	"github.com/safenet-dev/custos/errors"
	"github.com/safenet-dev/custos/store"
)

func TestFromGenesis(t *testing.T) {
	a := custostest.SeqAddress("genesis-a")
	b := custostest.SeqAddress("genesis-b")
	opts := custos.Options{
		"multisig": json.RawMessage(fmt.Sprintf(
			`{"owners": [%q, %q], "required_approvals": 2}`, a, b)),
	}

	db := store.MemStore()
	engine := NewEngine(custostest.NobodyAuth{}, nil, nil, "")
	ini := Initializer{Engine: engine}
	require.NoError(t, ini.FromGenesis(opts, db))

	conf, err := NewConfigBucket().Load(db)
	require.NoError(t, err)
	require.Len(t, conf.Owners, 2)
	assert.True(t, conf.Owners[0].Equals(a))
	assert.True(t, conf.Owners[1].Equals(b))
	assert.Equal(t, uint32(2), conf.RequiredApprovals)
	assert.Equal(t, uint64(0), conf.TransactionCount)
}

func TestFromGenesisWithoutSection(t *testing.T) {
	db := store.MemStore()
	ini := Initializer{Engine: NewEngine(custostest.NobodyAuth{}, nil, nil, "")}
	require.NoError(t, ini.FromGenesis(custos.Options{}, db))

	exists, err := NewConfigBucket().Exists(db)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFromGenesisInvalid(t *testing.T) {
	a := custostest.SeqAddress("genesis-a")

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"malformed json": {
			raw: `{"owners": [`,
		},
		"no owners with threshold": {
			raw:     `{"required_approvals": 1}`,
			wantErr: errors.ErrInvalidOwner,
		},
		"threshold above owner count": {
			raw:     fmt.Sprintf(`{"owners": [%q], "required_approvals": 2}`, a),
			wantErr: errors.ErrInvalidThreshold,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ini := Initializer{Engine: NewEngine(custostest.NobodyAuth{}, nil, nil, "")}
			err := ini.FromGenesis(custos.Options{"multisig": json.RawMessage(tc.raw)}, db)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}
