package custos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionParse(t *testing.T) {
	c := NewCondition("multisig", "custody", []byte("global"))
	require.NoError(t, c.Validate())

	ext, typ, data, err := c.Parse()
	require.NoError(t, err)
	assert.Equal(t, "multisig", ext)
	assert.Equal(t, "custody", typ)
	assert.Equal(t, []byte("global"), data)
}

func TestConditionValidate(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantErr bool
	}{
		"proper condition": {
			cond: NewCondition("multisig", "custody", []byte{1, 2, 3}),
		},
		"data with newline": {
			cond: NewCondition("multisig", "custody", []byte("a\nb")),
		},
		"empty": {
			cond:    Condition{},
			wantErr: true,
		},
		"missing data": {
			cond:    Condition("multisig/custody/"),
			wantErr: true,
		},
		"extension too short": {
			cond:    NewCondition("ab", "custody", []byte{1}),
			wantErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.cond.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConditionAddressDeterministic(t *testing.T) {
	a := NewCondition("multisig", "custody", []byte("global")).Address()
	b := NewCondition("multisig", "custody", []byte("global")).Address()
	other := NewCondition("multisig", "custody", []byte("else")).Address()

	require.NoError(t, a.Validate())
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(other))
}

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, Address(make([]byte, AddressLength)).Validate())
	assert.Error(t, Address(make([]byte, AddressLength-1)).Validate())
	assert.Error(t, Address(nil).Validate())
}

func TestParseAddressRoundTrip(t *testing.T) {
	addr := NewAddress([]byte("some identity"))
	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equals(parsed))

	_, err = ParseAddress("not hex")
	assert.Error(t, err)

	// Wrong size decodes but does not validate.
	_, err = ParseAddress("abcd")
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := NewAddress([]byte("json encoded"))

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var back Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, addr.Equals(back))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)
}

func TestReadOptions(t *testing.T) {
	opts := Options{
		"multisig": json.RawMessage(`{"threshold": 2}`),
	}

	var conf struct {
		Threshold uint32 `json:"threshold"`
	}
	require.NoError(t, opts.ReadOptions("multisig", &conf))
	assert.Equal(t, uint32(2), conf.Threshold)

	// Missing key is a noop.
	conf.Threshold = 0
	require.NoError(t, opts.ReadOptions("missing", &conf))
	assert.Equal(t, uint32(0), conf.Threshold)

	// Malformed payload errors.
	opts["bad"] = json.RawMessage(`{"threshold": `)
	assert.Error(t, opts.ReadOptions("bad", &conf))
}
