package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/custostest"
	"github.com/safenet-dev/custos/x/multisig"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunValidPolicy(t *testing.T) {
	a := custostest.SeqAddress("ctl-a")
	b := custostest.SeqAddress("ctl-b")
	path := writePolicy(t, `
owners:
  - `+a.String()+`
  - `+b.String()+`
threshold: 2
`)

	var out bytes.Buffer
	require.NoError(t, run(zaptest.NewLogger(t), path, false, &out))

	assert.Contains(t, out.String(), "owners:    2")
	assert.Contains(t, out.String(), "threshold: 2")
	assert.Contains(t, out.String(), multisig.CustodyCondition("global").Address().String())
}

func TestRunGenesisOutput(t *testing.T) {
	a := custostest.SeqAddress("ctl-a")
	path := writePolicy(t, `
owners:
  - `+a.String()+`
threshold: 1
custody_label: treasury
`)

	var out bytes.Buffer
	require.NoError(t, run(zaptest.NewLogger(t), path, true, &out))

	// The rendered options round trip through the genesis reader.
	start := bytes.IndexByte(out.Bytes(), '{')
	require.True(t, start >= 0)
	var opts custos.Options
	require.NoError(t, json.Unmarshal(out.Bytes()[start:], &opts))

	var conf struct {
		Owners            []custos.Address `json:"owners"`
		RequiredApprovals uint32           `json:"required_approvals"`
	}
	require.NoError(t, opts.ReadOptions("multisig", &conf))
	require.Len(t, conf.Owners, 1)
	assert.True(t, conf.Owners[0].Equals(a))
	assert.Equal(t, uint32(1), conf.RequiredApprovals)
}

func TestRunInvalidPolicy(t *testing.T) {
	cases := map[string]string{
		"no owners":            "threshold: 1\n",
		"zero threshold":       "owners:\n  - " + custostest.SeqAddress("x").String() + "\n",
		"malformed owner":      "owners:\n  - nothex\nthreshold: 1\n",
		"threshold too large":  "owners:\n  - " + custostest.SeqAddress("x").String() + "\nthreshold: 2\n",
		"not yaml at all":      "{{{{",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writePolicy(t, content)
			var out bytes.Buffer
			assert.Error(t, run(zaptest.NewLogger(t), path, false, &out))
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(zaptest.NewLogger(t), filepath.Join(t.TempDir(), "absent.yaml"), false, &out))
}
