// Command custosctl validates a custody policy file and derives the custody
// account address that must be funded before the first execution.
//
// The policy file is YAML:
//
//	owners:
//	  - 668F09E363981F307AC6A563B406504C9A8BDB4B
//	  - 7A8C61D337784C72877A54B7799C05D6551CDAE2
//	threshold: 2
//	custody_label: global
//
// On success the tool prints a summary and, with -genesis, the matching
// genesis options document. An invalid policy exits non-zero.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/safenet-dev/custos"
	"github.com/safenet-dev/custos/x/multisig"
)

type policy struct {
	Owners       []string `yaml:"owners"`
	Threshold    uint32   `yaml:"threshold"`
	CustodyLabel string   `yaml:"custody_label"`
}

func main() {
	var (
		policyFl  = flag.String("policy", "policy.yaml", "path to the custody policy file")
		genesisFl = flag.Bool("genesis", false, "print the genesis options document for this policy")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *policyFl, *genesisFl, os.Stdout); err != nil {
		logger.Error("policy rejected", zap.String("path", *policyFl), zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, path string, genesis bool, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read policy file: %w", err)
	}

	var pol policy
	if err := yaml.Unmarshal(raw, &pol); err != nil {
		return fmt.Errorf("cannot parse policy file: %w", err)
	}

	owners := make([]custos.Address, 0, len(pol.Owners))
	for i, enc := range pol.Owners {
		owner, err := custos.ParseAddress(enc)
		if err != nil {
			return fmt.Errorf("owner %d: %w", i, err)
		}
		owners = append(owners, owner)
	}

	conf := multisig.MultisigConfig{
		Owners:            owners,
		RequiredApprovals: pol.Threshold,
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	label := pol.CustodyLabel
	if label == "" {
		label = "global"
	}
	custody := multisig.CustodyCondition(label).Address()

	logger.Info("policy accepted",
		zap.String("path", path),
		zap.Int("owners", len(owners)),
		zap.Uint32("threshold", pol.Threshold),
		zap.String("custody_label", label),
	)

	fmt.Fprintf(out, "owners:    %d\n", len(owners))
	fmt.Fprintf(out, "threshold: %d\n", pol.Threshold)
	fmt.Fprintf(out, "custody:   %s\n", custody)

	if genesis {
		doc, err := genesisOptions(owners, pol.Threshold)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(doc))
	}
	return nil
}

// genesisOptions renders the policy as the options document consumed by the
// multisig genesis initializer.
func genesisOptions(owners []custos.Address, threshold uint32) ([]byte, error) {
	section, err := json.Marshal(struct {
		Owners            []custos.Address `json:"owners"`
		RequiredApprovals uint32           `json:"required_approvals"`
	}{
		Owners:            owners,
		RequiredApprovals: threshold,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot marshal multisig options: %w", err)
	}
	opts := custos.Options{"multisig": section}
	return json.MarshalIndent(opts, "", "  ")
}
