package cmd

import (
	"errors"
	"testing"

	"github.com/crossline-labs/crossline-relayer/chains/tendermint"
	"github.com/crossline-labs/crossline-relayer/config"
	"github.com/crossline-labs/crossline-relayer/core"
)

// twoChainConfig returns a config with chains ibc0 and ibc1, mirroring the
// smallest deployment the relayer is pointed at.
func twoChainConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig("")
	for _, chainID := range []string{"ibc0", "ibc1"} {
		cc, err := config.NewChainProverConfig(
			tendermint.ChainConfig{
				ChainId:              chainID,
				RpcAddr:              "http://localhost:26657",
				AverageBlockTimeMsec: tendermint.DefaultAverageBlockTimeMsec,
			},
			tendermint.ProverConfig{
				TrustingPeriod:       "336h",
				RefreshThresholdRate: tendermint.Fraction{Numerator: 2, Denominator: 3},
			},
		)
		if err != nil {
			t.Fatalf("failed to build config entry for %s: %v", chainID, err)
		}
		if err := cfg.AddChain(cc); err != nil {
			t.Fatalf("failed to add chain %s: %v", chainID, err)
		}
	}
	return &cfg
}

func TestValidateClientOptionsDefaults(t *testing.T) {
	cfg := twoChainConfig(t)

	opts, err := validateClientOptions(cfg, "ibc0", "ibconeclient", 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opts.chain.ChainID(); got != "ibc0" {
		t.Errorf("wrong chain: %s", got)
	}
	if got := opts.clientID.String(); got != "ibconeclient" {
		t.Errorf("wrong client ID: %s", got)
	}
	if !opts.height.IsLatest() {
		t.Error("height 0 must resolve to a latest-height query")
	}
	if !opts.prove {
		t.Error("prove must default to true")
	}
}

func TestValidateClientOptionsMissingChainParam(t *testing.T) {
	cfg := twoChainConfig(t)

	if _, err := validateClientOptions(cfg, "", "ibconeclient", 0, true); !errors.Is(err, config.ErrMissingChainParam) {
		t.Fatalf("expected ErrMissingChainParam, got %v", err)
	}
}

func TestValidateClientOptionsUnknownChain(t *testing.T) {
	cfg := twoChainConfig(t)

	if _, err := validateClientOptions(cfg, "notibc0oribc1", "ibconeclient", 0, true); !errors.Is(err, config.ErrChainNotConfigured) {
		t.Fatalf("expected ErrChainNotConfigured, got %v", err)
	}
}

func TestValidateClientOptionsMissingClientParam(t *testing.T) {
	cfg := twoChainConfig(t)

	if _, err := validateClientOptions(cfg, "ibc0", "", 0, true); !errors.Is(err, config.ErrMissingClientParam) {
		t.Fatalf("expected ErrMissingClientParam, got %v", err)
	}
}

func TestValidateClientOptionsRejectsShortClientID(t *testing.T) {
	cfg := twoChainConfig(t)

	if _, err := validateClientOptions(cfg, "ibc0", "p34", 0, true); !errors.Is(err, core.ErrIdentifierLength) {
		t.Fatalf("expected ErrIdentifierLength, got %v", err)
	}
}

func TestParseConsensusHeight(t *testing.T) {
	h, err := parseConsensusHeight("1-30", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.GetRevisionNumber() != 1 || h.GetRevisionHeight() != 30 {
		t.Errorf("wrong height: %s", h)
	}

	// a bare number picks up the revision of the queried chain
	h, err = parseConsensusHeight("25", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.GetRevisionNumber() != 2 || h.GetRevisionHeight() != 25 {
		t.Errorf("wrong height: %s", h)
	}

	if _, err := parseConsensusHeight("latest-ish", 0); !errors.Is(err, core.ErrMissingConsensusHeight) {
		t.Fatalf("expected ErrMissingConsensusHeight, got %v", err)
	}
}

func TestValidateClientOptionsExactHeight(t *testing.T) {
	cfg := twoChainConfig(t)

	opts, err := validateClientOptions(cfg, "ibc1", "ibczeroclient", 25, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, ok := opts.height.Exact()
	if !ok {
		t.Fatal("expected an exact-height query")
	}
	if h.GetRevisionHeight() != 25 {
		t.Errorf("wrong height: %d", h.GetRevisionHeight())
	}
}
