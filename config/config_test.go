package config_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/crossline-labs/crossline-relayer/chains/tendermint"
	"github.com/crossline-labs/crossline-relayer/config"
	"github.com/crossline-labs/crossline-relayer/core"
)

func newTestRegistry(t *testing.T) *config.Registry {
	t.Helper()
	r := config.NewRegistry()
	r.RegisterChainConfig("tendermint", func() core.ChainConfig {
		return &tendermint.ChainConfig{}
	})
	r.RegisterProverConfig("tendermint", func() core.ProverConfig {
		return &tendermint.ProverConfig{}
	})
	return r
}

func TestUnmarshalChainConfig(t *testing.T) {
	r := newTestRegistry(t)

	entry := []byte(`{
		"type": "tendermint",
		"chain_id": "ibc0",
		"rpc_addr": "http://localhost:26657",
		"average_block_time_msec": 1000
	}`)

	cfg, err := r.UnmarshalChainConfig(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, ok := cfg.(*tendermint.ChainConfig)
	if !ok {
		t.Fatalf("expected *tendermint.ChainConfig, got %T", cfg)
	}
	if tc.ChainId != "ibc0" {
		t.Errorf("wrong chain ID: %s", tc.ChainId)
	}
}

func TestUnmarshalChainConfigUnknownType(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.UnmarshalChainConfig([]byte(`{"type": "corda"}`)); err == nil {
		t.Fatal("expected an unknown-type error")
	} else if !strings.Contains(err.Error(), "corda") {
		t.Errorf("error must name the unknown type: %v", err)
	}
}

func TestMarshalTypedConfigRoundTrip(t *testing.T) {
	r := newTestRegistry(t)

	in := tendermint.ChainConfig{
		ChainId:              "ibc1",
		RpcAddr:              "http://localhost:26658",
		AverageBlockTimeMsec: 500,
	}
	bz, err := config.MarshalTypedConfig("tendermint", &in)
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.UnmarshalChainConfig(bz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.(*tendermint.ChainConfig); *got != in {
		t.Errorf("round-trip mismatch: %+v != %+v", *got, in)
	}
}

func TestChainProverConfigInitValidates(t *testing.T) {
	r := newTestRegistry(t)

	cc := config.ChainProverConfig{
		Chain:  json.RawMessage(`{"type": "tendermint", "chain_id": "", "rpc_addr": "", "average_block_time_msec": 0}`),
		Prover: json.RawMessage(`{"type": "tendermint", "trusting_period": "336h", "refresh_threshold_rate": {"numerator": 2, "denominator": 3}}`),
	}
	if err := cc.Init(r); err == nil {
		t.Fatal("expected validation of the chain entry to fail")
	}
}

func TestGetChain(t *testing.T) {
	cfg := config.DefaultConfig("")
	cc, err := config.NewChainProverConfig(
		tendermint.ChainConfig{
			ChainId:              "ibc0",
			RpcAddr:              "http://localhost:26657",
			AverageBlockTimeMsec: 1000,
		},
		tendermint.ProverConfig{
			TrustingPeriod:       "336h",
			RefreshThresholdRate: tendermint.Fraction{Numerator: 2, Denominator: 3},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.AddChain(cc); err != nil {
		t.Fatal(err)
	}

	chain, err := cfg.GetChain("ibc0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.ChainID() != "ibc0" {
		t.Errorf("wrong chain: %s", chain.ChainID())
	}

	if _, err := cfg.GetChain(""); !errors.Is(err, config.ErrMissingChainParam) {
		t.Errorf("expected ErrMissingChainParam, got %v", err)
	}
	if _, err := cfg.GetChain("notibc0oribc1"); !errors.Is(err, config.ErrChainNotConfigured) {
		t.Errorf("expected ErrChainNotConfigured, got %v", err)
	}
}
