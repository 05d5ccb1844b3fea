package tendermint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainConfigValidate(t *testing.T) {
	valid := ChainConfig{
		ChainId:              "ibc0",
		RpcAddr:              "http://localhost:26657",
		AverageBlockTimeMsec: 1000,
	}
	require.NoError(t, valid.Validate())

	missing := ChainConfig{AverageBlockTimeMsec: 1000}
	err := missing.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "chain_id")
	require.Contains(t, err.Error(), "rpc_addr")
}

func TestChainConfigBuild(t *testing.T) {
	cfg := ChainConfig{
		ChainId:              "ibc0",
		RpcAddr:              "http://localhost:26657",
		AverageBlockTimeMsec: 1000,
	}
	chain, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, "ibc0", chain.ChainID())
}

func TestProverConfigValidate(t *testing.T) {
	valid := ProverConfig{
		TrustingPeriod:       "336h",
		RefreshThresholdRate: Fraction{Numerator: 2, Denominator: 3},
	}
	require.NoError(t, valid.Validate())

	badPeriod := valid
	badPeriod.TrustingPeriod = "yesterday"
	require.Error(t, badPeriod.Validate())

	badRate := valid
	badRate.RefreshThresholdRate = Fraction{Numerator: 3, Denominator: 2}
	require.Error(t, badRate.Validate())

	zeroDenom := valid
	zeroDenom.RefreshThresholdRate = Fraction{Numerator: 1, Denominator: 0}
	require.Error(t, zeroDenom.Validate())
}

func TestMaxRetryForQueryDefault(t *testing.T) {
	require.Equal(t, uint(DefaultMaxRetryForQuery), ChainConfig{}.maxRetryForQuery())
	require.Equal(t, uint(9), ChainConfig{MaxRetryForQuery: 9}.maxRetryForQuery())
}
