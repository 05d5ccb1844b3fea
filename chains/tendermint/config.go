package tendermint

import (
	"errors"
	"fmt"
	"time"

	"github.com/crossline-labs/crossline-relayer/core"
)

const (
	ModuleName = "tendermint"

	DefaultAverageBlockTimeMsec = 1000
	DefaultMaxRetryForQuery     = 5
)

// ChainConfig configures a Chain backed by a CometBFT RPC endpoint.
type ChainConfig struct {
	ChainId              string `json:"chain_id"`
	RpcAddr              string `json:"rpc_addr"`
	AverageBlockTimeMsec uint64 `json:"average_block_time_msec"`
	MaxRetryForQuery     uint64 `json:"max_retry_for_query"`
}

var _ core.ChainConfig = (*ChainConfig)(nil)

func (c ChainConfig) Build() (core.Chain, error) {
	return &Chain{
		config: c,
	}, nil
}

func (c ChainConfig) Validate() error {
	isEmpty := func(s string) bool {
		return s == ""
	}

	var errs []error
	if isEmpty(c.ChainId) {
		errs = append(errs, fmt.Errorf("config attribute \"chain_id\" is empty"))
	}
	if isEmpty(c.RpcAddr) {
		errs = append(errs, fmt.Errorf("config attribute \"rpc_addr\" is empty"))
	}
	if c.AverageBlockTimeMsec == 0 {
		errs = append(errs, fmt.Errorf("config attribute \"average_block_time_msec\" is zero"))
	}
	return errors.Join(errs...)
}

func (c ChainConfig) maxRetryForQuery() uint {
	if c.MaxRetryForQuery == 0 {
		return DefaultMaxRetryForQuery
	}
	return uint(c.MaxRetryForQuery)
}

// ProverConfig configures a light-client Prover for a tendermint Chain.
type ProverConfig struct {
	TrustingPeriod       string   `json:"trusting_period"`
	RefreshThresholdRate Fraction `json:"refresh_threshold_rate"`
}

type Fraction struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

var _ core.ProverConfig = (*ProverConfig)(nil)

func (c ProverConfig) Build(chain core.Chain) (core.Prover, error) {
	chain_, ok := chain.(*Chain)
	if !ok {
		return nil, fmt.Errorf("chain type must be %T, not %T", &Chain{}, chain)
	}
	return NewProver(chain_, c)
}

func (c ProverConfig) Validate() error {
	var errs []error
	if _, err := time.ParseDuration(c.TrustingPeriod); err != nil {
		errs = append(errs, fmt.Errorf("config attribute \"trusting_period\" is invalid: %v", err))
	}
	if c.RefreshThresholdRate.Denominator == 0 {
		errs = append(errs, fmt.Errorf("config attribute \"refresh_threshold_rate.denominator\" is zero"))
	}
	if c.RefreshThresholdRate.Numerator > c.RefreshThresholdRate.Denominator {
		errs = append(errs, fmt.Errorf("config attribute \"refresh_threshold_rate\" must not be greater than 1"))
	}
	return errors.Join(errs...)
}

func (c ProverConfig) GetTrustingPeriod() time.Duration {
	d, _ := time.ParseDuration(c.TrustingPeriod)
	return d
}
