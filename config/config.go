package config

import (
	"encoding/json"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/crossline-labs/crossline-relayer/core"
	"github.com/crossline-labs/crossline-relayer/telemetry"
)

const codespace = "config"

var (
	ErrMissingChainParam  = errorsmod.Register(codespace, 2, "missing chain parameter")
	ErrChainNotConfigured = errorsmod.Register(codespace, 3, "missing chain in configuration")
	ErrMissingClientParam = errorsmod.Register(codespace, 4, "missing client identifier parameter")
)

type Config struct {
	Global GlobalConfig        `json:"global" yaml:"global"`
	Chains []ChainProverConfig `json:"chains" yaml:"chains"`

	// path the config was loaded from
	ConfigPath string `json:"-" yaml:"-"`

	// cache of built chains
	chains Chains `json:"-" yaml:"-"`
}

type GlobalConfig struct {
	Timeout      string                 `json:"timeout" yaml:"timeout"`
	MetricsAddr  string                 `json:"metrics_addr" yaml:"metrics_addr"`
	LoggerConfig LoggerConfig           `json:"logger" yaml:"logger"`
	TracerConfig telemetry.TracerConfig `json:"tracer" yaml:"tracer"`
}

type LoggerConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}

// ChainProverConfig pairs one chain entry with its prover entry. The raw
// messages are decoded through the registry because their concrete types
// are module-defined.
type ChainProverConfig struct {
	Chain  json.RawMessage `json:"chain" yaml:"chain"`
	Prover json.RawMessage `json:"prover" yaml:"prover"`

	// cache
	chain  core.ChainConfig  `json:"-" yaml:"-"`
	prover core.ProverConfig `json:"-" yaml:"-"`
}

// NewChainProverConfig returns a config entry for an already-typed pair.
func NewChainProverConfig(chain core.ChainConfig, prover core.ProverConfig) (ChainProverConfig, error) {
	cbz, err := json.Marshal(chain)
	if err != nil {
		return ChainProverConfig{}, fmt.Errorf("failed to marshal chain config: %v", err)
	}
	pbz, err := json.Marshal(prover)
	if err != nil {
		return ChainProverConfig{}, fmt.Errorf("failed to marshal prover config: %v", err)
	}
	return ChainProverConfig{
		Chain:  cbz,
		Prover: pbz,
		chain:  chain,
		prover: prover,
	}, nil
}

// Init decodes and validates the raw entries through the registry.
func (cc *ChainProverConfig) Init(r *Registry) error {
	chain, err := r.UnmarshalChainConfig(cc.Chain)
	if err != nil {
		return err
	} else if err := chain.Validate(); err != nil {
		return fmt.Errorf("invalid chain config: %v", err)
	}
	prover, err := r.UnmarshalProverConfig(cc.Prover)
	if err != nil {
		return err
	} else if err := prover.Validate(); err != nil {
		return fmt.Errorf("invalid prover config: %v", err)
	}
	cc.chain = chain
	cc.prover = prover
	return nil
}

// Build returns a new ProvableChain built from the cached configs.
func (cc ChainProverConfig) Build() (*core.ProvableChain, error) {
	if cc.chain == nil || cc.prover == nil {
		return nil, fmt.Errorf("config entry is not initialized")
	}
	chain, err := cc.chain.Build()
	if err != nil {
		return nil, err
	}
	prover, err := cc.prover.Build(chain)
	if err != nil {
		return nil, err
	}
	return core.NewProvableChain(chain, prover), nil
}

func DefaultConfig(configPath string) Config {
	return Config{
		Global:     defaultGlobalConfig(),
		Chains:     []ChainProverConfig{},
		ConfigPath: configPath,
	}
}

func defaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Timeout: "10s",
		LoggerConfig: LoggerConfig{
			Level:  "DEBUG",
			Format: "json",
			Output: "stderr",
		},
		TracerConfig: telemetry.TracerConfig{
			Exporter: "none",
		},
	}
}

// GetChain returns the chain with the given ID, or a configuration error
// when no such chain was configured.
func (c *Config) GetChain(chainID string) (*core.ProvableChain, error) {
	if chainID == "" {
		return nil, ErrMissingChainParam
	}
	chain, err := c.chains.Get(chainID)
	if err != nil {
		return nil, errorsmod.Wrap(ErrChainNotConfigured, chainID)
	}
	return chain, nil
}

// AddChain adds an additional chain to the config.
func (c *Config) AddChain(cc ChainProverConfig) error {
	chain, err := cc.Build()
	if err != nil {
		return err
	}
	if _, err := c.chains.Get(chain.ChainID()); err == nil {
		return fmt.Errorf("chain with ID %s already exists in config", chain.ChainID())
	}
	c.Chains = append(c.Chains, cc)
	c.chains = append(c.chains, chain)
	return nil
}

// InitChains decodes every chain entry, builds the chains, and initializes
// their transports. Called once after the config file is read.
func (c *Config) InitChains(r *Registry, cdc codec.ProtoCodecMarshaler, homePath string, debug bool) error {
	timeout, err := time.ParseDuration(c.Global.Timeout)
	if err != nil {
		return fmt.Errorf("invalid global timeout %q: %w", c.Global.Timeout, err)
	}

	c.chains = nil
	for i := range c.Chains {
		if err := c.Chains[i].Init(r); err != nil {
			return err
		}
		chain, err := c.Chains[i].Build()
		if err != nil {
			return err
		}
		if err := chain.Init(homePath, timeout, cdc, debug); err != nil {
			return fmt.Errorf("failed to initialize chain %s: %w", chain.ChainID(), err)
		}
		c.chains = append(c.chains, chain)
	}
	return nil
}

func MarshalJSON(config Config) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

func UnmarshalJSON(bz []byte, config *Config) error {
	return json.Unmarshal(bz, config)
}
