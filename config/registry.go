package config

import (
	"encoding/json"
	"fmt"

	"github.com/crossline-labs/crossline-relayer/core"
)

// Registry maps the "type" discriminator in a config entry to the concrete
// chain/prover config type registered by a module. It fills the role a
// protobuf Any registry would play, without requiring generated code for
// every module's config.
type Registry struct {
	chainConfigs  map[string]func() core.ChainConfig
	proverConfigs map[string]func() core.ProverConfig
}

func NewRegistry() *Registry {
	return &Registry{
		chainConfigs:  make(map[string]func() core.ChainConfig),
		proverConfigs: make(map[string]func() core.ProverConfig),
	}
}

func (r *Registry) RegisterChainConfig(typeName string, factory func() core.ChainConfig) {
	if _, ok := r.chainConfigs[typeName]; ok {
		panic(fmt.Sprintf("chain config type %q registered twice", typeName))
	}
	r.chainConfigs[typeName] = factory
}

func (r *Registry) RegisterProverConfig(typeName string, factory func() core.ProverConfig) {
	if _, ok := r.proverConfigs[typeName]; ok {
		panic(fmt.Sprintf("prover config type %q registered twice", typeName))
	}
	r.proverConfigs[typeName] = factory
}

// typedEntry is the envelope every chain/prover entry uses: the type
// discriminator next to the type-specific fields.
type typedEntry struct {
	Type string `json:"type"`
}

// MarshalTypedConfig marshals cfg and injects the type discriminator, so the
// output can be placed directly into a config file entry.
func MarshalTypedConfig(typeName string, cfg any) ([]byte, error) {
	bz, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return nil, err
	}
	typeBz, err := json.Marshal(typeName)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeBz
	return json.Marshal(fields)
}

func (r *Registry) UnmarshalChainConfig(bz []byte) (core.ChainConfig, error) {
	var entry typedEntry
	if err := json.Unmarshal(bz, &entry); err != nil {
		return nil, fmt.Errorf("failed to read chain config type: %v", err)
	}
	factory, ok := r.chainConfigs[entry.Type]
	if !ok {
		return nil, fmt.Errorf("unknown chain config type %q", entry.Type)
	}
	cfg := factory()
	if err := json.Unmarshal(bz, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q chain config: %v", entry.Type, err)
	}
	return cfg, nil
}

func (r *Registry) UnmarshalProverConfig(bz []byte) (core.ProverConfig, error) {
	var entry typedEntry
	if err := json.Unmarshal(bz, &entry); err != nil {
		return nil, fmt.Errorf("failed to read prover config type: %v", err)
	}
	factory, ok := r.proverConfigs[entry.Type]
	if !ok {
		return nil, fmt.Errorf("unknown prover config type %q", entry.Type)
	}
	cfg := factory()
	if err := json.Unmarshal(bz, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %q prover config: %v", entry.Type, err)
	}
	return cfg, nil
}
