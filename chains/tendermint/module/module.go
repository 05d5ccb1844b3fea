package module

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	ibctm "github.com/cosmos/ibc-go/v8/modules/light-clients/07-tendermint"
	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/chains/tendermint"
	"github.com/crossline-labs/crossline-relayer/chains/tendermint/cmd"
	"github.com/crossline-labs/crossline-relayer/config"
	"github.com/crossline-labs/crossline-relayer/core"
)

type Module struct{}

var _ config.ModuleI = (*Module)(nil)

// Name returns the name of the module
func (Module) Name() string {
	return tendermint.ModuleName
}

// RegisterInterfaces register the module interfaces to protobuf Any.
func (Module) RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	ibctm.RegisterInterfaces(registry)
}

// RegisterConfigs registers the module's chain and prover config types.
func (Module) RegisterConfigs(r *config.Registry) {
	r.RegisterChainConfig(tendermint.ModuleName, func() core.ChainConfig {
		return &tendermint.ChainConfig{}
	})
	r.RegisterProverConfig(tendermint.ModuleName, func() core.ProverConfig {
		return &tendermint.ProverConfig{}
	})
}

// GetCmd returns the command
func (Module) GetCmd(ctx *config.Context) *cobra.Command {
	return cmd.TendermintCmd(ctx)
}
