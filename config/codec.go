package config

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibctm "github.com/cosmos/ibc-go/v8/modules/light-clients/07-tendermint"
)

// MakeCodec returns the codec used to decode chain responses: the IBC
// client interfaces plus whatever the registered modules add.
func MakeCodec(modules []ModuleI) codec.ProtoCodecMarshaler {
	registry := codectypes.NewInterfaceRegistry()
	clienttypes.RegisterInterfaces(registry)
	ibctm.RegisterInterfaces(registry)
	for _, m := range modules {
		m.RegisterInterfaces(registry)
	}
	return codec.NewProtoCodec(registry)
}
