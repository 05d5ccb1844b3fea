package tendermint

import (
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"

	"github.com/crossline-labs/crossline-relayer/core"
)

// Prover proves IBC state against a tendermint light client. Its query
// methods are the proof-carrying counterparts of the Chain queries: the
// same ABCI reads, with the Merkle proof requested and retained.
type Prover struct {
	chain  *Chain
	config ProverConfig
}

var _ core.Prover = (*Prover)(nil)

func NewProver(chain *Chain, config ProverConfig) (*Prover, error) {
	return &Prover{chain: chain, config: config}, nil
}

func (pr *Prover) Init(homePath string, timeout time.Duration, codec codec.ProtoCodecMarshaler, debug bool) error {
	return nil
}

func (pr *Prover) QueryClientStateWithProof(ctx core.QueryContext, clientID core.ClientID) (*clienttypes.QueryClientStateResponse, error) {
	return pr.chain.queryClientState(ctx, clientID, true)
}

func (pr *Prover) QueryClientConsensusStateWithProof(ctx core.QueryContext, clientID core.ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	return pr.chain.queryClientConsensusState(ctx, clientID, consensusHeight, true)
}
