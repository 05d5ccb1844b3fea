package tendermint

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	retry "github.com/avast/retry-go"
	abci "github.com/cometbft/cometbft/abci/types"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"

	"github.com/crossline-labs/crossline-relayer/core"
)

// QueryClientState queries the client state of the given client at the
// context height, without requesting a proof.
func (c *Chain) QueryClientState(ctx core.QueryContext, clientID core.ClientID) (*clienttypes.QueryClientStateResponse, error) {
	return c.queryClientState(ctx, clientID, false)
}

func (c *Chain) queryClientState(ctx core.QueryContext, clientID core.ClientID, prove bool) (*clienttypes.QueryClientStateResponse, error) {
	key := host.FullClientStateKey(clientID.String())
	value, proof, proofHeight, err := c.queryABCI(ctx, key, prove)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, errorsmod.Wrapf(core.ErrStateNotFound,
			"client state for %s not found at height %d on chain %s",
			clientID, ctx.Height().GetRevisionHeight(), c.ChainID())
	}

	cs, err := clienttypes.UnmarshalClientState(c.codec, value)
	if err != nil {
		return nil, err
	}
	anyCS, err := clienttypes.PackClientState(cs)
	if err != nil {
		return nil, err
	}

	return &clienttypes.QueryClientStateResponse{
		ClientState: anyCS,
		Proof:       proof,
		ProofHeight: proofHeight,
	}, nil
}

// QueryClientConsensusState queries the consensus state the given client
// recorded for consensusHeight, evaluated at the context height.
func (c *Chain) QueryClientConsensusState(ctx core.QueryContext, clientID core.ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	return c.queryClientConsensusState(ctx, clientID, consensusHeight, false)
}

func (c *Chain) queryClientConsensusState(ctx core.QueryContext, clientID core.ClientID, consensusHeight ibcexported.Height, prove bool) (*clienttypes.QueryConsensusStateResponse, error) {
	key := host.FullConsensusStateKey(clientID.String(), consensusHeight)
	value, proof, proofHeight, err := c.queryABCI(ctx, key, prove)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, errorsmod.Wrapf(core.ErrStateNotFound,
			"consensus state of client %s at %s not found on chain %s",
			clientID, consensusHeight, c.ChainID())
	}

	cs, err := clienttypes.UnmarshalConsensusState(c.codec, value)
	if err != nil {
		return nil, err
	}
	anyCS, err := clienttypes.PackConsensusState(cs)
	if err != nil {
		return nil, err
	}

	return &clienttypes.QueryConsensusStateResponse{
		ConsensusState: anyCS,
		Proof:          proof,
		ProofHeight:    proofHeight,
	}, nil
}

// queryABCI performs an ABCI query against the IBC store at the context
// height. When prove is set, the returned proof is re-encoded as a
// MerkleProof and the proof height is the height at which the proof can be
// verified, i.e. the queried height plus one.
func (c *Chain) queryABCI(ctx core.QueryContext, key []byte, prove bool) ([]byte, []byte, clienttypes.Height, error) {
	opts := rpcclient.ABCIQueryOptions{
		Height: int64(ctx.Height().GetRevisionHeight()),
		Prove:  prove,
	}

	logger := GetChainLogger().WithChain(c.ChainID())
	var res *abci.ResponseQuery
	if err := retry.Do(func() error {
		result, err := c.client.ABCIQueryWithOptions(ctx.Context(), "store/ibc/key", key, opts)
		if err != nil {
			return err
		}
		res = &result.Response
		return nil
	}, retry.Attempts(c.config.maxRetryForQuery()), rtyDel, rtyErr, retry.Context(ctx.Context()), retry.OnRetry(func(n uint, err error) {
		logger.Info("retrying abci query", "attempt", n, "error", err.Error())
	})); err != nil {
		return nil, nil, clienttypes.Height{}, err
	}

	if res.Code != 0 {
		return nil, nil, clienttypes.Height{}, fmt.Errorf("abci query failed: code=%d log=%s", res.Code, res.Log)
	}

	if !prove {
		return res.Value, nil, clienttypes.Height{}, nil
	}

	merkleProof, err := commitmenttypes.ConvertProofs(res.ProofOps)
	if err != nil {
		return nil, nil, clienttypes.Height{}, err
	}
	proof, err := c.codec.Marshal(&merkleProof)
	if err != nil {
		return nil, nil, clienttypes.Height{}, err
	}

	revision := clienttypes.ParseChainID(c.ChainID())
	// proofs are verifiable against the app hash of the following block
	proofHeight := clienttypes.NewHeight(revision, uint64(res.Height)+1)
	return res.Value, proof, proofHeight, nil
}
