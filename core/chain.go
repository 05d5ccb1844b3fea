package core

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// Chain represents a chain the relayer can read state from. Implementations
// own the transport (RPC client, timeouts, cancellation); this core only
// requires that every call either completes or fails.
type Chain interface {
	// ChainID returns the ID of the chain.
	ChainID() string

	// Init initializes the chain's transport. It is called once, before any
	// query is issued.
	Init(homePath string, timeout time.Duration, codec codec.ProtoCodecMarshaler, debug bool) error

	// Codec returns the codec used to decode chain responses.
	Codec() codec.ProtoCodecMarshaler

	// LatestHeight asks the chain for its latest available height.
	LatestHeight(ctx context.Context) (ibcexported.Height, error)

	IBCQuerier
}

// IBCQuerier reads IBC client state without proofs. Results from these
// methods must not be treated as verified.
type IBCQuerier interface {
	// QueryClientState returns the full client state of the given client at
	// the context height.
	QueryClientState(ctx QueryContext, clientID ClientID) (*clienttypes.QueryClientStateResponse, error)

	// QueryClientConsensusState returns the consensus state snapshot the
	// given client recorded for consensusHeight, evaluated at the context
	// height.
	QueryClientConsensusState(ctx QueryContext, clientID ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error)
}

// Prover supplies the proof-carrying variants of the state queries.
type Prover interface {
	// Init initializes the prover.
	Init(homePath string, timeout time.Duration, codec codec.ProtoCodecMarshaler, debug bool) error

	// QueryClientStateWithProof returns the client state and a membership
	// proof for it at the context height.
	QueryClientStateWithProof(ctx QueryContext, clientID ClientID) (*clienttypes.QueryClientStateResponse, error)

	// QueryClientConsensusStateWithProof returns the consensus state and a
	// membership proof for it at the context height.
	QueryClientConsensusStateWithProof(ctx QueryContext, clientID ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error)
}

// ProvableChain is a chain paired with its prover. It is the concrete
// capability the query protocol runs against; the wrappers add tracing and
// metrics around each chain round-trip without touching module code.
type ProvableChain struct {
	Chain
	Prover
}

// NewProvableChain returns a new ProvableChain instance.
func NewProvableChain(chain Chain, prover Prover) *ProvableChain {
	return &ProvableChain{Chain: chain, Prover: prover}
}

func (pc *ProvableChain) Init(homePath string, timeout time.Duration, codec codec.ProtoCodecMarshaler, debug bool) error {
	if err := pc.Chain.Init(homePath, timeout, codec, debug); err != nil {
		return err
	}
	if err := pc.Prover.Init(homePath, timeout, codec, debug); err != nil {
		return err
	}
	return nil
}

func (pc *ProvableChain) QueryClientState(ctx QueryContext, clientID ClientID) (*clienttypes.QueryClientStateResponse, error) {
	spanCtx, span := startChainSpan(ctx, "Chain.QueryClientState", pc.ChainID(), clientID)
	defer span.End()

	res, err := pc.Chain.QueryClientState(withContext(ctx, spanCtx), clientID)
	recordQuery(spanCtx, span, pc.ChainID(), "client_state", err)
	return res, err
}

func (pc *ProvableChain) QueryClientConsensusState(ctx QueryContext, clientID ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	spanCtx, span := startChainSpan(ctx, "Chain.QueryClientConsensusState", pc.ChainID(), clientID)
	defer span.End()

	res, err := pc.Chain.QueryClientConsensusState(withContext(ctx, spanCtx), clientID, consensusHeight)
	recordQuery(spanCtx, span, pc.ChainID(), "client_consensus_state", err)
	return res, err
}

func (pc *ProvableChain) QueryClientStateWithProof(ctx QueryContext, clientID ClientID) (*clienttypes.QueryClientStateResponse, error) {
	spanCtx, span := startChainSpan(ctx, "Prover.QueryClientStateWithProof", pc.ChainID(), clientID)
	defer span.End()

	res, err := pc.Prover.QueryClientStateWithProof(withContext(ctx, spanCtx), clientID)
	recordQuery(spanCtx, span, pc.ChainID(), "client_state_with_proof", err)
	return res, err
}

func (pc *ProvableChain) QueryClientConsensusStateWithProof(ctx QueryContext, clientID ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	spanCtx, span := startChainSpan(ctx, "Prover.QueryClientConsensusStateWithProof", pc.ChainID(), clientID)
	defer span.End()

	res, err := pc.Prover.QueryClientConsensusStateWithProof(withContext(ctx, spanCtx), clientID, consensusHeight)
	recordQuery(spanCtx, span, pc.ChainID(), "client_consensus_state_with_proof", err)
	return res, err
}

// QueryContext carries the context and the height of the target chain for
// querying states.
type QueryContext interface {
	// Context returns `context.Context`
	Context() context.Context

	// Height returns a height of the target chain for querying a state
	Height() ibcexported.Height
}

type queryContext struct {
	ctx    context.Context
	height ibcexported.Height
}

var _ QueryContext = (*queryContext)(nil)

// NewQueryContext returns a new context for querying states
func NewQueryContext(ctx context.Context, height ibcexported.Height) QueryContext {
	return queryContext{ctx: ctx, height: height}
}

func (qc queryContext) Context() context.Context {
	return qc.ctx
}

func (qc queryContext) Height() ibcexported.Height {
	return qc.height
}

// withContext replaces the context of qc, keeping its height. Used to
// propagate span contexts into module implementations.
func withContext(qc QueryContext, ctx context.Context) QueryContext {
	return queryContext{ctx: ctx, height: qc.Height()}
}
