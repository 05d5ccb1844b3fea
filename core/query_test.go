package core

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// mockChain implements Chain and Prover in memory and records every
// round-trip, so tests can assert not only results but also how many chain
// calls an operation cost.
type mockChain struct {
	chainID string
	latest  clienttypes.Height

	clientState    *clienttypes.QueryClientStateResponse
	consensusState *clienttypes.QueryConsensusStateResponse
	proof          []byte

	latestCalls int
	queryCalls  int

	lastQueryHeight ibcexported.Height
}

var (
	_ Chain  = (*mockChain)(nil)
	_ Prover = (*mockChain)(nil)
)

func (m *mockChain) ChainID() string { return m.chainID }

func (m *mockChain) Init(string, time.Duration, codec.ProtoCodecMarshaler, bool) error { return nil }

func (m *mockChain) Codec() codec.ProtoCodecMarshaler { return nil }

func (m *mockChain) LatestHeight(_ context.Context) (ibcexported.Height, error) {
	m.latestCalls++
	return m.latest, nil
}

func (m *mockChain) QueryClientState(ctx QueryContext, _ ClientID) (*clienttypes.QueryClientStateResponse, error) {
	m.queryCalls++
	m.lastQueryHeight = ctx.Height()
	res := *m.clientState
	return &res, nil
}

func (m *mockChain) QueryClientConsensusState(ctx QueryContext, _ ClientID, _ ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	m.queryCalls++
	m.lastQueryHeight = ctx.Height()
	res := *m.consensusState
	return &res, nil
}

func (m *mockChain) QueryClientStateWithProof(ctx QueryContext, clientID ClientID) (*clienttypes.QueryClientStateResponse, error) {
	res, err := m.QueryClientState(ctx, clientID)
	if err != nil {
		return nil, err
	}
	res.Proof = m.proof
	return res, nil
}

func (m *mockChain) QueryClientConsensusStateWithProof(ctx QueryContext, clientID ClientID, consensusHeight ibcexported.Height) (*clienttypes.QueryConsensusStateResponse, error) {
	res, err := m.QueryClientConsensusState(ctx, clientID, consensusHeight)
	if err != nil {
		return nil, err
	}
	res.Proof = m.proof
	return res, nil
}

func newMockChain(chainID string, latestHeight uint64) *mockChain {
	return &mockChain{
		chainID: chainID,
		latest:  clienttypes.NewHeight(0, latestHeight),
		clientState: &clienttypes.QueryClientStateResponse{
			ClientState: &codectypes.Any{TypeUrl: "/ibc.lightclients.tendermint.v1.ClientState"},
			ProofHeight: clienttypes.NewHeight(0, latestHeight+1),
		},
		consensusState: &clienttypes.QueryConsensusStateResponse{
			ConsensusState: &codectypes.Any{TypeUrl: "/ibc.lightclients.tendermint.v1.ConsensusState"},
			ProofHeight:    clienttypes.NewHeight(0, latestHeight+1),
		},
		proof: []byte{0xaa, 0xbb},
	}
}

func TestQueryClientFullStateLatest(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	res, err := QueryClientFullState(context.Background(), pc, LatestQueryHeight(), clientID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.latestCalls != 1 {
		t.Errorf("expected exactly one latest-height call, got %d", chain.latestCalls)
	}
	if chain.lastQueryHeight.GetRevisionHeight() != 100 {
		t.Errorf("query must run at the reported latest height, got %d", chain.lastQueryHeight.GetRevisionHeight())
	}
	if len(res.Proof) == 0 {
		t.Error("expected a proof on the response")
	}
}

func TestQueryClientFullStateExactHeight(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	_, err := QueryClientFullState(context.Background(), pc, ExactQueryHeight(clienttypes.NewHeight(0, 42)), clientID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.latestCalls != 0 {
		t.Errorf("a pinned query must not consult the latest height, got %d calls", chain.latestCalls)
	}
	if chain.lastQueryHeight.GetRevisionHeight() != 42 {
		t.Errorf("query must run at the pinned height, got %d", chain.lastQueryHeight.GetRevisionHeight())
	}
}

func TestQueryClientFullStateMissingClientID(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)

	_, err := QueryClientFullState(context.Background(), pc, LatestQueryHeight(), ClientID{}, true)
	if !errors.Is(err, ErrMissingClientID) {
		t.Fatalf("expected ErrMissingClientID, got %v", err)
	}
	if chain.latestCalls != 0 || chain.queryCalls != 0 {
		t.Error("validation failures must not reach the chain")
	}
}

func TestQueryClientFullStateProofMissing(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	chain.proof = nil
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	_, err := QueryClientFullState(context.Background(), pc, LatestQueryHeight(), clientID, true)
	if !errors.Is(err, ErrProofMissing) {
		t.Fatalf("expected ErrProofMissing, got %v", err)
	}
}

func TestQueryClientFullStateWithoutProof(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	chain.proof = nil
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	// absence of a proof is only an error when one was requested
	res, err := QueryClientFullState(context.Background(), pc, LatestQueryHeight(), clientID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Proof) != 0 {
		t.Error("expected no proof on an unproven response")
	}
}

func TestQueryClientConsensusStateRequiresConsensusHeight(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	cases := []struct {
		name            string
		consensusHeight ibcexported.Height
	}{
		{"nil", nil},
		{"zero", clienttypes.ZeroHeight()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := QueryClientConsensusState(context.Background(), pc, LatestQueryHeight(), clientID, tc.consensusHeight, true)
			if !errors.Is(err, ErrMissingConsensusHeight) {
				t.Fatalf("expected ErrMissingConsensusHeight, got %v", err)
			}
		})
	}
	if chain.latestCalls != 0 || chain.queryCalls != 0 {
		t.Error("a missing consensus height must fail before any chain call")
	}
}

func TestQueryClientConsensusState(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")

	res, err := QueryClientConsensusState(context.Background(), pc, LatestQueryHeight(), clientID, clienttypes.NewHeight(1, 30), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Proof) == 0 {
		t.Error("expected a proof on the response")
	}
}

func TestQueryClientFullStateIdempotent(t *testing.T) {
	chain := newMockChain("ibc0", 100)
	pc := NewProvableChain(chain, chain)
	clientID := mustClientID(t, "ibconeclient")
	height := ExactQueryHeight(clienttypes.NewHeight(0, 42))

	first, err := QueryClientFullState(context.Background(), pc, height, clientID, true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := QueryClientFullState(context.Background(), pc, height, clientID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeating a query against unchanged state must return an identical result")
	}
}

func TestQueryClientStatePair(t *testing.T) {
	src := newMockChain("ibc0", 100)
	dst := newMockChain("ibc1", 200)
	srcPC := NewProvableChain(src, src)
	dstPC := NewProvableChain(dst, dst)

	srcRes, dstRes, err := QueryClientStatePair(
		context.Background(),
		srcPC, dstPC,
		LatestQueryHeight(), LatestQueryHeight(),
		mustClientID(t, "ibconeclient"), mustClientID(t, "ibczeroclient"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srcRes == nil || dstRes == nil {
		t.Fatal("expected responses from both sides")
	}
	if src.lastQueryHeight.GetRevisionHeight() != 100 || dst.lastQueryHeight.GetRevisionHeight() != 200 {
		t.Error("each side must resolve its own latest height")
	}
}
