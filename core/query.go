package core

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
	"golang.org/x/sync/errgroup"
)

// QueryClientFullState fetches the full client state of clientID from the
// chain, evaluated at the given query height.
//
// When prove is set the response must carry a membership proof; a response
// without one fails with ErrProofMissing rather than passing as a silent
// success. When prove is unset the returned state is unverified and must be
// treated as such by the caller.
//
// The operation is read-only and idempotent: repeating it with identical
// arguments against an unchanged chain yields an identical result.
func QueryClientFullState(ctx context.Context, chain *ProvableChain, height QueryHeight, clientID ClientID, prove bool) (*clienttypes.QueryClientStateResponse, error) {
	if clientID.Empty() {
		return nil, ErrMissingClientID
	}

	queryHeight, err := height.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}
	qc := NewQueryContext(ctx, queryHeight)

	if !prove {
		return chain.QueryClientState(qc, clientID)
	}

	res, err := chain.QueryClientStateWithProof(qc, clientID)
	if err != nil {
		return nil, err
	}
	if len(res.Proof) == 0 {
		return nil, errorsmod.Wrapf(ErrProofMissing, "client state of %s at %v", clientID, queryHeight)
	}
	return res, nil
}

// QueryClientConsensusState fetches the consensus state snapshot that
// clientID recorded for consensusHeight, evaluated at the given query
// height. consensusHeight selects which counterparty-height snapshot to
// retrieve and is mandatory: a nil or zero value fails before any chain
// round-trip is attempted.
//
// Height and proof semantics match QueryClientFullState.
func QueryClientConsensusState(ctx context.Context, chain *ProvableChain, height QueryHeight, clientID ClientID, consensusHeight ibcexported.Height, prove bool) (*clienttypes.QueryConsensusStateResponse, error) {
	if clientID.Empty() {
		return nil, ErrMissingClientID
	}
	if consensusHeight == nil || consensusHeight.IsZero() {
		return nil, errorsmod.Wrapf(ErrMissingConsensusHeight, "client %s", clientID)
	}

	queryHeight, err := height.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}
	qc := NewQueryContext(ctx, queryHeight)

	if !prove {
		return chain.QueryClientConsensusState(qc, clientID, consensusHeight)
	}

	res, err := chain.QueryClientConsensusStateWithProof(qc, clientID, consensusHeight)
	if err != nil {
		return nil, err
	}
	if len(res.Proof) == 0 {
		return nil, errorsmod.Wrapf(ErrProofMissing, "consensus state %v of %s at %v", consensusHeight, clientID, queryHeight)
	}
	return res, nil
}

// QueryClientStatePair returns the proven client states of both sides of a
// relay path. The two queries are causally independent and run
// concurrently.
func QueryClientStatePair(
	ctx context.Context,
	src, dst *ProvableChain,
	srcHeight, dstHeight QueryHeight,
	srcClientID, dstClientID ClientID,
) (srcRes, dstRes *clienttypes.QueryClientStateResponse, err error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		srcRes, err = QueryClientFullState(egCtx, src, srcHeight, srcClientID, true)
		return err
	})
	eg.Go(func() error {
		var err error
		dstRes, err = QueryClientFullState(egCtx, dst, dstHeight, dstClientID, true)
		return err
	})
	err = eg.Wait()
	return
}

// QueryClientConsensusStatePair returns the proven consensus states of both
// sides of a relay path.
func QueryClientConsensusStatePair(
	ctx context.Context,
	src, dst *ProvableChain,
	srcHeight, dstHeight QueryHeight,
	srcClientID, dstClientID ClientID,
	srcConsHeight, dstConsHeight ibcexported.Height,
) (srcRes, dstRes *clienttypes.QueryConsensusStateResponse, err error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		srcRes, err = QueryClientConsensusState(egCtx, src, srcHeight, srcClientID, srcConsHeight, true)
		return err
	})
	eg.Go(func() error {
		var err error
		dstRes, err = QueryClientConsensusState(egCtx, dst, dstHeight, dstClientID, dstConsHeight, true)
		return err
	})
	err = eg.Wait()
	return
}
