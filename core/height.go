package core

import (
	"context"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"
)

// QueryHeight selects the chain height at which a query is evaluated:
// either the chain's latest available height or an exact historical height.
// Making the choice a two-case value keeps "unspecified" distinct from any
// real height, so a legitimate height zero can never be mistaken for
// "latest".
type QueryHeight struct {
	height clienttypes.Height
	latest bool
}

// LatestQueryHeight queries at whatever height the chain currently reports.
func LatestQueryHeight() QueryHeight {
	return QueryHeight{latest: true}
}

// ExactQueryHeight queries at the given historical height. The chain may
// reject the query if it has pruned that height.
func ExactQueryHeight(height clienttypes.Height) QueryHeight {
	return QueryHeight{height: height}
}

// QueryHeightFromFlag converts the CLI height surface, where 0 means
// "latest", into an explicit QueryHeight. revision is the revision number
// of the queried chain.
func QueryHeightFromFlag(revision, height uint64) QueryHeight {
	if height == 0 {
		return LatestQueryHeight()
	}
	return ExactQueryHeight(clienttypes.NewHeight(revision, height))
}

// IsLatest reports whether the query targets the latest available height.
func (qh QueryHeight) IsLatest() bool { return qh.latest }

// Exact returns the exact target height; ok is false for a latest query.
func (qh QueryHeight) Exact() (height clienttypes.Height, ok bool) {
	return qh.height, !qh.latest
}

func (qh QueryHeight) String() string {
	if qh.latest {
		return "latest"
	}
	return qh.height.String()
}

// Resolve turns qh into a concrete height, asking the chain for its latest
// height when the query is not pinned. This is the only place the query
// protocol consults chain state before the query proper.
func (qh QueryHeight) Resolve(ctx context.Context, chain Chain) (clienttypes.Height, error) {
	if !qh.latest {
		return qh.height, nil
	}
	latest, err := chain.LatestHeight(ctx)
	if err != nil {
		return clienttypes.Height{}, err
	}
	return toHeight(latest), nil
}

func toHeight(h ibcexported.Height) clienttypes.Height {
	return clienttypes.NewHeight(h.GetRevisionNumber(), h.GetRevisionHeight())
}
