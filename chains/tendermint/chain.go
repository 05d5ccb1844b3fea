package tendermint

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	libclient "github.com/cometbft/cometbft/rpc/jsonrpc/client"
	"github.com/cosmos/cosmos-sdk/codec"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	ibcexported "github.com/cosmos/ibc-go/v8/modules/core/exported"

	"github.com/crossline-labs/crossline-relayer/core"
	"github.com/crossline-labs/crossline-relayer/log"
)

var (
	rtyDel = retry.Delay(time.Millisecond * 400)
	rtyErr = retry.LastErrorOnly(true)
)

// Chain reads IBC state from a CometBFT chain over RPC.
type Chain struct {
	config ChainConfig

	client rpcclient.Client

	codec    codec.ProtoCodecMarshaler
	homePath string
	timeout  time.Duration
	debug    bool
}

var _ core.Chain = (*Chain)(nil)

func (c *Chain) ChainID() string {
	return c.config.ChainId
}

func (c *Chain) Config() ChainConfig {
	return c.config
}

func (c *Chain) Codec() codec.ProtoCodecMarshaler {
	return c.codec
}

func (c *Chain) Init(homePath string, timeout time.Duration, codec codec.ProtoCodecMarshaler, debug bool) error {
	client, err := newRPCClient(c.config.RpcAddr, timeout)
	if err != nil {
		return err
	}

	c.client = client
	c.codec = codec
	c.homePath = homePath
	c.timeout = timeout
	c.debug = debug
	return nil
}

// LatestHeight queries the chain for the latest height and returns it
func (c *Chain) LatestHeight(ctx context.Context) (ibcexported.Height, error) {
	res, err := c.client.Status(ctx)
	if err != nil {
		return nil, err
	} else if res.SyncInfo.CatchingUp {
		return nil, fmt.Errorf("node at %s running chain %s not caught up", c.config.RpcAddr, c.ChainID())
	}
	revision := clienttypes.ParseChainID(c.ChainID())
	return clienttypes.NewHeight(revision, uint64(res.SyncInfo.LatestBlockHeight)), nil
}

func newRPCClient(addr string, timeout time.Duration) (*rpchttp.HTTP, error) {
	httpClient, err := libclient.DefaultHTTPClient(addr)
	if err != nil {
		return nil, err
	}

	httpClient.Timeout = timeout
	rpcClient, err := rpchttp.NewWithClient(addr, "/websocket", httpClient)
	if err != nil {
		return nil, err
	}

	return rpcClient, nil
}

func GetChainLogger() *log.RelayLogger {
	return log.GetLogger().
		WithModule("tendermint.chain")
}
