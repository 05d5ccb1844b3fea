package cmd

import (
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/config"
	"github.com/crossline-labs/crossline-relayer/core"
)

// queryCmd represents the chain command
func queryCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "IBC query commands",
		Long:  "Commands to query IBC client state on configured chains.",
		RunE:  noCommand,
	}

	cmd.AddCommand(
		queryClientCmd(ctx),
	)

	return cmd
}

func queryClientCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "query the client state of a configured chain",
		RunE:  noCommand,
	}

	cmd.AddCommand(
		queryClientStateCmd(ctx),
		queryClientConsensusCmd(ctx),
	)

	return cmd
}

// clientQueryOptions is the validated form of the common query arguments.
type clientQueryOptions struct {
	chain    *core.ProvableChain
	clientID core.ClientID
	height   core.QueryHeight
	revision uint64
	prove    bool
}

// validateClientOptions resolves the chain and client identifier arguments
// against the configuration. Everything is checked before any chain
// round-trip: an unconfigured chain or a malformed client identifier fails
// here.
func validateClientOptions(cfg *config.Config, chainID, clientID string, height uint64, prove bool) (*clientQueryOptions, error) {
	chain, err := cfg.GetChain(chainID)
	if err != nil {
		return nil, err
	}
	if clientID == "" {
		return nil, config.ErrMissingClientParam
	}
	parsed, err := core.ParseClientID(clientID)
	if err != nil {
		return nil, err
	}
	revision := clienttypes.ParseChainID(chain.ChainID())
	return &clientQueryOptions{
		chain:    chain,
		clientID: parsed,
		height:   core.QueryHeightFromFlag(revision, height),
		revision: revision,
		prove:    prove,
	}, nil
}

// parseConsensusHeight reads the consensus-height positional. Both the
// "revision-height" spelling and a bare height are accepted; a bare height
// is combined with the revision of the queried chain.
func parseConsensusHeight(arg string, revision uint64) (clienttypes.Height, error) {
	if height, err := clienttypes.ParseHeight(arg); err == nil {
		return height, nil
	}
	height, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return clienttypes.Height{}, errorsmod.Wrapf(core.ErrMissingConsensusHeight, "invalid consensus height %q", arg)
	}
	return clienttypes.NewHeight(revision, height), nil
}

func queryClientStateCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state [chain-id] [client-id]",
		Short: "Query the full state of a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := cmd.Flags().GetUint64(flagHeight)
			if err != nil {
				return err
			}
			prove, err := cmd.Flags().GetBool(flagProof)
			if err != nil {
				return err
			}
			opts, err := validateClientOptions(ctx.Config, args[0], args[1], height, prove)
			if err != nil {
				return err
			}

			res, err := core.QueryClientFullState(cmd.Context(), opts.chain, opts.height, opts.clientID, opts.prove)
			if err != nil {
				return err
			}
			return printProto(ctx, cmd, res)
		},
	}

	return proofFlag(heightFlag(cmd))
}

func queryClientConsensusCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consensus [chain-id] [client-id] [consensus-height]",
		Short: "Query the consensus state a client recorded for a counterparty height",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := cmd.Flags().GetUint64(flagHeight)
			if err != nil {
				return err
			}
			prove, err := cmd.Flags().GetBool(flagProof)
			if err != nil {
				return err
			}
			opts, err := validateClientOptions(ctx.Config, args[0], args[1], height, prove)
			if err != nil {
				return err
			}
			consensusHeight, err := parseConsensusHeight(args[2], opts.revision)
			if err != nil {
				return err
			}

			res, err := core.QueryClientConsensusState(cmd.Context(), opts.chain, opts.height, opts.clientID, consensusHeight, opts.prove)
			if err != nil {
				return err
			}
			return printProto(ctx, cmd, res)
		},
	}

	return proofFlag(heightFlag(cmd))
}

func printProto(ctx *config.Context, cmd *cobra.Command, msg proto.Message) error {
	out, err := ctx.Codec.MarshalJSON(msg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
