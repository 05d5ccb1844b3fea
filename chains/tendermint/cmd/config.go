package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/chains/tendermint"
	"github.com/crossline-labs/crossline-relayer/config"
)

func configCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration file",
	}

	cmd.AddCommand(
		generateChainConfigCmd(),
	)

	return cmd
}

func generateChainConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [chain-id]",
		Short: "print a chain config entry with default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := tendermint.ChainConfig{
				ChainId:              args[0],
				RpcAddr:              "http://localhost:26657",
				AverageBlockTimeMsec: tendermint.DefaultAverageBlockTimeMsec,
				MaxRetryForQuery:     tendermint.DefaultMaxRetryForQuery,
			}
			bz, err := config.MarshalTypedConfig(tendermint.ModuleName, &c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	return cmd
}
