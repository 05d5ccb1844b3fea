package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/config"
)

func TendermintCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tendermint",
		Short: "manage tendermint configurations",
	}

	cmd.AddCommand(
		configCmd(ctx),
	)

	return cmd
}
