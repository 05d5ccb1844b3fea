package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHeight = "height"
	flagProof  = "proof"
)

func heightFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Uint64(flagHeight, 0, "height to query the state at (0 for the latest height)")
	if err := viper.BindPFlag(flagHeight, cmd.Flags().Lookup(flagHeight)); err != nil {
		panic(err)
	}
	return cmd
}

func proofFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagProof, true, "request a membership proof along with the state")
	if err := viper.BindPFlag(flagProof, cmd.Flags().Lookup(flagProof)); err != nil {
		panic(err)
	}
	return cmd
}
