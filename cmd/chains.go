package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/config"
)

func chainsCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains",
		Short: "manage chain configurations",
		RunE:  noCommand,
	}

	cmd.AddCommand(
		chainsAddDirCmd(ctx),
	)

	return cmd
}

func chainsAddDirCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-dir [dir]",
		Args:  cobra.ExactArgs(1),
		Short: "Add new chains to the configuration file from a directory full of chain configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filesAdd(ctx, args[0]); err != nil {
				return err
			}
			return overWriteConfig(ctx)
		},
	}

	return cmd
}

func filesAdd(ctx *config.Context, dir string) error {
	dir = path.Clean(dir)
	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		pth := path.Join(dir, f.Name())
		if f.IsDir() {
			fmt.Printf("directory at %s, skipping...\n", pth)
			continue
		}
		byt, err := os.ReadFile(pth)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %v", pth, err)
		}
		var c config.ChainProverConfig
		if err := json.Unmarshal(byt, &c); err != nil {
			return fmt.Errorf("failed to unmarshal file %s: %v", pth, err)
		}
		if err := c.Init(ctx.Registry); err != nil {
			return fmt.Errorf("failed to init chain %s: %v", pth, err)
		}
		if err := ctx.Config.AddChain(c); err != nil {
			return fmt.Errorf("failed to add chain %s: %v", pth, err)
		}
		chain, err := c.Build()
		if err != nil {
			return err
		}
		fmt.Printf("added %s...\n", chain.ChainID())
	}
	return nil
}

func overWriteConfig(ctx *config.Context) error {
	out, err := config.MarshalJSON(*ctx.Config)
	if err != nil {
		return err
	}
	return os.WriteFile(ctx.Config.ConfigPath, out, 0600)
}
