package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/config"
)

func configCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "manage configuration file",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		configShowCmd(ctx),
		configInitCmd(ctx),
	)

	return cmd
}

// Command for inititalizing an empty config at the --home location
func configInitCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Creates a default home directory at path defined by --home",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := ctx.Config.ConfigPath
			if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
				return fmt.Errorf("config already exists: %s", cfgPath)
			}

			if err := os.MkdirAll(filepath.Dir(cfgPath), os.ModePerm); err != nil {
				return err
			}
			defConfig := config.DefaultConfig(cfgPath)
			out, err := config.MarshalJSON(defConfig)
			if err != nil {
				return err
			}
			return os.WriteFile(cfgPath, out, 0600)
		},
	}
	return cmd
}

// Command for printing current configuration
func configShowCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s", "list", "l"},
		Short:   "Prints current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := ctx.Config.ConfigPath
			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				return fmt.Errorf("config does not exist: %s", cfgPath)
			}

			out, err := config.MarshalJSON(*ctx.Config)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	return cmd
}

// initConfig reads in the config file before each command. A missing file
// is not an error: commands run against the default config until `config
// init` creates one.
func initConfig(ctx *config.Context, cmd *cobra.Command) error {
	cfgPath := configPath(homePath)
	if _, err := os.Stat(cfgPath); err != nil {
		defConfig := config.DefaultConfig(cfgPath)
		ctx.Config = &defConfig
		return nil
	}

	file, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
	}
	if err := config.UnmarshalJSON(file, ctx.Config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	ctx.Config.ConfigPath = cfgPath

	if err := ctx.Config.InitChains(ctx.Registry, ctx.Codec, homePath, debug); err != nil {
		return fmt.Errorf("failed to initialize chains: %w", err)
	}
	return nil
}
