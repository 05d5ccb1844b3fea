package cmd

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/crossline-labs/crossline-relayer/config"
	"github.com/crossline-labs/crossline-relayer/log"
	"github.com/crossline-labs/crossline-relayer/metrics"
	"github.com/crossline-labs/crossline-relayer/telemetry"
)

const (
	appName        = "xlr"
	configFileName = "config.json"
)

var (
	homePath    string
	debug       bool
	defaultHome = os.ExpandEnv("$HOME/.xlr")

	shutdownTracer func(context.Context) error
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute(modules ...config.ModuleI) error {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "This application relays client state between configured IBC enabled chains",
		SilenceUsage: true,
	}

	codec := config.MakeCodec(modules)
	registry := config.NewRegistry()
	for _, module := range modules {
		module.RegisterConfigs(registry)
	}

	ctx := &config.Context{
		Modules:  modules,
		Registry: registry,
		Codec:    codec,
		Config:   &config.Config{},
	}

	rootCmd.PersistentFlags().StringVar(&homePath, "home", defaultHome, "set home directory")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := initConfig(ctx, cmd); err != nil {
			return err
		}
		lc := ctx.Config.Global.LoggerConfig
		if err := log.InitLogger(lc.Level, lc.Format, lc.Output); err != nil {
			return err
		}
		var exporterConf metrics.ExporterConfig = metrics.ExporterNull{}
		if addr := ctx.Config.Global.MetricsAddr; addr != "" {
			exporterConf = metrics.ExporterProm{Addr: addr}
		}
		if err := metrics.InitializeMetrics(exporterConf); err != nil {
			return fmt.Errorf("failed to initialize metrics: %v", err)
		}
		shutdown, err := telemetry.InitTracer(cmd.Context(), ctx.Config.Global.TracerConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %v", err)
		}
		shutdownTracer = shutdown
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if shutdownTracer != nil {
			if err := shutdownTracer(cmd.Context()); err != nil {
				return err
			}
		}
		return metrics.ShutdownMetrics(cmd.Context())
	}

	rootCmd.AddCommand(
		configCmd(ctx),
		chainsCmd(ctx),
		queryCmd(ctx),
	)
	rootCmd.AddCommand(moduleCmds(ctx)...)

	return rootCmd.Execute()
}

// moduleCmds collects the per-module commands; modules without a command
// contribute nothing.
func moduleCmds(ctx *config.Context) []*cobra.Command {
	var cmds []*cobra.Command
	for _, module := range ctx.Modules {
		if cmd := module.GetCmd(ctx); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func configPath(home string) string {
	return path.Join(home, "config", configFileName)
}

func noCommand(cmd *cobra.Command, _ []string) error {
	return fmt.Errorf("no command specified, see %q for the available subcommands", cmd.CommandPath()+" --help")
}
