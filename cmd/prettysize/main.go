package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prettysize/internal/app"
	"prettysize/internal/config"
	"prettysize/internal/version"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prettysize",
		Short:         "Render byte counts as compact B/K/M/G strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFormatCommand(),
		newDemoCommand(),
		newServeCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

func newServeCommand() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the formatting HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnvOrFile(configPath)
			if err != nil {
				return err
			}
			application := app.Build(cfg)
			application.Run()
			return application.Err()
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration")
	return serveCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the prettysize version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Identifier())
		},
	}
}
