// Package main provides the entry point for the oramactl CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oramasearch/oramacore-client-go/internal/version"
)

var (
	globalConfig     string
	globalURL        string
	globalCollection string
	globalLogLevel   string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "oramactl",
		Short:   "Manage OramaCore collections and documents",
		Version: version.Version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&globalURL, "url", "", "Service base URL")
	rootCmd.PersistentFlags().StringVar(&globalCollection, "collection", "", "Collection to operate on")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newCollectionCmd(),
		newDocCmd(),
		newVersionCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
