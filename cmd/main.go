package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jrh3k5/nft-price-checker/internal/config"
	ctsslog "github.com/jrh3k5/nft-price-checker/internal/logging/slog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	switch {
	case err == nil:
		return
	case errors.Is(err, errLookupFailed):
		// the failure message has already been shown to the user
	case errors.Is(err, errUserCanceled):
		slog.InfoContext(ctx, "Lookup canceled")
	default:
		slog.ErrorContext(ctx, "Command failed", "error", err)
	}

	stop()
	os.Exit(1) //nolint:gocritic
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "nft-price-checker",
		Short: "Look up an NFT's metadata and most recent sale price",
		Long: fmt.Sprintf(`nft-price-checker queries an NFT metadata service for a single token,
identified by its chain, contract address and token ID, and shows its details
along with the most recent sale price in USD and in the chain's native currency.

The service location and API key are read from a YAML config file
(%s by default) and can be overridden with the
NFT_PRICE_CHECKER_BASE_URL and NFT_PRICE_CHECKER_API_KEY environment variables.`, config.DefaultPath),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := ctsslog.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(ctsslog.NewHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newLookupCommand(opts),
		newChainsCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the nft-price-checker version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
		},
	}
}
