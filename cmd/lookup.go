package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jrh3k5/nft-price-checker/internal/config"
	"github.com/jrh3k5/nft-price-checker/internal/display"
	"github.com/jrh3k5/nft-price-checker/internal/lookup"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	outputText = "text"
	outputJSON = "json"

	spinnerInterval = 100 * time.Millisecond
)

var errLookupFailed = errors.New("lookup failed")

type lookupOptions struct {
	chain           string
	contractAddress string
	tokenID         string
	output          string
	noPrompt        bool
}

func newLookupCommand(root *rootOptions) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Check the recent price of an NFT",
		Example: `  nft-price-checker lookup --chain poly-main --contract 0xABC --token 42
  nft-price-checker lookup   # prompts for the chain, contract address and token ID`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.configPath, os.LookupEnv)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return runLookup(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.chain, "chain", "", "chain to query; defaults to the configured default chain")
	cmd.Flags().StringVar(&opts.contractAddress, "contract", "", "NFT contract address")
	cmd.Flags().StringVar(&opts.tokenID, "token", "", "NFT token ID")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "never prompt for missing input")

	return cmd
}

func runLookup(cmd *cobra.Command, cfg *config.Config, opts *lookupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	output := strings.ToLower(strings.TrimSpace(opts.output))
	if output != outputText && output != outputJSON {
		return fmt.Errorf("unsupported output format '%s'", opts.output)
	}

	chainGiven := cmd.Flags().Changed("chain")
	input := nft.Input{
		Chain:           nft.Chain(opts.chain),
		ContractAddress: opts.contractAddress,
		TokenID:         opts.tokenID,
	}
	if !chainGiven {
		input.Chain = cfg.DefaultChain
	}

	needsInput := strings.TrimSpace(input.ContractAddress) == "" || strings.TrimSpace(input.TokenID) == ""
	if needsInput && !opts.noPrompt && isTerminal(os.Stdin) {
		prompted, err := promptInput(input, chainGiven)
		if err != nil {
			return err
		}
		input = prompted
	}

	errOut := cmd.ErrOrStderr()
	loading := newLoadingIndicator(errOut, output == outputText)

	controller := lookup.NewController(
		&http.Client{Timeout: cfg.Timeout},
		nft.NewRequestBuilder(cfg.BaseURL, cfg.APIKey),
		lookup.WithStateListener(loading.update),
	)

	select {
	case <-controller.Submit(ctx, input):
	case <-ctx.Done():
		loading.stop()

		return errUserCanceled
	}

	state := controller.State()
	out := cmd.OutOrStdout()
	if output == outputJSON {
		if err := display.WriteJSON(out, state); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(out, display.NewRenderer(out).Render(state))
	}

	if state.Status() == lookup.StatusFailure {
		return errLookupFailed
	}

	return nil
}

// loadingIndicator shows a spinner for as long as a lookup is loading.
type loadingIndicator struct {
	spinner *spinner.Spinner
	enabled bool
}

func newLoadingIndicator(w io.Writer, enabled bool) *loadingIndicator {
	s := spinner.New(
		spinner.CharSets[14],
		spinnerInterval,
		spinner.WithWriter(w),
		spinner.WithSuffix(" Checking recent price..."),
	)

	return &loadingIndicator{spinner: s, enabled: enabled}
}

func (l *loadingIndicator) update(state lookup.State) {
	if !l.enabled {
		return
	}

	if state.Status() == lookup.StatusLoading {
		l.spinner.Start()

		return
	}

	l.stop()
}

func (l *loadingIndicator) stop() {
	if l.spinner.Active() {
		l.spinner.Stop()
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec
}
