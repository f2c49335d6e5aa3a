package main

import (
	"fmt"

	"github.com/jrh3k5/nft-price-checker/internal/nft"
	"github.com/spf13/cobra"
)

func newChainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the chains that can be looked up",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, chain := range nft.SupportedChains() {
				suffix := ""
				if chain == nft.DefaultChain {
					suffix = " (default)"
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", chain, suffix)
			}
		},
	}
}
