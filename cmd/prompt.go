package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jrh3k5/nft-price-checker/internal/nft"
	"github.com/manifoldco/promptui"
)

var errUserCanceled = errors.New("user canceled operation")

// promptInput asks for every lookup field the user did not supply on the command line.
func promptInput(input nft.Input, chainGiven bool) (nft.Input, error) {
	if !chainGiven {
		chain, err := promptChain(input.Chain)
		if err != nil {
			return nft.Input{}, err
		}
		input.Chain = chain
	}

	if strings.TrimSpace(input.ContractAddress) == "" {
		contractAddress, err := promptRequired("Contract Address")
		if err != nil {
			return nft.Input{}, err
		}
		input.ContractAddress = contractAddress
	}

	if strings.TrimSpace(input.TokenID) == "" {
		tokenID, err := promptRequired("Token ID")
		if err != nil {
			return nft.Input{}, err
		}
		input.TokenID = tokenID
	}

	return input, nil
}

func promptChain(defaultChain nft.Chain) (nft.Chain, error) {
	chains := nft.SupportedChains()

	items := make([]string, 0, len(chains))
	cursorPos := 0
	for i, chain := range chains {
		items = append(items, chain.String())
		if chain == defaultChain {
			cursorPos = i
		}
	}

	selector := promptui.Select{
		Label:     "Blockchain",
		Items:     items,
		CursorPos: cursorPos,
	}

	selIdx, _, err := selector.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errUserCanceled
		}

		return "", fmt.Errorf("chain prompt failed: %w", err)
	}

	return chains[selIdx], nil
}

func promptRequired(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: requireNonBlank(label),
	}

	value, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errUserCanceled
		}

		return "", fmt.Errorf("%s prompt failed: %w", strings.ToLower(label), err)
	}

	return strings.TrimSpace(value), nil
}

func requireNonBlank(label string) promptui.ValidateFunc {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}

		return nil
	}
}
