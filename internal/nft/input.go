package nft

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Input is the raw lookup request as entered by the user.
type Input struct {
	Chain           Chain  `json:"chain"`
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
}

// ValidationErrorKind classifies why an Input was rejected.
type ValidationErrorKind int

const (
	MissingField ValidationErrorKind = iota + 1
	UnsupportedChain
)

func (k ValidationErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case UnsupportedChain:
		return "unsupported chain"
	default:
		return "unknown"
	}
}

// ValidationError is returned when an Input cannot be turned into a request.
type ValidationError struct {
	Kind  ValidationErrorKind
	Field string // the offending input field, e.g. "token_id"
	Chain Chain  // set for UnsupportedChain
	cause error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case UnsupportedChain:
		return fmt.Sprintf("unsupported chain '%s'", e.Chain)
	default:
		if e.cause != nil {
			return fmt.Sprintf("%s '%s': %v", e.Kind, e.Field, e.cause)
		}

		return fmt.Sprintf("%s '%s'", e.Kind, e.Field)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// UserMessage is the text shown to the user in place of the error.
func (e *ValidationError) UserMessage() string {
	if e.Kind == UnsupportedChain {
		names := make([]string, 0, len(supportedChains))
		for _, c := range supportedChains {
			names = append(names, c.String())
		}

		return fmt.Sprintf(
			"Chain '%s' is not supported; choose one of: %s.",
			e.Chain,
			strings.Join(names, ", "),
		)
	}

	switch e.Field {
	case fieldContractAddress:
		return "Enter a contract address."
	case fieldTokenID:
		return "Enter a token ID."
	default:
		return "Enter a contract address and a token ID."
	}
}

const (
	fieldChain           = "chain"
	fieldContractAddress = "contract_address"
	fieldTokenID         = "token_id"
)

// normalized trims every field and applies the default chain.
func (in Input) normalized() Input {
	out := Input{
		Chain:           Chain(strings.TrimSpace(string(in.Chain))),
		ContractAddress: strings.TrimSpace(in.ContractAddress),
		TokenID:         strings.TrimSpace(in.TokenID),
	}
	if out.Chain == "" {
		out.Chain = DefaultChain
	}

	return out
}

// validate checks a normalized Input. Missing fields are reported ahead of an unsupported chain.
func (in Input) validate() error {
	chainValues := make([]any, 0, len(supportedChains))
	for _, c := range supportedChains {
		chainValues = append(chainValues, c)
	}

	err := validation.ValidateStruct(&in,
		validation.Field(&in.ContractAddress, validation.Required),
		validation.Field(&in.TokenID, validation.Required),
		validation.Field(&in.Chain, validation.Required, validation.In(chainValues...)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate lookup input: %w", err)
	}

	for _, field := range []string{fieldContractAddress, fieldTokenID} {
		if fieldErr, hasErr := fieldErrs[field]; hasErr {
			return &ValidationError{Kind: MissingField, Field: field, cause: fieldErr}
		}
	}

	if fieldErr, hasErr := fieldErrs[fieldChain]; hasErr {
		return &ValidationError{Kind: UnsupportedChain, Field: fieldChain, Chain: in.Chain, cause: fieldErr}
	}

	return fmt.Errorf("failed to validate lookup input: %w", err)
}
