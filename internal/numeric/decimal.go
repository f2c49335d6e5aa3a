package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxMagnitude bounds both the exponent and the digit count of accepted values;
// anything beyond it would expand into an unbounded string when formatted.
const maxMagnitude = 64

// ErrOutOfRange is returned for values too large or too precise to format.
var ErrOutOfRange = errors.New("decimal value out of range")

// DecimalFromValue converts a loosely-typed JSON value into a decimal.
// Strings and JSON numbers are accepted; anything else is rejected.
func DecimalFromValue(v any) (decimal.Decimal, error) {
	switch typed := v.(type) {
	case string:
		return DecimalFromString(typed)
	case json.Number:
		return DecimalFromString(typed.String())
	case float64:
		return checkRange(decimal.NewFromFloat(typed))
	case int:
		return decimal.NewFromInt(int64(typed)), nil
	case int64:
		return decimal.NewFromInt(typed), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported numeric value of type %T", v)
	}
}

// DecimalFromString parses a decimal string, ignoring surrounding whitespace.
func DecimalFromString(s string) (decimal.Decimal, error) {
	sanitized := strings.TrimSpace(s)
	if sanitized == "" {
		return decimal.Zero, fmt.Errorf("empty decimal string")
	}

	d, err := decimal.NewFromString(sanitized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal string '%s': %w", s, err)
	}

	return checkRange(d)
}

func checkRange(d decimal.Decimal) (decimal.Decimal, error) {
	exponent := d.Exponent()
	if exponent > maxMagnitude || exponent < -maxMagnitude || d.NumDigits() > maxMagnitude {
		return decimal.Zero, fmt.Errorf("%w: exponent %d, %d digits", ErrOutOfRange, exponent, d.NumDigits())
	}

	return d, nil
}

// FormatFixed parses v and renders it with exactly the given number of decimal places.
func FormatFixed(v any, places int32) (string, error) {
	d, err := DecimalFromValue(v)
	if err != nil {
		return "", err
	}

	return d.StringFixed(places), nil
}
