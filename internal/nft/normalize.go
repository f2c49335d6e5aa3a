package nft

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jrh3k5/nft-price-checker/internal/numeric"
)

const (
	usdPlaces    = 2
	nativePlaces = 5
)

// fieldRule maps a display field to the response paths it may be read from; the first truthy path wins.
type fieldRule struct {
	paths []string
	set   func(*DisplayRecord, string)
}

var scalarRules = []fieldRule{
	{paths: []string{"id", "nft_id"}, set: func(r *DisplayRecord, v string) { r.ID = v }},
	{paths: []string{"name"}, set: func(r *DisplayRecord, v string) { r.Name = v }},
	{paths: []string{"token_name"}, set: func(r *DisplayRecord, v string) { r.TokenName = v }},
	{paths: []string{"token_type", "contract.type"}, set: func(r *DisplayRecord, v string) { r.TokenType = v }},
	{paths: []string{"contract_address"}, set: func(r *DisplayRecord, v string) { r.ContractAddress = v }},
	{paths: []string{"rarity_rank", "rarity.rank"}, set: func(r *DisplayRecord, v string) { r.RarityRank = v }},
	{paths: []string{"rarity_score", "rarity.score"}, set: func(r *DisplayRecord, v string) { r.RarityScore = v }},
}

var (
	imagePaths = []string{"cached_images.medium_500_500", "cached_images.medium"}
	pricePaths = []string{"recent_price", "price"}
)

// Normalize projects a raw upstream response onto a DisplayRecord.
// It never fails: anything missing, falsy or malformed falls back to NotAvailable.
func Normalize(raw map[string]any) DisplayRecord {
	var record DisplayRecord
	for _, rule := range scalarRules {
		value, found := firstScalar(raw, rule.paths)
		if !found {
			value = NotAvailable
		}
		rule.set(&record, value)
	}

	if imageURL, found := firstScalar(raw, imagePaths); found {
		record.ImageURL = imageURL
		record.ImageAvailable = true
	}

	record.PriceUSD = NotAvailable
	record.PriceNative = NotAvailable

	price := firstObject(raw, pricePaths)
	if price == nil {
		return record
	}

	if usd, hasUSD := price["price_usd"]; hasUSD {
		if formatted, err := numeric.FormatFixed(usd, usdPlaces); err == nil {
			record.PriceUSD = formatted
		}
	}

	currency, hasCurrency := scalarString(price["price_currency"])
	if amount, hasAmount := price["price"]; hasAmount && hasCurrency {
		if formatted, err := numeric.FormatFixed(amount, nativePlaces); err == nil {
			record.PriceNative = formatted + " " + currency
		}
	}

	return record
}

// lookupPath walks a dot-separated path through nested objects.
func lookupPath(raw map[string]any, path string) (any, bool) {
	var current any = raw
	for _, key := range strings.Split(path, ".") {
		obj, isObject := current.(map[string]any)
		if !isObject {
			return nil, false
		}

		next, hasKey := obj[key]
		if !hasKey {
			return nil, false
		}
		current = next
	}

	return current, true
}

func firstScalar(raw map[string]any, paths []string) (string, bool) {
	for _, path := range paths {
		value, found := lookupPath(raw, path)
		if !found {
			continue
		}

		if s, truthy := scalarString(value); truthy {
			return s, true
		}
	}

	return "", false
}

func firstObject(raw map[string]any, paths []string) map[string]any {
	for _, path := range paths {
		value, found := lookupPath(raw, path)
		if !found {
			continue
		}

		if obj, isObject := value.(map[string]any); isObject {
			return obj
		}
	}

	return nil
}

// scalarString renders a truthy scalar JSON value as text.
// Empty strings, zero, false, null and non-scalar values are not truthy.
func scalarString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, typed != ""
	case json.Number:
		f, err := typed.Float64()
		if err == nil && f == 0 {
			return "", false
		}

		return typed.String(), true
	case float64:
		if typed == 0 {
			return "", false
		}

		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		if !typed {
			return "", false
		}

		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}
