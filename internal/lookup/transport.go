package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	ctshttp "github.com/jrh3k5/nft-price-checker/internal/http"
	ctsio "github.com/jrh3k5/nft-price-checker/internal/io"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
)

// TransportError wraps any failure to obtain a usable response from the upstream service.
type TransportError struct {
	StatusCode int // zero when no response was received
	cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("NFT lookup failed with status %d: %v", e.StatusCode, e.cause)
	}

	return fmt.Sprintf("NFT lookup failed: %v", e.cause)
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

var errNilClient = errors.New("http client is nil")

// fetch executes the request and decodes the response body into a loosely-typed object.
// Upstream error bodies are never inspected; every non-2xx status is treated alike.
func fetch(ctx context.Context, doer ctshttp.Doer, request *nft.Request) (map[string]any, error) {
	if doer == nil {
		return nil, &TransportError{cause: errNilClient}
	}

	req, err := request.HTTPRequest(ctx)
	if err != nil {
		return nil, &TransportError{cause: err}
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, &TransportError{cause: fmt.Errorf("failed to execute request for NFT lookup: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			cause:      fmt.Errorf("upstream API returned status %d", resp.StatusCode),
		}
	}

	decoder := json.NewDecoder(ctsio.StripUTF8BOM(resp.Body))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			cause:      fmt.Errorf("failed to decode NFT lookup response: %w", err),
		}
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			cause:      errors.New("NFT lookup response has trailing content after the JSON object"),
		}
	}

	if raw == nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			cause:      errors.New("NFT lookup response was null"),
		}
	}

	return raw, nil
}
