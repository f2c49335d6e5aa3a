package nft

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
)

const (
	headerAccept = "Accept"
	headerAPIKey = "X-API-KEY"

	mimeTypeJSON = "application/json"
)

// Request describes a single outbound lookup call. It is immutable once built.
type Request struct {
	url     string
	headers map[string]string
}

// URL returns the fully-qualified request URL, including the chain query parameter.
func (r *Request) URL() string {
	return r.url
}

// Method is always GET; the upstream service exposes no other verb for lookups.
func (r *Request) Method() string {
	return http.MethodGet
}

// Headers returns a copy of the request headers.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// HTTPRequest creates a new *http.Request bound to the given context.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method(), r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for NFT lookup: %w", err)
	}

	for name, value := range r.headers {
		req.Header.Set(name, value)
	}

	return req, nil
}

// RequestBuilder turns user input into lookup requests against a configured service.
type RequestBuilder struct {
	baseURL string
	apiKey  string
}

// NewRequestBuilder creates a RequestBuilder for the service at baseURL, authenticating with apiKey.
func NewRequestBuilder(baseURL string, apiKey string) *RequestBuilder {
	return &RequestBuilder{baseURL: baseURL, apiKey: apiKey}
}

// Build validates the input and returns the request for it.
// Invalid input yields a *ValidationError.
func (b *RequestBuilder) Build(input Input) (*Request, error) {
	in := input.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	reqURL, err := url.Parse(b.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL '%s': %w", b.baseURL, err)
	}

	rawPath := strings.TrimSuffix(reqURL.EscapedPath(), "/")
	for _, segment := range []string{"v1", "nfts", "contract", in.ContractAddress, "token", in.TokenID} {
		rawPath += "/" + escapePathSegment(segment)
	}

	unescapedPath, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build request path for NFT lookup: %w", err)
	}
	reqURL.Path = unescapedPath
	reqURL.RawPath = rawPath

	q := reqURL.Query()
	q.Set("chain", in.Chain.String())
	reqURL.RawQuery = q.Encode()

	return &Request{
		url: reqURL.String(),
		headers: map[string]string{
			headerAccept: mimeTypeJSON,
			headerAPIKey: b.apiKey,
		},
	}, nil
}

// escapePathSegment escapes a single path segment. Dot segments are percent-encoded
// so that neither this client nor the upstream resolves them against the path.
func escapePathSegment(segment string) string {
	switch segment {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(segment)
	}
}
