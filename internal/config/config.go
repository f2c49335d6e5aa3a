package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ctsio "github.com/jrh3k5/nft-price-checker/internal/io"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
	"go.yaml.in/yaml/v3"
)

const (
	// DefaultPath is read when no config file is named explicitly.
	DefaultPath = "nft-price-checker.yaml"

	defaultTimeout = 15 * time.Second

	envBaseURL      = "NFT_PRICE_CHECKER_BASE_URL"
	envAPIKey       = "NFT_PRICE_CHECKER_API_KEY" //nolint:gosec
	envDefaultChain = "NFT_PRICE_CHECKER_DEFAULT_CHAIN"
	envTimeout      = "NFT_PRICE_CHECKER_TIMEOUT"
)

// Config holds the settings needed to reach the NFT metadata service.
type Config struct {
	BaseURL      string        // root URL of the NFT metadata service
	APIKey       string        // sent as the X-API-KEY header
	DefaultChain nft.Chain     // chain used when none is given on the command line
	Timeout      time.Duration // upper bound on a single lookup request
}

type yamlConfig struct {
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	DefaultChain string `yaml:"default_chain"`
	Timeout      string `yaml:"timeout"`
}

// LookupEnv resolves environment variables; os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// Load reads the config file at filePath, if there is one, and applies environment overrides.
// The result is validated before it is returned.
func Load(filePath string, lookupEnv LookupEnv) (*Config, error) {
	cfg := &Config{
		DefaultChain: nft.DefaultChain,
		Timeout:      defaultTimeout,
	}

	reader, closer, found, err := ctsio.OpenOptional(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if found {
		defer func() { _ = closer.Close() }()

		if err := cfg.applyYAML(reader); err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
		}
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if err := cfg.applyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromYAML decodes a Config from its YAML representation without validating it.
func FromYAML(reader io.Reader) (*Config, error) {
	cfg := &Config{
		DefaultChain: nft.DefaultChain,
		Timeout:      defaultTimeout,
	}

	if err := cfg.applyYAML(reader); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyYAML(reader io.Reader) error {
	var ymlConfig yamlConfig
	if err := yaml.NewDecoder(reader).Decode(&ymlConfig); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file configures nothing
			return nil
		}

		return fmt.Errorf("failed to decode config from YAML: %w", err)
	}

	if ymlConfig.BaseURL != "" {
		c.BaseURL = ymlConfig.BaseURL
	}
	if ymlConfig.APIKey != "" {
		c.APIKey = ymlConfig.APIKey
	}
	if ymlConfig.DefaultChain != "" {
		c.DefaultChain = nft.Chain(ymlConfig.DefaultChain)
	}
	if ymlConfig.Timeout != "" {
		timeout, err := time.ParseDuration(ymlConfig.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", ymlConfig.Timeout, err)
		}
		c.Timeout = timeout
	}

	return nil
}

func (c *Config) applyEnv(lookupEnv LookupEnv) error {
	if v, ok := lookupEnv(envBaseURL); ok && strings.TrimSpace(v) != "" {
		c.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(envAPIKey); ok && strings.TrimSpace(v) != "" {
		c.APIKey = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(envDefaultChain); ok && strings.TrimSpace(v) != "" {
		c.DefaultChain = nft.Chain(strings.TrimSpace(v))
	}
	if v, ok := lookupEnv(envTimeout); ok && strings.TrimSpace(v) != "" {
		timeout, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s value '%s': %w", envTimeout, v, err)
		}
		c.Timeout = timeout
	}

	return nil
}

// Validate checks that the service location and credential have been supplied.
func (c *Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, fmt.Errorf("base URL is required; set base_url in the config file or %s", envBaseURL))
	}
	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("API key is required; set api_key in the config file or %s", envAPIKey))
	}
	if !c.DefaultChain.IsSupported() {
		errs = append(errs, fmt.Errorf("default chain '%s' is not supported", c.DefaultChain))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	return errors.Join(errs...)
}
