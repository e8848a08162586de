package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

const (
	envPrefix = "ORCHESTRATOR_"

	DefaultProxyURL = "https://api.basistheory.com/proxy"

	AdyenTestURL        = "https://checkout-test.adyen.com/v71"
	adyenLiveURLPattern = "https://%s-checkout-live.adyenpayments.com/checkout/v71"
	CheckoutSandboxURL  = "https://api.sandbox.checkout.com"
	CheckoutLiveURL     = "https://api.checkout.com"
)

var ErrNoProviderConfigured = errors.New("at least one payment provider must be configured")

type Config struct {
	Primary      Primary            `koanf:"primary"`
	Server       ServerConfig       `koanf:"server"`
	Logger       LoggerConfig       `koanf:"logger"`
	Orchestrator OrchestratorConfig `koanf:"orchestrator"`
	Proxy        ProxyConfig        `koanf:"proxy"`
	Adyen        *AdyenConfig       `koanf:"adyen"`
	Checkout     *CheckoutConfig    `koanf:"checkout"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type OrchestratorConfig struct {
	IsTest bool `koanf:"is_test"`
	// ClientTimeout bounds each outbound call; zero leaves the transport default.
	ClientTimeout time.Duration `koanf:"client_timeout"`
}

type ProxyConfig struct {
	APIKey string `koanf:"api_key"`
	URL    string `koanf:"url" validate:"omitempty,url"`
}

type AdyenConfig struct {
	APIKey           string `koanf:"api_key" validate:"required"`
	MerchantAccount  string `koanf:"merchant_account" validate:"required"`
	ProductionPrefix string `koanf:"production_prefix"`
	BaseURL          string `koanf:"base_url" validate:"omitempty,url"`
}

// ResolveBaseURL picks the test or merchant-specific live endpoint.
func (c *AdyenConfig) ResolveBaseURL(isTest bool) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if isTest {
		return AdyenTestURL
	}
	return fmt.Sprintf(adyenLiveURLPattern, c.ProductionPrefix)
}

type CheckoutConfig struct {
	PrivateKey        string `koanf:"private_key" validate:"required"`
	PublicKey         string `koanf:"public_key"`
	ProcessingChannel string `koanf:"processing_channel"`
	BaseURL           string `koanf:"base_url" validate:"omitempty,url"`
}

func (c *CheckoutConfig) ResolveBaseURL(isTest bool) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if isTest {
		return CheckoutSandboxURL
	}
	return CheckoutLiveURL
}

// ValidateProviders checks only the settings adapters need, so a Config can be
// built in code without server settings.
func (c *Config) ValidateProviders() error {
	if c.Adyen == nil && c.Checkout == nil {
		return ErrNoProviderConfigured
	}

	validate := validator.New()
	if c.Adyen != nil {
		if err := validate.Struct(c.Adyen); err != nil {
			return fmt.Errorf("adyen config: %w", err)
		}
		if !c.Orchestrator.IsTest && c.Adyen.BaseURL == "" && c.Adyen.ProductionPrefix == "" {
			return errors.New("adyen config: production_prefix is required outside test mode")
		}
	}
	if c.Checkout != nil {
		if err := validate.Struct(c.Checkout); err != nil {
			return fmt.Errorf("checkout config: %w", err)
		}
	}
	if err := validate.Struct(c.Proxy); err != nil {
		return fmt.Errorf("proxy config: %w", err)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if err := mainConfig.ValidateProviders(); err != nil {
		logger.Error("provider config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
