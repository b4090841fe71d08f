package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"rantbox/app/apperrors"
)

// Config holds all configuration for the service. It is assembled once at
// startup and passed down explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// AppName and AppVersion are the tag identity separating this
	// application's transactions from everything else on the shared ledger.
	AppName    string
	AppVersion string

	// WalletID is the owner address every tag query is scoped to.
	WalletID string

	// WalletPath points at the RSA JWK file used to sign transactions.
	WalletPath string

	// GatewayURL is the Arweave gateway base URL.
	GatewayURL string

	// Timeout bounds every gateway call.
	Timeout time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables. Required fields that
// are absent produce a configuration error rather than a partial config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       8000,
		GatewayURL: "https://arweave.net",
		Timeout:    20 * time.Second,
		LogLevel:   "info",
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindConfiguration, "invalid PORT", err)
		}
		cfg.Port = port
	}

	cfg.AppName = os.Getenv("APP_NAME")
	if cfg.AppName == "" {
		return nil, apperrors.Configuration("APP_NAME is not defined in the environment variables")
	}

	cfg.AppVersion = os.Getenv("APP_VERSION")
	if cfg.AppVersion == "" {
		return nil, apperrors.Configuration("APP_VERSION is not defined in the environment variables")
	}

	cfg.WalletID = os.Getenv("WALLET_ID")
	if cfg.WalletID == "" {
		return nil, apperrors.Configuration("WALLET_ID is not defined in the environment variables")
	}

	cfg.WalletPath = os.Getenv("WALLET_PATH")
	if cfg.WalletPath == "" {
		return nil, apperrors.Configuration("WALLET_PATH is not defined in the environment variables")
	}

	if u := os.Getenv("ARWEAVE_URL"); u != "" {
		cfg.GatewayURL = u
	}

	if t := os.Getenv("ARWEAVE_TIMEOUT"); t != "" {
		secs, err := strconv.Atoi(t)
		if err != nil || secs <= 0 {
			return nil, apperrors.Configuration(fmt.Sprintf("invalid ARWEAVE_TIMEOUT: %q", t))
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
