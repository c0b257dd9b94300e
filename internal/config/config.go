package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
// Payment provider credentials are injected here and must never appear in logs.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	RazorpayBaseURL     string
	RazorpayKeyID       string
	RazorpayKeySecret   string
	PaymentCurrency     string
	AdminID             string
	AdminPassword       string
	OperatorTokenSecret string
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultRazorpayBaseURL     = "https://api.razorpay.com"
	defaultPaymentCurrency     = "INR"
	defaultAdminID             = "Admin"
	defaultOperatorTokenSecret = "change-me-in-production"
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		RazorpayBaseURL:     getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		RazorpayKeyID:       getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:   getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		PaymentCurrency:     getString(lookup, "PAYMENT_CURRENCY", defaultPaymentCurrency),
		AdminID:             getString(lookup, "ADMIN_ID", defaultAdminID),
		AdminPassword:       getString(lookup, "ADMIN_PASSWORD", ""),
		OperatorTokenSecret: getString(lookup, "OPERATOR_TOKEN_SECRET", defaultOperatorTokenSecret),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("zestcart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RazorpayBaseURL, "r", cfg.RazorpayBaseURL, "Razorpay API base URL")
	fs.StringVar(&cfg.PaymentCurrency, "currency", cfg.PaymentCurrency, "Payment currency code")
	fs.StringVar(&cfg.AdminID, "admin-id", cfg.AdminID, "Operator identity seeded at startup")
	fs.StringVar(&cfg.OperatorTokenSecret, "token-secret", cfg.OperatorTokenSecret, "Secret for signing operator tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("RAZORPAY_KEY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read razorpay key secret file: %w", err)
		}
		cfg.RazorpayKeySecret = strings.TrimSpace(string(content))
	}

	if passwordFile, ok := lookup("ADMIN_PASSWORD_FILE"); ok && passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read admin password file: %w", err)
		}
		cfg.AdminPassword = strings.TrimSpace(string(content))
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PaymentCurrency == "" {
		cfg.PaymentCurrency = defaultPaymentCurrency
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
