// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package reads a .env file on first use (without overriding the real
// environment) and uses the caarlos0/env library for parsing environment
// variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/mailbridge/core/config"
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_HOST,required,notEmpty"`
//		Port uint16 `env:"SMTP_PORT" envDefault:"587"`
//		TLS  config.Switch `env:"SMTP_TLS"`
//	}
//
//	func main() {
//		var cfg SMTPConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		useTLS := cfg.TLS.Or(true)
//	}
//
// # Errors
//
// Failures are reported with two sentinels, each wrapped with the name of the
// offending variable. All failures of a single load are joined:
//
//	err := config.Load(&cfg)
//	errors.Is(err, config.ErrMissingVariable) // SMTP_HOST unset
//	errors.Is(err, config.ErrInvalidValue)    // SMTP_PORT=abc
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime.
// Parse bypasses the cache and the .env file; Reset clears the cache.
package config
