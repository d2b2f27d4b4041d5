package bridge

import (
	"github.com/dmitrymomot/mailbridge/core/server"
	"github.com/dmitrymomot/mailbridge/integration/email/smtp"
)

// Config is the full bridge configuration, read once at startup.
type Config struct {
	Server server.Config
	SMTP   smtp.Config

	AppName  string `env:"APP_NAME" envDefault:"mailbridge"`
	Env      string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL"` // empty keeps the APP_ENV preset

	MetricsEnabled     bool     `env:"METRICS_ENABLED" envDefault:"true"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}
