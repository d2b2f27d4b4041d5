package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/mailbridge/core/config"
	"github.com/dmitrymomot/mailbridge/core/email"
	"github.com/dmitrymomot/mailbridge/core/handler"
	"github.com/dmitrymomot/mailbridge/core/health"
	"github.com/dmitrymomot/mailbridge/core/response"
	"github.com/dmitrymomot/mailbridge/core/router"
	"github.com/dmitrymomot/mailbridge/core/server"
	"github.com/dmitrymomot/mailbridge/integration/email/smtp"
	"github.com/dmitrymomot/mailbridge/middleware"
)

// MetricsNamespace prefixes every exported metric.
const MetricsNamespace = "mailbridge"

// MaxRequestBody caps POST /send-email bodies.
const MaxRequestBody int64 = 1 << 20

// App is the assembled bridge: configuration, transport, router and server.
type App struct {
	config    Config
	hasConfig bool

	logger   *slog.Logger
	sender   email.Sender
	server   *server.Server
	registry *prometheus.Registry
	handlers *Handlers
	router   router.Router[*router.Context]
}

// AppOption customizes NewApp.
type AppOption func(*App) error

// NewApp builds the bridge. Without WithConfig the configuration is loaded
// from the environment; without WithSender an SMTP client is built from it.
// Nothing touches the network until Run.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{logger: slog.New(slog.DiscardHandler)}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.hasConfig {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.sender == nil {
		client, err := smtp.New(app.config.SMTP)
		if err != nil {
			return nil, err
		}
		app.sender = client
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	if app.registry == nil {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	metrics, err := NewMetrics(app.registry, MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	app.handlers = NewHandlers(app.sender, app.config.SMTP.From, app.logger, metrics)

	if err := app.routes(); err != nil {
		return nil, err
	}

	return app, nil
}

// WithConfig skips loading configuration from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.hasConfig = true
		return nil
	}
}

// WithLogger sets the logger shared by the server, router and handlers.
func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

// WithSender replaces the SMTP client, e.g. with email.DevSender.
func WithSender(sender email.Sender) AppOption {
	return func(app *App) error {
		if sender == nil {
			return errors.New("sender cannot be nil")
		}
		app.sender = sender
		return nil
	}
}

// WithServer replaces the server built from Config.Server.
func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

// WithRegistry exports metrics from reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(app *App) error {
		if reg == nil {
			return errors.New("registry cannot be nil")
		}
		app.registry = reg
		return nil
	}
}

func (app *App) routes() error {
	r := router.New(
		router.WithErrorHandler(ErrorHandler(app.logger)),
		router.WithLogger[*router.Context](app.logger),
	)

	httpMetrics, err := middleware.NewHTTPMetrics(app.registry, MetricsNamespace)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	r.UseHTTP(
		middleware.RequestID(),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: app.logger,
			Skip:   isProbe,
		}),
		httpMetrics.Middleware(),
		middleware.CORS(middleware.CORSConfig{AllowOrigins: app.config.CORSAllowedOrigins}),
	)
	r.Use(middleware.BodyLimitWithConfig[*router.Context](middleware.BodyLimitConfig{
		MaxSize: MaxRequestBody,
		ErrorHandler: func(_ *http.Request, contentLength, maxSize int64) handler.Response {
			return response.Error(reject(ErrMalformedBody, fmt.Errorf("body of %d bytes exceeds %d", contentLength, maxSize)))
		},
	}))

	r.Get("/healthz", health.Liveness[*router.Context])
	r.Get("/readyz", health.Readiness[*router.Context](app.logger, app.readinessChecks()...))
	r.Post("/send-email", app.handlers.SendEmail)

	if app.config.MetricsEnabled {
		r.Mount("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{
			Registry: app.registry,
		}))
	}

	app.router = r
	return nil
}

func (app *App) readinessChecks() []func(context.Context) error {
	if p, ok := app.sender.(interface{ Ping(context.Context) error }); ok {
		return []func(context.Context) error{p.Ping}
	}
	return nil
}

func isProbe(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return false
}

// Handler returns the HTTP surface of the bridge.
func (app *App) Handler() http.Handler {
	return app.router
}

// Handlers returns the send pipeline, for callers outside HTTP.
func (app *App) Handlers() *Handlers {
	return app.handlers
}

// Config returns the effective configuration.
func (app *App) Config() Config {
	return app.config
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
// It plugs into errgroup.Group.Go.
func (app *App) Run(ctx context.Context) func() error {
	return app.server.Run(ctx, app.router)
}

// Ready is closed once the listener is bound.
func (app *App) Ready() <-chan struct{} {
	return app.server.Ready()
}

// Addr returns the bound listener address once Ready is closed.
func (app *App) Addr() string {
	return app.server.Addr()
}
