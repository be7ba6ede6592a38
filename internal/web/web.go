package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"anchorpoint-it.com/infopanel/internal/config"
	"anchorpoint-it.com/infopanel/internal/network"
)

//go:embed html/*.tmpl
var templateFS embed.FS

var pageNames = []string{"home", "datetime", "ip"}

// AddressResolver performs one public IP lookup per call.
type AddressResolver interface {
	Resolve(ctx context.Context) network.Result
}

// Application serves the information panel over HTTP.
type Application struct {
	logger   *zap.Logger
	resolver AddressResolver
	layout   string
	now      func() time.Time
	pages    map[string]*template.Template
	metrics  http.Handler
}

// New parses the embedded pages and returns a ready Application.
// gatherer may be nil, in which case /metrics is not served.
func New(logger *zap.Logger, resolver AddressResolver, display config.DisplayConfig, gatherer prometheus.Gatherer) (*Application, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		ts, err := template.ParseFS(templateFS, "html/base.layout.tmpl", "html/"+name+".page.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing %s page: %w", name, err)
		}
		pages[name] = ts
	}

	app := &Application{
		logger:   logger,
		resolver: resolver,
		layout:   display.DateTimeLayout,
		now:      time.Now,
		pages:    pages,
	}
	if gatherer != nil {
		app.metrics = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}
	return app, nil
}

// Routes returns the HTTP handler with all routes and middleware configured.
func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.logRequest)

	r.Get("/", app.home)
	r.Get("/datetime", app.dateTime)
	r.Get("/ip", app.publicIP)
	r.Get("/api/ip", app.apiPublicIP)
	r.Get("/health", app.health)
	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics)
	}

	return r
}
