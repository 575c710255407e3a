// Package web composes the Megan marketing site and account frontend.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/meganhq/megan-web/internal/platform/timeouts"
	"github.com/meganhq/megan-web/internal/services/web/gateway"
	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/modules"
	"github.com/meganhq/megan-web/internal/services/web/platform/httpx"
	"github.com/meganhq/megan-web/internal/services/web/platform/observability"
	"github.com/meganhq/megan-web/internal/services/web/platform/pagerender"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
	"github.com/meganhq/megan-web/internal/services/web/session"
	"github.com/meganhq/megan-web/internal/services/web/static"
	"github.com/meganhq/megan-web/internal/services/web/storage/sqlite"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	AppName  string
	// AccountAPIURL is the base URL of the account REST service. When empty
	// the site still serves, with account flows reporting unavailability.
	AccountAPIURL string
	// DBPath is the SQLite file holding sessions and flow state.
	DBPath string
	// SessionSecret signs the browser session cookie.
	SessionSecret string
	Logger        *log.Logger
}

// Server hosts the web HTTP server and its session store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
	logger     *log.Logger
}

// NewHandler assembles the full web handler: module routes, static assets,
// and the shared middleware chain. The returned store must be closed by the
// caller when the handler is retired.
func NewHandler(config Config) (http.Handler, *sqlite.Store, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	if config.SessionSecret == "" {
		return nil, nil, errors.New("session secret is required")
	}

	store, err := sqlite.Open(config.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}
	sessions, err := session.NewManager(store, []byte(config.SessionSecret))
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("build session manager: %w", err)
	}

	var accounts gateway.AccountGateway
	if config.AccountAPIURL != "" {
		accounts, err = gateway.NewClient(config.AccountAPIURL, nil)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("build account gateway: %w", err)
		}
	} else {
		logger.Printf("account API URL not configured; account flows are unavailable")
		accounts = gateway.Unavailable{}
	}

	appName := config.AppName
	if appName == "" {
		appName = "Megan"
	}
	deps := module.Dependencies{
		AppName:  appName,
		Accounts: accounts,
		Sessions: sessions,
		Store:    store,
		Renderer: pagerender.Renderer{AppName: appName, Sessions: sessions},
		Logger:   logger,
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	for _, mod := range modules.Default(deps) {
		mount, err := mod.Mount()
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("mount %s module: %w", mod.ID(), err)
		}
		if reporter, ok := mod.(module.HealthReporter); ok && !reporter.Healthy() {
			logger.Printf("module %s mounted degraded", mod.ID())
		}
		for _, prefix := range mount.Prefixes {
			if prefix == routepath.Root {
				mux.Handle(routepath.Root, mount.Handler)
				continue
			}
			mux.Handle(prefix, mount.Handler)
			mux.Handle(prefix+"/", mount.Handler)
		}
	}

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)
	return handler, store, nil
}

// New builds the web server from configuration.
func New(config Config) (*Server, error) {
	handler, store, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	httpServer := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   config.HTTPAddr,
		httpServer: httpServer,
		store:      store,
		logger:     logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session store held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Printf("close session store: %v", err)
		}
	}
}
