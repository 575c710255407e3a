package web

import (
	"context"
	"fmt"
	"log"

	"github.com/meganhq/megan-web/internal/services/web"
)

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config, logger *log.Logger) error {
	server, err := web.New(web.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AppName:       cfg.AppName,
		AccountAPIURL: cfg.AccountAPIURL,
		DBPath:        cfg.DBPath,
		SessionSecret: cfg.SessionSecret,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
