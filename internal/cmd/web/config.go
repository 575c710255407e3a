// Package web wires configuration into the web server.
package web

import (
	"flag"

	"github.com/meganhq/megan-web/internal/platform/config"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"MEGAN_WEB_HTTP_ADDR"`
	AppName       string `env:"MEGAN_WEB_APP_NAME"`
	AccountAPIURL string `env:"MEGAN_WEB_ACCOUNT_API_URL"`
	DBPath        string `env:"MEGAN_WEB_DB_PATH"`
	SessionSecret string `env:"MEGAN_WEB_SESSION_SECRET"`
}

// ParseConfig loads environment values, then lets flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr: defaultHTTPAddr,
		AppName:  "Megan",
		DBPath:   "megan-web.db",
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application display name")
	fs.StringVar(&cfg.AccountAPIURL, "account-api-url", cfg.AccountAPIURL, "Account service base URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite session database path")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session cookie signing secret")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
