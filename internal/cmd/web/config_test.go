package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.AppName != "Megan" {
		t.Fatalf("AppName = %q, want %q", cfg.AppName, "Megan")
	}
	if cfg.DBPath != "megan-web.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "megan-web.db")
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigOverrideSessionSecret(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-session-secret", "s3cret"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.SessionSecret != "s3cret" {
		t.Fatalf("SessionSecret = %q, want %q", cfg.SessionSecret, "s3cret")
	}
}
