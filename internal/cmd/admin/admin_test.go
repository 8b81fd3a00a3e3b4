package admin

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8082" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/admin.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.BackendURL != "http://localhost:3000/api" {
		t.Fatalf("expected default backend url, got %q", cfg.BackendURL)
	}
	if cfg.HealthAddr != "" {
		t.Fatalf("expected health disabled, got %q", cfg.HealthAddr)
	}
	if cfg.Probe {
		t.Fatal("expected probe off by default")
	}
}

func TestParseConfigEnvAndFlagOverrides(t *testing.T) {
	t.Setenv("CASHDESK_ADMIN_HTTP_ADDR", "env-admin")
	t.Setenv("CASHDESK_BACKEND_URL", "http://env-backend/api")
	t.Setenv("CASHDESK_ADMIN_ID", "admin-7")
	t.Setenv("CASHDESK_ADMIN_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	args := []string{"-http-addr", "flag-admin", "-health-addr", "127.0.0.1:9090", "-probe"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.BackendURL != "http://env-backend/api" {
		t.Fatalf("expected env backend url, got %q", cfg.BackendURL)
	}
	if cfg.AdminID != "admin-7" {
		t.Fatalf("expected env admin id, got %q", cfg.AdminID)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("expected trusted forwarded proto from env")
	}
	if cfg.HealthAddr != "127.0.0.1:9090" || !cfg.Probe {
		t.Fatalf("expected probe config, got %+v", cfg)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("CASHDESK_ADMIN_TRUST_FORWARDED_PROTO", "sometimes")

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestProbeRequiresAddr(t *testing.T) {
	if err := Probe(context.Background(), " "); err == nil {
		t.Fatal("expected error for blank health addr")
	}
}
