// Package admin parses admin command flags and starts the operator dashboard.
package admin

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/louisbranch/cashdesk/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/cashdesk/internal/platform/grpc"
	"github.com/louisbranch/cashdesk/internal/platform/timeouts"
	"github.com/louisbranch/cashdesk/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr            string `env:"CASHDESK_ADMIN_HTTP_ADDR" envDefault:":8082"`
	HealthAddr          string `env:"CASHDESK_ADMIN_HEALTH_ADDR"`
	DBPath              string `env:"CASHDESK_ADMIN_DB_PATH" envDefault:"data/admin.db"`
	BackendURL          string `env:"CASHDESK_BACKEND_URL" envDefault:"http://localhost:3000/api"`
	AdminID             string `env:"CASHDESK_ADMIN_ID"`
	FilesURL            string `env:"CASHDESK_ADMIN_FILES_URL"`
	TrustForwardedProto bool   `env:"CASHDESK_ADMIN_TRUST_FORWARDED_PROTO"`

	// Probe checks HealthAddr and exits instead of serving.
	Probe bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (disabled when empty)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "review journal SQLite path")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "backend REST API base URL")
	fs.StringVar(&cfg.AdminID, "admin-id", cfg.AdminID, "operator id sent on bank detail writes")
	fs.StringVar(&cfg.FilesURL, "files-url", cfg.FilesURL, "base URL for uploaded receipts and documents")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto")
	fs.BoolVar(&cfg.Probe, "probe", false, "wait for the health endpoint to report SERVING and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin server, or probes a running one when cfg.Probe is set.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Probe {
		return Probe(ctx, cfg.HealthAddr)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(admin.Config{
			HTTPAddr:            cfg.HTTPAddr,
			HealthAddr:          cfg.HealthAddr,
			DBPath:              cfg.DBPath,
			BackendURL:          cfg.BackendURL,
			AdminID:             cfg.AdminID,
			FilesURL:            cfg.FilesURL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}

// Probe waits up to timeouts.HealthWait for the admin health service.
func Probe(ctx context.Context, addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("health address is required")
	}
	conn, err := platformgrpc.Dial(addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, timeouts.HealthWait)
	defer cancel()
	return platformgrpc.WaitForHealth(ctx, conn, admin.HealthServiceName, log.Printf)
}
