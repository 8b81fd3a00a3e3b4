package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	platformgrpc "github.com/louisbranch/cashdesk/internal/platform/grpc"
	"github.com/louisbranch/cashdesk/internal/platform/timeouts"
	"github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"
	adminstorage "github.com/louisbranch/cashdesk/internal/services/admin/integration/storage"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/httpx"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/observability"
	"github.com/louisbranch/cashdesk/internal/services/admin/platform/requestmeta"
	adminsqlite "github.com/louisbranch/cashdesk/internal/services/admin/storage/sqlite"
)

// HealthServiceName is the grpc.health.v1 service name the admin process
// reports once its HTTP listener is up.
const HealthServiceName = "cashdesk.admin"

// Config defines the inputs for the admin operator process.
type Config struct {
	HTTPAddr string
	// HealthAddr enables the gRPC health endpoint when set.
	HealthAddr string
	// DBPath locates the review journal; defaults to data/admin.db.
	DBPath     string
	BackendURL string
	AdminID    string
	FilesURL   string
	// TrustForwardedProto honors X-Forwarded-Proto behind a TLS proxy.
	TrustForwardedProto bool
	// Logger receives request logs; nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the admin dashboard and its optional health endpoint.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *platformgrpc.HealthServer
	adminStore *adminsqlite.Store
	closeOnce  sync.Once
}

// NewServer opens the journal, builds the backend client and wires the
// HTTP handler with its middleware.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	client, err := backend.New(backend.Config{
		BaseURL: config.BackendURL,
		AdminID: config.AdminID,
	})
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}

	adminStore, err := adminstorage.OpenStore(config.DBPath)
	if err != nil {
		return nil, err
	}

	var health *platformgrpc.HealthServer
	if addr := strings.TrimSpace(config.HealthAddr); addr != "" {
		health, err = platformgrpc.NewHealthServer(addr)
		if err != nil {
			_ = adminStore.Close()
			return nil, err
		}
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	handler := NewHandler(HandlerConfig{
		Backend:  client,
		Journal:  adminStore,
		Policy:   policy,
		FilesURL: config.FilesURL,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           wrapHandler(handler, policy, config.Logger),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		health:     health,
		adminStore: adminStore,
	}, nil
}

// wrapHandler applies the admin middleware stack, outermost first.
func wrapHandler(handler http.Handler, policy requestmeta.SchemePolicy, logger *log.Logger) http.Handler {
	return httpx.Chain(handler,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(),
		httpx.RequireSameOrigin(policy),
	)
}

// HealthAddr returns the bound health address, or "" when disabled.
func (s *Server) HealthAddr() string {
	if s == nil {
		return ""
	}
	return s.health.Addr()
}

// ListenAndServe runs the HTTP server, and the health server when
// configured, until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	healthErr := make(chan error, 1)
	if s.health != nil {
		go func() {
			healthErr <- s.health.Serve(ctx)
		}()
		s.health.SetServing(true, HealthServiceName)
		log.Printf("admin health listening on %s", s.health.Addr())
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.health.SetServing(false, HealthServiceName)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-healthErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		_ = s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		return errors.New("health server stopped")
	case err := <-serveErr:
		s.health.SetServing(false, HealthServiceName)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the journal store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.adminStore != nil {
			if err := s.adminStore.Close(); err != nil {
				log.Printf("close admin store: %v", err)
			}
		}
	})
}
