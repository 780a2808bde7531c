// Package syncer implements app.Runner for the veBAL sync service.
package syncer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/vebal-sync/pkg/app/http"
	"github.com/chainsafe/vebal-sync/pkg/app/httpserver"
	"github.com/chainsafe/vebal-sync/pkg/auth"
	"github.com/chainsafe/vebal-sync/pkg/config"
	"github.com/chainsafe/vebal-sync/pkg/db"
	"github.com/chainsafe/vebal-sync/pkg/ethereum"
	"github.com/chainsafe/vebal-sync/pkg/keys"
	"github.com/chainsafe/vebal-sync/pkg/pgutil"
	"github.com/chainsafe/vebal-sync/pkg/reconciler"
	"github.com/chainsafe/vebal-sync/pkg/subgraph"
	"github.com/chainsafe/vebal-sync/pkg/syncapi/service"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the sync service.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new sync server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("sync server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting veBAL sync service",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("active_network", cfg.Sync.ActiveNetwork),
	)

	signer, err := keys.LoadSigner(&cfg.Ethereum)
	if err != nil {
		return fmt.Errorf("load signer: %w", err)
	}

	ethClient, err := ethereum.Dial(ctx, &cfg.Ethereum, signer, logger)
	if err != nil {
		return err
	}
	defer ethClient.Close()

	endpoints, err := cfg.Subgraph.Endpoints()
	if err != nil {
		return err
	}
	subgraphClient := subgraph.NewClient(endpoints, &http.Client{Timeout: cfg.Subgraph.RequestTimeout}, logger)

	bunDB, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = bunDB.Close() }()

	recCfg, err := reconcilerConfig(cfg)
	if err != nil {
		return err
	}

	account := connectedAccount(cfg, signer)
	newReconciler := func(a common.Address) *reconciler.Reconciler {
		return reconciler.New(a, recCfg, subgraphClient, subgraphClient, ethClient, logger)
	}
	connected := newReconciler(account)

	svc, err := service.NewService(service.Config{
		Connected:           account,
		ConnectedReconciler: connected,
		Factory:             func(a common.Address) service.Reconciler { return newReconciler(a) },
		Store:               db.NewStore(bunDB),
	}, logger)
	if err != nil {
		return err
	}

	poller := reconciler.NewPoller(connected, cfg.Sync.PollInterval, logger)
	logger.Info("Starting sync poller",
		zap.String("account", account.Hex()),
		zap.Duration("interval", cfg.Sync.PollInterval))
	poller.Start()
	// Stopped explicitly after ServeAndWait returns; the defer covers early returns.
	defer poller.Stop()

	var validator *auth.JWTValidator
	if cfg.JWKS.URL != "" {
		validator = auth.NewJWTValidator(cfg.JWKS.URL, cfg.JWKS.Issuer)
	}
	authn := auth.NewAuthenticator(validator, logger)

	router := s.setupRouter(service.NewLog(svc, logger), connected, authn.Middleware, logger)

	err = httpserver.ServeAndWait(ctx, logger, httpserver.New(&cfg.Server, router), cfg.Shutdown.Timeout)

	poller.Stop()

	return err
}

// reconcilerConfig resolves the network settings shared by every reconciler.
func reconcilerConfig(cfg *config.Config) (reconciler.Config, error) {
	active, err := cfg.ActiveNetwork()
	if err != nil {
		return reconciler.Config{}, fmt.Errorf("sync.active_network: %w", err)
	}
	contracts, err := cfg.ContractAddresses()
	if err != nil {
		return reconciler.Config{}, err
	}
	return reconciler.Config{
		ActiveNetwork: active,
		Contracts:     contracts,
	}, nil
}

// connectedAccount is the configured account override, or the signer.
func connectedAccount(cfg *config.Config, signer *keys.Signer) common.Address {
	if cfg.Sync.Account != "" {
		return common.HexToAddress(cfg.Sync.Account)
	}
	return signer.Address
}

type loadingReporter interface {
	IsLoading() bool
}

func (s *Server) setupRouter(
	svc service.Service,
	connected loadingReporter,
	authn func(http.Handler) http.Handler,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Ready once the connected account has been fetched at least once.
	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if connected.IsLoading() {
			apphttp.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
			return
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		service.RegisterRoutes(r, svc, authn, logger)
	})

	return r
}
