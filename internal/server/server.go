package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/redhat-data-and-ai/fivetran-console/internal/config"
	"github.com/redhat-data-and-ai/fivetran-console/internal/routes"
	"github.com/redhat-data-and-ai/fivetran-console/internal/session"
	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
	"github.com/redhat-data-and-ai/fivetran-console/pkg/vault"
)

const shutdownTimeout = 5 * time.Second

// Server owns the HTTP listener, the session store and the route tree.
type Server struct {
	cfg    config.C
	logger *slog.Logger
	engine *gin.Engine
	store  *session.Store
}

// New assembles the console server from configuration. When a vault section
// is configured it logs in up front so a bad AppRole fails at startup rather
// than on the first headless session request.
func New(cfg config.C, logger *slog.Logger) (*Server, error) {
	root := cfg.GetRoot()

	source, err := buildCredentialSource(root.Vault)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(root.Server.SessionTTL.Duration())

	requestTimeout := root.Server.RequestTimeout.Duration()
	factory := func(apiKey, apiSecret string) (*fivetran.Client, error) {
		return fivetran.NewClient(apiKey, apiSecret, fivetran.WithTimeout(requestTimeout))
	}

	engine := newEngine(cfg, logger)
	engine.GET("/health", health)

	api := engine.Group("/api/v1")
	routes.NewSessionRoutes(store, factory, source, logger).Register(api)

	authed := api.Group("", routes.RequireSession(store))
	routes.NewConnectorsRoutes(logger).Register(authed)
	routes.NewSchemasRoutes(logger).Register(authed)
	routes.NewGroupsRoutes(logger).Register(authed)

	return &Server{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		store:  store,
	}, nil
}

func newEngine(cfg config.C, logger *slog.Logger) *gin.Engine {
	if !cfg.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery())
	return engine
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		start := time.Now()
		path := gctx.Request.URL.Path

		gctx.Next()

		logger.Info("request",
			"method", gctx.Request.Method,
			"path", path,
			"status", gctx.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", gctx.ClientIP(),
		)
	}
}

func health(gctx *gin.Context) {
	gctx.PureJSON(http.StatusOK, gin.H{"status": "ok"})
}

func buildCredentialSource(vc *config.VaultConfig) (routes.CredentialSource, error) {
	if vc == nil {
		return nil, nil
	}

	clientCfg, err := vault.NewClientConfig(vc.Address, vc.RoleID, vc.SecretID, vc.MountPath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid vault configuration")
	}

	client, err := vault.NewClient(clientCfg)
	if err != nil {
		return nil, errors.Wrap(err, "vault login failed")
	}

	source, err := vault.NewSource(client, &vault.SourceConfig{
		SecretPath:  vc.SecretPath,
		KeyField:    vc.KeyField,
		SecretField: vc.SecretField,
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid vault configuration")
	}

	return source, nil
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts listening and serving HTTP requests and blocks until a
// termination signal arrives, then shuts down gracefully.
func (s *Server) Run() error {
	listen := s.cfg.GetRoot().Server.Listen
	srv := &http.Server{
		Addr:    listen,
		Handler: s.engine,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("console listening", "address", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen failed")
	case <-quit:
	}

	s.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "forced shutdown")
	}

	s.logger.Info("server exited")
	return nil
}
