// Package app assembles the authentication service from its configuration and
// runs the HTTP server until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pragma/auth-service/internal/api"
	"github.com/pragma/auth-service/internal/api/handler"
	"github.com/pragma/auth-service/internal/core/ports"
	"github.com/pragma/auth-service/internal/core/service"
	"github.com/pragma/auth-service/internal/infrastructure/config"
	"github.com/pragma/auth-service/internal/infrastructure/db/redis"
	"github.com/pragma/auth-service/internal/infrastructure/security"
	"github.com/pragma/auth-service/internal/infrastructure/telemetry"
	"github.com/pragma/auth-service/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Version is stamped at build time with -ldflags.
var Version = "dev"

// Run wires every adapter, serves HTTP on cfg.Port and shuts down gracefully
// once ctx is done.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.Tracing.Endpoint,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer flush(log, "tracing", shutdownTracing)

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer flush(log, "store", st.close)
	log.Info().Str("driver", cfg.StoreDriver).Msg("store connected")

	checks := []handler.DependencyCheck{{Name: cfg.StoreDriver, Ping: st.ping}}

	var roles ports.RoleRepository = st.roles
	if rdb := connectCache(ctx, cfg, log); rdb != nil {
		defer func() { _ = rdb.Close() }()
		roles = redis.NewRoleCache(st.roles, rdb, cfg.Redis.RoleTTL, logger.Component("role_cache"))
		checks = append(checks, handler.DependencyCheck{
			Name:     "redis",
			Optional: true,
			Ping:     func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	tokens, err := security.NewJWTProvider(security.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	})
	if err != nil {
		return fmt.Errorf("jwt: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	router := api.NewRouter(api.Dependencies{
		AuthService: service.NewAuthService(st.users, roles, hasher, tokens, logger.Component("auth_service")),
		UserService: service.NewUserService(st.users, roles, hasher, st.tx, logger.Component("user_service")),
		Tokens:      tokens,
		Checks:      checks,
		Log:         logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", Version).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}

// connectCache returns nil when the cache is disabled or unreachable; roles
// are then read straight from the store.
func connectCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) *goredis.Client {
	if cfg.Redis.Disabled {
		log.Info().Msg("role cache disabled")
		return nil
	}
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("role cache unavailable, continuing without it")
		return nil
	}
	return rdb
}

func flush(log zerolog.Logger, what string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn().Err(err).Str("resource", what).Msg("shutdown failed")
	}
}
