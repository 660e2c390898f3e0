package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/adriit/roledash/internal/api"
	"github.com/adriit/roledash/internal/api/handler"
	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/ports"
	"github.com/adriit/roledash/internal/core/service"
	mongostore "github.com/adriit/roledash/internal/infrastructure/db/mongo"
	pgstore "github.com/adriit/roledash/internal/infrastructure/db/postgres"
	redisstore "github.com/adriit/roledash/internal/infrastructure/db/redis"
	"github.com/adriit/roledash/internal/infrastructure/security"
	"github.com/adriit/roledash/internal/pkg/config"
	"github.com/adriit/roledash/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return oops.Code("CONFIG_INVALID").Wrap(err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "roledash",
	})
	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, sessions cannot be issued")
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	pingers := map[string]handler.Pinger{cfg.Store.Driver: repo}

	// A nil interface keeps Throttle disabled.
	var limiter ports.AttemptLimiter
	if cfg.RateLimit.Enabled {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, throttling per instance")
			limiter = middleware.NewLocalLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
		} else {
			defer rdb.Close()
			limiter = redisstore.NewAttemptLimiter(rdb, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
			pingers["redis"] = redisstore.Pinger{Client: rdb}
		}
	}

	policy, err := service.NewCredentialPolicy(cfg.Auth.EmailPattern, cfg.Auth.EmailPolicyHint)
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "EMAIL_PATTERN").Wrap(err)
	}
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if cfg.Auth.CookieMaxAge < tokens.TTL() {
		log.Warn().Dur("cookie_max_age", cfg.Auth.CookieMaxAge).Dur("token_ttl", tokens.TTL()).
			Msg("session cookie expires before its token")
	}
	proxies, err := cfg.ProxyRanges()
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "TRUSTED_PROXIES").Wrap(err)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	e := api.NewRouter(api.Deps{
		Auth:     service.NewAuthService(repo, hasher, policy, logger.Component("auth")),
		Users:    service.NewUserService(repo, policy, logger.Component("users")),
		Tokens:   tokens,
		Sessions: service.NewSessionResolver(tokens),
		Cookie: middleware.SessionCookie{
			MaxAge: cfg.Auth.CookieMaxAge,
			Secure: cfg.IsProduction(),
		},
		Limiter:        limiter,
		TrustedProxies: proxies,
		Pingers:        pingers,
		Log:            logger.Component("http"),
		Metrics:        true,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return oops.Code("SERVER_FAILED").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openStore connects the configured user store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (ports.UserRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := pgstore.Connect(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, oops.Code("DB_CONNECT_FAILED").With("driver", cfg.Store.Driver).Wrap(err)
		}
		return pgstore.NewUserRepository(pool), pool.Close, nil
	default:
		store, err := mongostore.Open(ctx, mongostore.Config{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
			AppName:  "roledash",
		})
		if err != nil {
			return nil, nil, oops.Code("DB_CONNECT_FAILED").With("driver", cfg.Store.Driver).Wrap(err)
		}
		closeStore := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				log := logger.Get()
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}
		repo, err := store.Users(ctx)
		if err != nil {
			closeStore()
			return nil, nil, oops.Code("DB_INDEX_FAILED").Wrap(err)
		}
		return repo, closeStore, nil
	}
}

