package app

import (
	"context"
	"fmt"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
	"github.com/pragma/auth-service/internal/infrastructure/config"
	mongostore "github.com/pragma/auth-service/internal/infrastructure/db/mongo"
	pgstore "github.com/pragma/auth-service/internal/infrastructure/db/postgres"
)

// store bundles the persistence adapters selected by STORE_DRIVER.
type store struct {
	users ports.UserRepository
	roles ports.RoleRepository
	tx    ports.Transactor
	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

type roleSeeder interface {
	SeedRoles(ctx context.Context, roles []domain.Role) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg)
	default:
		return openMongo(ctx, cfg)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  cfg.Tracing.ServiceName,
	})
	if err != nil {
		return nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	roles := mongostore.NewRoleRepository(db)
	if err := seed(ctx, roles); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &store{
		users: mongostore.NewUserRepository(db),
		roles: roles,
		tx:    mongostore.NewTransactor(client),
		ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*store, error) {
	pool, err := pgstore.Connect(ctx, pgstore.Config{URL: cfg.Postgres.URL})
	if err != nil {
		return nil, err
	}

	roles := pgstore.NewRoleRepository(pool)
	if err := seed(ctx, roles); err != nil {
		pool.Close()
		return nil, err
	}

	return &store{
		users: pgstore.NewUserRepository(pool),
		roles: roles,
		tx:    pgstore.NewTransactor(pool),
		ping:  pool.Ping,
		close: func(context.Context) error { pool.Close(); return nil },
	}, nil
}

func seed(ctx context.Context, s roleSeeder) error {
	if err := s.SeedRoles(ctx, domain.DefaultRoles()); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
