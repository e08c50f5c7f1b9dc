package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pragma/auth-service/internal/core/domain"
	"github.com/pragma/auth-service/internal/core/ports"
)

const DefaultRoleTTL = 10 * time.Minute

// RoleCache is a read-through cache in front of a RoleRepository.
// Key format: role:type:<ROLE_TYPE> and role:id:<id>
//
// Cache failures never fail a lookup; the call falls through to the wrapped
// repository. Missing roles are not cached.
type RoleCache struct {
	next   ports.RoleRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var _ ports.RoleRepository = (*RoleCache)(nil)

// NewRoleCache wraps next with a Redis cache. A non-positive ttl selects
// DefaultRoleTTL.
func NewRoleCache(next ports.RoleRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *RoleCache {
	if ttl <= 0 {
		ttl = DefaultRoleTTL
	}
	return &RoleCache{next: next, client: client, ttl: ttl, log: log}
}

func (c *RoleCache) FindByType(ctx context.Context, roleType domain.RoleType) (*domain.Role, error) {
	return c.lookup(ctx, typeKey(roleType), func() (*domain.Role, error) {
		return c.next.FindByType(ctx, roleType)
	})
}

func (c *RoleCache) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	return c.lookup(ctx, idKey(id), func() (*domain.Role, error) {
		return c.next.FindByID(ctx, id)
	})
}

// Invalidate drops every cached entry for role.
func (c *RoleCache) Invalidate(ctx context.Context, role domain.Role) error {
	if err := c.client.Del(ctx, typeKey(role.Type), idKey(role.ID)).Err(); err != nil {
		return fmt.Errorf("role cache invalidate: %w", err)
	}
	return nil
}

func (c *RoleCache) lookup(ctx context.Context, key string, load func() (*domain.Role, error)) (*domain.Role, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var role domain.Role
		if jsonErr := json.Unmarshal(raw, &role); jsonErr == nil {
			return &role, nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable role cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("role cache read failed")
	}

	role, err := load()
	if err != nil {
		return nil, err
	}
	c.store(ctx, role)
	return role, nil
}

func (c *RoleCache) store(ctx context.Context, role *domain.Role) {
	raw, err := json.Marshal(role)
	if err != nil {
		return
	}
	_, err = c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, typeKey(role.Type), raw, c.ttl)
		p.Set(ctx, idKey(role.ID), raw, c.ttl)
		return nil
	})
	if err != nil {
		c.log.Warn().Err(err).Str("role", string(role.Type)).Msg("role cache write failed")
	}
}

func typeKey(t domain.RoleType) string { return "role:type:" + string(t) }
func idKey(id string) string          { return "role:id:" + id }
