package revocation

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked_jti:"

// RedisDenylist stores revoked token ids with a TTL matching the token expiry, so entries
// disappear once the token could no longer be used anyway.
type RedisDenylist struct {
	Client *redis.Client
	now    func() time.Time
}

var _ portsrepo.TokenDenylist = (*RedisDenylist)(nil)

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{Client: client, now: time.Now}
}

func (d *RedisDenylist) Revoke(ctx context.Context, token domain.RevokedToken) error {
	ttl := token.ExpiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.Client.Set(ctx, keyPrefix+token.TokenID, "1", ttl).Err(); err != nil {
		return apperrors.NewAppError(500, "failed to revoke token", err)
	}
	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.Client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check token revocation", err)
	}
	return n > 0, nil
}
