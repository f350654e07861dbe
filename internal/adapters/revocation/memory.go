package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
)

// MemoryDenylist is the single-instance fallback when no Redis is configured.
type MemoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

var _ portsrepo.TokenDenylist = (*MemoryDenylist)(nil)

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{revoked: make(map[string]time.Time), now: time.Now}
}

func (d *MemoryDenylist) Revoke(_ context.Context, token domain.RevokedToken) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prune()
	if token.ExpiresAt.After(d.now()) {
		d.revoked[token.TokenID] = token.ExpiresAt
	}
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(d.now()) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (d *MemoryDenylist) prune() {
	now := d.now()
	for id, exp := range d.revoked {
		if !exp.After(now) {
			delete(d.revoked, id)
		}
	}
}
