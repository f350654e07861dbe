package repositories

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// AddressRepositoryFacade manages addresses. Every lookup is scoped to the owning actor so a
// foreign address is indistinguishable from a missing one.
type AddressRepositoryFacade interface {
	ListAddresses(ctx context.Context, actorID string) ([]domain.Address, error)
	FindAddress(ctx context.Context, actorID, addressID string) (*domain.Address, error)
	SaveAddress(ctx context.Context, address domain.Address) error
	UpdateAddress(ctx context.Context, address domain.Address) error
	DeleteAddress(ctx context.Context, actorID, addressID string) error
}
