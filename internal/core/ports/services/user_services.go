package services

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
)

// UserSvcFacade defines operations an actor performs on its own account, plus the
// privileged role change.
type UserSvcFacade interface {
	GetMe(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
	UpdateMe(ctx context.Context, actor *domain.Actor, req dto.UpdateMeRequest) (*domain.Actor, error)
	DeleteMe(ctx context.Context, actor *domain.Actor) error

	// ChangeRole is restricted to administrators and staff.
	ChangeRole(ctx context.Context, actor *domain.Actor, targetID string, req dto.ChangeRoleRequest) (*domain.Actor, error)
}

// AddressSvcFacade manages the addresses of the current actor.
type AddressSvcFacade interface {
	ListAddresses(ctx context.Context, actor *domain.Actor) ([]domain.Address, error)
	GetAddress(ctx context.Context, actor *domain.Actor, addressID string) (*domain.Address, error)
	CreateAddress(ctx context.Context, actor *domain.Actor, req dto.AddressRequest) (*domain.Address, error)
	UpdateAddress(ctx context.Context, actor *domain.Actor, addressID string, req dto.AddressRequest) (*domain.Address, error)
	DeleteAddress(ctx context.Context, actor *domain.Actor, addressID string) error
}

// ReferenceSvcFacade manages courts and debtor entities.
type ReferenceSvcFacade interface {
	ListCourts(ctx context.Context) ([]domain.Court, error)
	CreateCourt(ctx context.Context, actor *domain.Actor, req dto.CreateCourtRequest) (*domain.Court, error)
	ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error)
	CreateDebtor(ctx context.Context, actor *domain.Actor, req dto.CreateDebtorRequest) (*domain.DebtorEntity, error)
}
