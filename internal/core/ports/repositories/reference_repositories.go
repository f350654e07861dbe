package repositories

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// CourtRepository defines persistence for courts
type CourtRepository interface {
	ListCourts(ctx context.Context) ([]domain.Court, error)
	FindCourtByID(ctx context.Context, courtID string) (*domain.Court, error)
	SaveCourt(ctx context.Context, court domain.Court) error
}

// DebtorRepository defines persistence for debtor entities
type DebtorRepository interface {
	ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error)
	FindDebtorByID(ctx context.Context, debtorID string) (*domain.DebtorEntity, error)
	SaveDebtor(ctx context.Context, debtor domain.DebtorEntity) error
}

// ReferenceRepositoryFacade combines court and debtor persistence
type ReferenceRepositoryFacade interface {
	CourtRepository
	DebtorRepository
}
