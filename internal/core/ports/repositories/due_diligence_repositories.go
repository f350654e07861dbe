package repositories

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// DueDiligenceReader defines read operations for reviews
type DueDiligenceReader interface {
	FindDueDiligenceByID(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error)
	ListDueDiligences(ctx context.Context, listingID string) ([]domain.DueDiligence, error)

	// FindActiveDueDiligence returns the non-rejected review of a listing, or ErrNotFound.
	FindActiveDueDiligence(ctx context.Context, listingID string) (*domain.DueDiligence, error)
}

// DueDiligenceWriter defines write operations for reviews
type DueDiligenceWriter interface {
	// SaveDueDiligence persists a new review. A second active review for the same listing
	// fails with ErrConflict.
	SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error

	// UpdateDueDiligence stores dd only if it is still in from, applying move in the same
	// transaction when given.
	UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence, from domain.DueDiligenceStatus, move *domain.ListingMove) error
}

// DueDiligenceRepositoryFacade combines all review repository interfaces
type DueDiligenceRepositoryFacade interface {
	DueDiligenceReader
	DueDiligenceWriter
}
