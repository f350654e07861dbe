package repositories

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// ListingReader defines read operations for listings. Every read takes a visibility scope that
// the implementation must apply as a predicate before filters and pagination.
type ListingReader interface {
	// FindListingByID retrieves a listing inside scope, or ErrNotFound.
	FindListingByID(ctx context.Context, scope domain.VisibilityScope, listingID string) (*domain.Listing, error)

	// ListListings retrieves one page of listings inside scope together with the total match count.
	ListListings(ctx context.Context, scope domain.VisibilityScope, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error)
}

// ListingWriter defines write operations for listings
type ListingWriter interface {
	// SaveListing persists a new listing.
	SaveListing(ctx context.Context, listing domain.Listing) error

	// UpdateListing updates the mutable fields of a listing.
	UpdateListing(ctx context.Context, listing domain.Listing) error

	// DeleteListing removes a listing. Documents cascade; reviews and proposals block deletion.
	DeleteListing(ctx context.Context, listingID string) error
}

// ListingRepositoryFacade combines all listing-related repository interfaces
type ListingRepositoryFacade interface {
	ListingReader
	ListingWriter
}
