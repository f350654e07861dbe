package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// ProposalReader defines read operations for proposals
type ProposalReader interface {
	FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	// ListProposals returns proposals the actor made or received. An empty actorID lists all.
	ListProposals(ctx context.Context, actorID string, listingID *string, page domain.Page) ([]domain.Proposal, error)

	// FindOverdueProposals returns sent proposals whose due date is before day.
	FindOverdueProposals(ctx context.Context, day time.Time) ([]domain.Proposal, error)

	// ListHistory returns the audit trail of a proposal in creation order.
	ListHistory(ctx context.Context, proposalID string) ([]domain.ProposalHistory, error)
}

// ProposalWriter defines write operations for proposals. History is append-only and is only
// ever written by ApplyTransition.
type ProposalWriter interface {
	SaveProposal(ctx context.Context, proposal domain.Proposal) error

	// ApplyTransition updates the proposal guarded by its previous status and inserts the
	// history row in one transaction. A concurrent change fails with ErrConflict.
	ApplyTransition(ctx context.Context, t domain.ProposalTransition) error
}

// ProposalRepositoryFacade combines all proposal repository interfaces
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
}
