package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
)

// ListingSvcFacade defines listing operations. Every read goes through the actor's
// visibility scope; every write goes through the ownership guard.
type ListingSvcFacade interface {
	CreateListing(ctx context.Context, actor *domain.Actor, req dto.CreateListingRequest) (*domain.Listing, error)
	GetListing(ctx context.Context, actor *domain.Actor, listingID string) (*domain.Listing, error)
	ListListings(ctx context.Context, actor *domain.Actor, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error)
	UpdateListing(ctx context.Context, actor *domain.Actor, listingID string, req dto.UpdateListingRequest) (*domain.Listing, error)
	DeleteListing(ctx context.Context, actor *domain.Actor, listingID string) error
}

// DocumentUpload is a file received for a listing.
type DocumentUpload struct {
	Title    string
	FileName string
	Size     int64
	Body     io.Reader
}

// DocumentSvcFacade defines listing document operations.
type DocumentSvcFacade interface {
	UploadDocument(ctx context.Context, actor *domain.Actor, listingID string, upload DocumentUpload) (*domain.Document, error)
	ListDocuments(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.Document, error)
	DeleteDocument(ctx context.Context, actor *domain.Actor, documentID string) error
}

// DueDiligenceSvcFacade defines the review workflow.
type DueDiligenceSvcFacade interface {
	OpenDueDiligence(ctx context.Context, actor *domain.Actor, listingID string, req dto.OpenDueDiligenceRequest) (*domain.DueDiligence, error)
	TransitionDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string, req dto.TransitionDueDiligenceRequest) (*domain.DueDiligence, error)
	GetDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string) (*domain.DueDiligence, error)
	ListDueDiligences(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.DueDiligence, error)
}

// ProposalSvcFacade defines the proposal state machine and its audit trail.
type ProposalSvcFacade interface {
	CreateProposal(ctx context.Context, actor *domain.Actor, listingID string, req dto.CreateProposalRequest) (*domain.Proposal, error)
	TransitionProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.TransitionProposalRequest) (*domain.Proposal, error)
	ReviseProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.ReviseProposalRequest) (*domain.Proposal, error)
	ExpireOverdue(ctx context.Context, actor *domain.Actor, now time.Time) ([]domain.Proposal, error)
	GetProposal(ctx context.Context, actor *domain.Actor, proposalID string) (*domain.Proposal, error)
	ListProposals(ctx context.Context, actor *domain.Actor, listingID *string, page domain.Page) ([]domain.Proposal, error)
	ListHistory(ctx context.Context, actor *domain.Actor, proposalID string) ([]domain.ProposalHistory, error)
}
