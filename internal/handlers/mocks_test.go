package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ResolveActor(ctx context.Context, actorID, tokenID string) (*domain.Actor, error) {
	args := m.Called(ctx, actorID, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Actor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Actor, *domain.AccessToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Actor), args.Get(1).(*domain.AccessToken), args.Error(2)
}

func (m *MockAuthService) SignInWithVerifiedEmail(ctx context.Context, email string, verified bool) (*domain.Actor, *domain.AccessToken, error) {
	args := m.Called(ctx, email, verified)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Actor), args.Get(1).(*domain.AccessToken), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetMe(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockUserService) UpdateMe(ctx context.Context, actor *domain.Actor, req dto.UpdateMeRequest) (*domain.Actor, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockUserService) DeleteMe(ctx context.Context, actor *domain.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *MockUserService) ChangeRole(ctx context.Context, actor *domain.Actor, targetID string, req dto.ChangeRoleRequest) (*domain.Actor, error) {
	args := m.Called(ctx, actor, targetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AddressService ---
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) ListAddresses(ctx context.Context, actor *domain.Actor) ([]domain.Address, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Address), args.Error(1)
}

func (m *MockAddressService) GetAddress(ctx context.Context, actor *domain.Actor, addressID string) (*domain.Address, error) {
	args := m.Called(ctx, actor, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressService) CreateAddress(ctx context.Context, actor *domain.Actor, req dto.AddressRequest) (*domain.Address, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressService) UpdateAddress(ctx context.Context, actor *domain.Actor, addressID string, req dto.AddressRequest) (*domain.Address, error) {
	args := m.Called(ctx, actor, addressID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressService) DeleteAddress(ctx context.Context, actor *domain.Actor, addressID string) error {
	return m.Called(ctx, actor, addressID).Error(0)
}

var _ portssvc.AddressSvcFacade = (*MockAddressService)(nil)

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) ListCourts(ctx context.Context) ([]domain.Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Court), args.Error(1)
}

func (m *MockReferenceService) CreateCourt(ctx context.Context, actor *domain.Actor, req dto.CreateCourtRequest) (*domain.Court, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func (m *MockReferenceService) ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtorEntity), args.Error(1)
}

func (m *MockReferenceService) CreateDebtor(ctx context.Context, actor *domain.Actor, req dto.CreateDebtorRequest) (*domain.DebtorEntity, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtorEntity), args.Error(1)
}

var _ portssvc.ReferenceSvcFacade = (*MockReferenceService)(nil)

// --- Mock ListingService ---
type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) CreateListing(ctx context.Context, actor *domain.Actor, req dto.CreateListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) GetListing(ctx context.Context, actor *domain.Actor, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, actor, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) ListListings(ctx context.Context, actor *domain.Actor, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error) {
	args := m.Called(ctx, actor, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Listing), args.Int(1), args.Error(2)
}

func (m *MockListingService) UpdateListing(ctx context.Context, actor *domain.Actor, listingID string, req dto.UpdateListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, actor, listingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingService) DeleteListing(ctx context.Context, actor *domain.Actor, listingID string) error {
	return m.Called(ctx, actor, listingID).Error(0)
}

var _ portssvc.ListingSvcFacade = (*MockListingService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) UploadDocument(ctx context.Context, actor *domain.Actor, listingID string, upload portssvc.DocumentUpload) (*domain.Document, error) {
	args := m.Called(ctx, actor, listingID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.Document, error) {
	args := m.Called(ctx, actor, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, actor *domain.Actor, documentID string) error {
	return m.Called(ctx, actor, documentID).Error(0)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock DueDiligenceService ---
type MockDueDiligenceService struct {
	mock.Mock
}

func (m *MockDueDiligenceService) OpenDueDiligence(ctx context.Context, actor *domain.Actor, listingID string, req dto.OpenDueDiligenceRequest) (*domain.DueDiligence, error) {
	args := m.Called(ctx, actor, listingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) TransitionDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string, req dto.TransitionDueDiligenceRequest) (*domain.DueDiligence, error) {
	args := m.Called(ctx, actor, dueDiligenceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) GetDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, actor, dueDiligenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueDiligence), args.Error(1)
}

func (m *MockDueDiligenceService) ListDueDiligences(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.DueDiligence, error) {
	args := m.Called(ctx, actor, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueDiligence), args.Error(1)
}

var _ portssvc.DueDiligenceSvcFacade = (*MockDueDiligenceService)(nil)

// --- Mock ProposalService ---
type MockProposalService struct {
	mock.Mock
}

func (m *MockProposalService) CreateProposal(ctx context.Context, actor *domain.Actor, listingID string, req dto.CreateProposalRequest) (*domain.Proposal, error) {
	args := m.Called(ctx, actor, listingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalService) TransitionProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.TransitionProposalRequest) (*domain.Proposal, error) {
	args := m.Called(ctx, actor, proposalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalService) ReviseProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.ReviseProposalRequest) (*domain.Proposal, error) {
	args := m.Called(ctx, actor, proposalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalService) ExpireOverdue(ctx context.Context, actor *domain.Actor, now time.Time) ([]domain.Proposal, error) {
	args := m.Called(ctx, actor, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalService) GetProposal(ctx context.Context, actor *domain.Actor, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, actor, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalService) ListProposals(ctx context.Context, actor *domain.Actor, listingID *string, page domain.Page) ([]domain.Proposal, error) {
	args := m.Called(ctx, actor, listingID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalService) ListHistory(ctx context.Context, actor *domain.Actor, proposalID string) ([]domain.ProposalHistory, error) {
	args := m.Called(ctx, actor, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProposalHistory), args.Error(1)
}

var _ portssvc.ProposalSvcFacade = (*MockProposalService)(nil)
