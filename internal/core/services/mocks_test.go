package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ActorRepository ---
type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	args := m.Called(ctx, actorID)
	var actor *domain.Actor
	if args.Get(0) != nil {
		actor = args.Get(0).(*domain.Actor)
	}
	return actor, args.Error(1)
}

func (m *MockActorRepository) FindActorByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	args := m.Called(ctx, email)
	var actor *domain.Actor
	if args.Get(0) != nil {
		actor = args.Get(0).(*domain.Actor)
	}
	return actor, args.Error(1)
}

func (m *MockActorRepository) SaveActor(ctx context.Context, actor domain.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *MockActorRepository) UpdateActor(ctx context.Context, actor domain.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *MockActorRepository) DeleteActor(ctx context.Context, actorID string) error {
	return m.Called(ctx, actorID).Error(0)
}

// --- Mock AddressRepository ---
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) ListAddresses(ctx context.Context, actorID string) ([]domain.Address, error) {
	args := m.Called(ctx, actorID)
	var addrs []domain.Address
	if args.Get(0) != nil {
		addrs = args.Get(0).([]domain.Address)
	}
	return addrs, args.Error(1)
}

func (m *MockAddressRepository) FindAddress(ctx context.Context, actorID, addressID string) (*domain.Address, error) {
	args := m.Called(ctx, actorID, addressID)
	var addr *domain.Address
	if args.Get(0) != nil {
		addr = args.Get(0).(*domain.Address)
	}
	return addr, args.Error(1)
}

func (m *MockAddressRepository) SaveAddress(ctx context.Context, address domain.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, address domain.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, actorID, addressID string) error {
	return m.Called(ctx, actorID, addressID).Error(0)
}

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListCourts(ctx context.Context) ([]domain.Court, error) {
	args := m.Called(ctx)
	var courts []domain.Court
	if args.Get(0) != nil {
		courts = args.Get(0).([]domain.Court)
	}
	return courts, args.Error(1)
}

func (m *MockReferenceRepository) FindCourtByID(ctx context.Context, courtID string) (*domain.Court, error) {
	args := m.Called(ctx, courtID)
	var court *domain.Court
	if args.Get(0) != nil {
		court = args.Get(0).(*domain.Court)
	}
	return court, args.Error(1)
}

func (m *MockReferenceRepository) SaveCourt(ctx context.Context, court domain.Court) error {
	return m.Called(ctx, court).Error(0)
}

func (m *MockReferenceRepository) ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error) {
	args := m.Called(ctx)
	var debtors []domain.DebtorEntity
	if args.Get(0) != nil {
		debtors = args.Get(0).([]domain.DebtorEntity)
	}
	return debtors, args.Error(1)
}

func (m *MockReferenceRepository) FindDebtorByID(ctx context.Context, debtorID string) (*domain.DebtorEntity, error) {
	args := m.Called(ctx, debtorID)
	var debtor *domain.DebtorEntity
	if args.Get(0) != nil {
		debtor = args.Get(0).(*domain.DebtorEntity)
	}
	return debtor, args.Error(1)
}

func (m *MockReferenceRepository) SaveDebtor(ctx context.Context, debtor domain.DebtorEntity) error {
	return m.Called(ctx, debtor).Error(0)
}

// --- Mock ListingRepository ---
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) FindListingByID(ctx context.Context, scope domain.VisibilityScope, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, scope, listingID)
	var listing *domain.Listing
	if args.Get(0) != nil {
		listing = args.Get(0).(*domain.Listing)
	}
	return listing, args.Error(1)
}

func (m *MockListingRepository) ListListings(ctx context.Context, scope domain.VisibilityScope, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error) {
	args := m.Called(ctx, scope, filter, page)
	var listings []domain.Listing
	if args.Get(0) != nil {
		listings = args.Get(0).([]domain.Listing)
	}
	return listings, args.Int(1), args.Error(2)
}

func (m *MockListingRepository) SaveListing(ctx context.Context, listing domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) UpdateListing(ctx context.Context, listing domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *MockListingRepository) DeleteListing(ctx context.Context, listingID string) error {
	return m.Called(ctx, listingID).Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	var doc *domain.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Document)
	}
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, listingID string) ([]domain.Document, error) {
	args := m.Called(ctx, listingID)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	return docs, args.Error(1)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	return m.Called(ctx, documentID).Error(0)
}

// --- Mock DocumentStore ---
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Put(ctx context.Context, key, fileName string, size int64, body io.Reader) (string, error) {
	args := m.Called(ctx, key, fileName, size, body)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) Delete(ctx context.Context, fileRef string) error {
	return m.Called(ctx, fileRef).Error(0)
}

// --- Mock DueDiligenceRepository ---
type MockDueDiligenceRepository struct {
	mock.Mock
}

func (m *MockDueDiligenceRepository) FindDueDiligenceByID(ctx context.Context, id string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, id)
	var dd *domain.DueDiligence
	if args.Get(0) != nil {
		dd = args.Get(0).(*domain.DueDiligence)
	}
	return dd, args.Error(1)
}

func (m *MockDueDiligenceRepository) ListDueDiligences(ctx context.Context, listingID string) ([]domain.DueDiligence, error) {
	args := m.Called(ctx, listingID)
	var dds []domain.DueDiligence
	if args.Get(0) != nil {
		dds = args.Get(0).([]domain.DueDiligence)
	}
	return dds, args.Error(1)
}

func (m *MockDueDiligenceRepository) FindActiveDueDiligence(ctx context.Context, listingID string) (*domain.DueDiligence, error) {
	args := m.Called(ctx, listingID)
	var dd *domain.DueDiligence
	if args.Get(0) != nil {
		dd = args.Get(0).(*domain.DueDiligence)
	}
	return dd, args.Error(1)
}

func (m *MockDueDiligenceRepository) SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	return m.Called(ctx, dd).Error(0)
}

func (m *MockDueDiligenceRepository) UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence, from domain.DueDiligenceStatus, move *domain.ListingMove) error {
	return m.Called(ctx, dd, from, move).Error(0)
}

// --- Mock ProposalRepository ---
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID)
	var p *domain.Proposal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Proposal)
	}
	return p, args.Error(1)
}

func (m *MockProposalRepository) ListProposals(ctx context.Context, actorID string, listingID *string, page domain.Page) ([]domain.Proposal, error) {
	args := m.Called(ctx, actorID, listingID, page)
	var ps []domain.Proposal
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Proposal)
	}
	return ps, args.Error(1)
}

func (m *MockProposalRepository) FindOverdueProposals(ctx context.Context, day time.Time) ([]domain.Proposal, error) {
	args := m.Called(ctx, day)
	var ps []domain.Proposal
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Proposal)
	}
	return ps, args.Error(1)
}

func (m *MockProposalRepository) ListHistory(ctx context.Context, proposalID string) ([]domain.ProposalHistory, error) {
	args := m.Called(ctx, proposalID)
	var h []domain.ProposalHistory
	if args.Get(0) != nil {
		h = args.Get(0).([]domain.ProposalHistory)
	}
	return h, args.Error(1)
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, p domain.Proposal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProposalRepository) ApplyTransition(ctx context.Context, t domain.ProposalTransition) error {
	return m.Called(ctx, t).Error(0)
}

// --- Mock TokenDenylist ---
type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, token domain.RevokedToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

var (
	_ portsrepo.ActorRepositoryFacade        = (*MockActorRepository)(nil)
	_ portsrepo.AddressRepositoryFacade      = (*MockAddressRepository)(nil)
	_ portsrepo.ReferenceRepositoryFacade    = (*MockReferenceRepository)(nil)
	_ portsrepo.ListingRepositoryFacade      = (*MockListingRepository)(nil)
	_ portsrepo.DocumentRepositoryFacade     = (*MockDocumentRepository)(nil)
	_ portsrepo.DocumentStore                = (*MockDocumentStore)(nil)
	_ portsrepo.DueDiligenceRepositoryFacade = (*MockDueDiligenceRepository)(nil)
	_ portsrepo.ProposalRepositoryFacade     = (*MockProposalRepository)(nil)
	_ portsrepo.TokenDenylist                = (*MockTokenDenylist)(nil)
)

// --- Fixtures ---

func newActor(id string, role domain.Role) *domain.Actor {
	a := &domain.Actor{ActorID: id, Username: id, Email: id + "@example.com", Name: id, Role: role, IsActive: true}
	a.EnforcePrivilegeInvariant()
	return a
}

func ptr[T any](v T) *T {
	return &v
}
