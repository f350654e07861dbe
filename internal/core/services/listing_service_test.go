package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/core/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ListingServiceTestSuite struct {
	suite.Suite
	mockListingRepo   *MockListingRepository
	mockActorRepo     *MockActorRepository
	mockReferenceRepo *MockReferenceRepository
	mockDocumentRepo  *MockDocumentRepository
	mockDDRepo        *MockDueDiligenceRepository
	mockStore         *MockDocumentStore
	service           portssvc.ListingSvcFacade
	documents         portssvc.DocumentSvcFacade

	cedente *domain.Actor
	broker  *domain.Actor
	admin   *domain.Actor
	court   *domain.Court
	debtor  *domain.DebtorEntity
}

func (suite *ListingServiceTestSuite) SetupTest() {
	suite.mockListingRepo = new(MockListingRepository)
	suite.mockActorRepo = new(MockActorRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.mockDocumentRepo = new(MockDocumentRepository)
	suite.mockDDRepo = new(MockDueDiligenceRepository)
	suite.mockStore = new(MockDocumentStore)

	repos := portsrepo.RepositoryProvider{
		ActorRepo:        suite.mockActorRepo,
		ReferenceRepo:    suite.mockReferenceRepo,
		ListingRepo:      suite.mockListingRepo,
		DocumentRepo:     suite.mockDocumentRepo,
		DueDiligenceRepo: suite.mockDDRepo,
	}
	suite.service = services.NewListingService(repos, suite.mockStore)
	suite.documents = services.NewDocumentService(suite.mockListingRepo, suite.mockDocumentRepo, suite.mockStore)

	suite.cedente = newActor(uuid.NewString(), domain.RoleCedente)
	suite.broker = newActor(uuid.NewString(), domain.RoleBroker)
	suite.admin = newActor(uuid.NewString(), domain.RoleAdministrador)
	suite.court = &domain.Court{CourtID: uuid.NewString(), Name: "Tribunal de Justiça de São Paulo", Acronym: "TJSP"}
	suite.debtor = &domain.DebtorEntity{DebtorID: uuid.NewString(), Name: "Estado de São Paulo", Sphere: domain.SphereEstadual}
}

func (suite *ListingServiceTestSuite) createRequest() dto.CreateListingRequest {
	face := decimal.RequireFromString("100000.00")
	asking := decimal.RequireFromString("80000.00")
	return dto.CreateListingRequest{
		CourtID:       suite.court.CourtID,
		DebtorID:      suite.debtor.DebtorID,
		ProcessNumber: " 0001234-56.2020.8.26.0053 ",
		Nature:        string(domain.NatureAlimentar),
		FaceValue:     &face,
		AskingValue:   &asking,
		IssueDate:     "2021-03-15",
		BudgetYear:    2024,
	}
}

func (suite *ListingServiceTestSuite) listingOf(owner *domain.Actor, status domain.ListingStatus) *domain.Listing {
	return &domain.Listing{
		ListingID: uuid.NewString(),
		CedenteID: owner.ActorID,
		CourtID:   suite.court.CourtID,
		DebtorID:  suite.debtor.DebtorID,
		Nature:    domain.NatureComum,
		FaceValue: decimal.RequireFromString("50000"),
		Status:    status,
	}
}

func (suite *ListingServiceTestSuite) expectReferences(ctx context.Context) {
	suite.mockReferenceRepo.On("FindCourtByID", ctx, suite.court.CourtID).Return(suite.court, nil).Once()
	suite.mockReferenceRepo.On("FindDebtorByID", ctx, suite.debtor.DebtorID).Return(suite.debtor, nil).Once()
}

// --- CreateListing Tests ---
func (suite *ListingServiceTestSuite) TestCreateListing_CedenteOwnsListing() {
	ctx := context.Background()
	suite.expectReferences(ctx)
	suite.mockListingRepo.On("SaveListing", ctx, mock.MatchedBy(func(l domain.Listing) bool {
		return l.CedenteID == suite.cedente.ActorID && l.Status == domain.ListingEmAnalise &&
			l.ProcessNumber == "0001234-56.2020.8.26.0053" && l.FeePercent.IsZero()
	})).Return(nil).Once()

	listing, err := suite.service.CreateListing(ctx, suite.cedente, suite.createRequest())

	suite.Require().NoError(err)
	suite.Equal(domain.ListingEmAnalise, listing.Status)
	suite.Equal(suite.court, listing.Court)
	suite.Equal(suite.debtor, listing.Debtor)
	suite.Equal(time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), listing.IssueDate)
	suite.mockListingRepo.AssertExpectations(suite.T())
}

func (suite *ListingServiceTestSuite) TestCreateListing_BrokerForbidden() {
	listing, err := suite.service.CreateListing(context.Background(), suite.broker, suite.createRequest())

	suite.Nil(listing)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockListingRepo.AssertNotCalled(suite.T(), "SaveListing", mock.Anything, mock.Anything)
}

func (suite *ListingServiceTestSuite) TestCreateListing_CedenteCannotListForOthers() {
	req := suite.createRequest()
	req.CedenteID = ptr(uuid.NewString())

	_, err := suite.service.CreateListing(context.Background(), suite.cedente, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ListingServiceTestSuite) TestCreateListing_AdminMustNameCedente() {
	_, err := suite.service.CreateListing(context.Background(), suite.admin, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("cedenteId", apperrors.FieldOf(err))
}

func (suite *ListingServiceTestSuite) TestCreateListing_AdminOnBehalfOfCedente() {
	ctx := context.Background()
	req := suite.createRequest()
	req.CedenteID = &suite.cedente.ActorID

	suite.mockActorRepo.On("FindActorByID", ctx, suite.cedente.ActorID).Return(suite.cedente, nil).Once()
	suite.expectReferences(ctx)
	suite.mockListingRepo.On("SaveListing", ctx, mock.MatchedBy(func(l domain.Listing) bool {
		return l.CedenteID == suite.cedente.ActorID
	})).Return(nil).Once()

	listing, err := suite.service.CreateListing(ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(suite.cedente.ActorID, listing.CedenteID)
}

func (suite *ListingServiceTestSuite) TestCreateListing_AskingAboveFace() {
	ctx := context.Background()
	req := suite.createRequest()
	tooMuch := decimal.RequireFromString("100000.01")
	req.AskingValue = &tooMuch
	suite.expectReferences(ctx)

	_, err := suite.service.CreateListing(ctx, suite.cedente, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("askingValue", apperrors.FieldOf(err))
}

func (suite *ListingServiceTestSuite) TestCreateListing_UnknownCourt() {
	ctx := context.Background()
	suite.mockReferenceRepo.On("FindCourtByID", ctx, suite.court.CourtID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateListing(ctx, suite.cedente, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("courtId", apperrors.FieldOf(err))
}

func (suite *ListingServiceTestSuite) TestCreateListing_FeeAboveHundred() {
	ctx := context.Background()
	req := suite.createRequest()
	fee := decimal.RequireFromString("100.5")
	req.FeePercent = &fee
	suite.expectReferences(ctx)

	_, err := suite.service.CreateListing(ctx, suite.cedente, req)

	suite.Equal("feePercent", apperrors.FieldOf(err))
}

// --- GetListing / ListListings Tests ---
func (suite *ListingServiceTestSuite) TestGetListing_OutOfScopeIsNotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	scope := domain.VisibilityScope{OwnerID: suite.broker.ActorID, IncludeAvailable: true}
	suite.mockListingRepo.On("FindListingByID", ctx, scope, id).Return(nil, apperrors.ErrNotFound).Once()

	listing, err := suite.service.GetListing(ctx, suite.broker, id)

	suite.Nil(listing)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ListingServiceTestSuite) TestGetListing_EmbedsReferencesAndDocuments() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingDisponivel)
	docs := []domain.Document{{DocumentID: uuid.NewString(), ListingID: stored.ListingID, Title: "Ofício"}}
	scope := domain.VisibilityScope{OwnerID: suite.broker.ActorID, IncludeAvailable: true}

	suite.mockListingRepo.On("FindListingByID", ctx, scope, stored.ListingID).Return(stored, nil).Once()
	suite.expectReferences(ctx)
	suite.mockDocumentRepo.On("ListDocuments", ctx, stored.ListingID).Return(docs, nil).Once()

	listing, err := suite.service.GetListing(ctx, suite.broker, stored.ListingID)

	suite.Require().NoError(err)
	suite.Equal(suite.court, listing.Court)
	suite.Equal(suite.debtor, listing.Debtor)
	suite.Len(listing.Documents, 1)
}

func (suite *ListingServiceTestSuite) TestListListings_UsesActorScopeAndNormalizedPage() {
	ctx := context.Background()
	filter := domain.ListingFilter{Search: "TJSP"}
	scope := domain.VisibilityScope{OwnerID: suite.cedente.ActorID}
	suite.mockListingRepo.On("ListListings", ctx, scope, filter, domain.Page{Limit: 100, Offset: 0}).
		Return(nil, 0, nil).Once()

	listings, total, err := suite.service.ListListings(ctx, suite.cedente, filter, domain.Page{Limit: 500, Offset: -3})

	suite.Require().NoError(err)
	suite.NotNil(listings)
	suite.Empty(listings)
	suite.Zero(total)
}

func (suite *ListingServiceTestSuite) TestListListings_AdminSeesAll() {
	ctx := context.Background()
	page := domain.Page{Limit: 20}
	suite.mockListingRepo.On("ListListings", ctx, domain.VisibilityScope{All: true}, domain.ListingFilter{}, page).
		Return([]domain.Listing{*suite.listingOf(suite.cedente, domain.ListingSuspenso)}, 1, nil).Once()

	listings, total, err := suite.service.ListListings(ctx, suite.admin, domain.ListingFilter{}, page)

	suite.Require().NoError(err)
	suite.Len(listings, 1)
	suite.Equal(1, total)
}

// --- UpdateListing Tests ---
func (suite *ListingServiceTestSuite) TestUpdateListing_VisibleButNotOwnedIsForbidden() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingDisponivel)
	scope := domain.VisibilityScope{OwnerID: suite.broker.ActorID, IncludeAvailable: true}
	suite.mockListingRepo.On("FindListingByID", ctx, scope, stored.ListingID).Return(stored, nil).Once()

	_, err := suite.service.UpdateListing(ctx, suite.broker, stored.ListingID, dto.UpdateListingRequest{Description: ptr("x")})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockListingRepo.AssertNotCalled(suite.T(), "UpdateListing", mock.Anything, mock.Anything)
}

func (suite *ListingServiceTestSuite) TestUpdateListing_DisponivelRequiresClearedReview() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	scope := domain.VisibilityScope{OwnerID: suite.cedente.ActorID}
	suite.mockListingRepo.On("FindListingByID", ctx, scope, stored.ListingID).Return(stored, nil).Once()
	suite.mockDDRepo.On("FindActiveDueDiligence", ctx, stored.ListingID).
		Return(&domain.DueDiligence{Status: domain.DueDiligenceEmAnalise}, nil).Once()

	status := string(domain.ListingDisponivel)
	_, err := suite.service.UpdateListing(ctx, suite.cedente, stored.ListingID, dto.UpdateListingRequest{Status: &status})

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockListingRepo.AssertNotCalled(suite.T(), "UpdateListing", mock.Anything, mock.Anything)
}

func (suite *ListingServiceTestSuite) TestUpdateListing_DisponivelAfterApproval() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{All: true}, stored.ListingID).Return(stored, nil).Once()
	suite.mockDDRepo.On("FindActiveDueDiligence", ctx, stored.ListingID).
		Return(&domain.DueDiligence{Status: domain.DueDiligenceRepactuado}, nil).Once()
	suite.mockListingRepo.On("UpdateListing", ctx, mock.MatchedBy(func(l domain.Listing) bool {
		return l.Status == domain.ListingDisponivel
	})).Return(nil).Once()

	status := string(domain.ListingDisponivel)
	listing, err := suite.service.UpdateListing(ctx, suite.admin, stored.ListingID, dto.UpdateListingRequest{Status: &status})

	suite.Require().NoError(err)
	suite.Equal(domain.ListingDisponivel, listing.Status)
}

func (suite *ListingServiceTestSuite) TestUpdateListing_UnknownStatus() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()

	_, err := suite.service.UpdateListing(ctx, suite.cedente, stored.ListingID, dto.UpdateListingRequest{Status: ptr("Arquivado")})

	suite.Equal("status", apperrors.FieldOf(err))
}

// --- DeleteListing Tests ---
func (suite *ListingServiceTestSuite) TestDeleteListing_RemovesStoredObjects() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	docs := []domain.Document{{FileRef: "documents/a.pdf"}, {FileRef: "documents/b.pdf"}}
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()
	suite.mockDocumentRepo.On("ListDocuments", ctx, stored.ListingID).Return(docs, nil).Once()
	suite.mockListingRepo.On("DeleteListing", ctx, stored.ListingID).Return(nil).Once()
	suite.mockStore.On("Delete", ctx, "documents/a.pdf").Return(assert.AnError).Once()
	suite.mockStore.On("Delete", ctx, "documents/b.pdf").Return(nil).Once()

	suite.NoError(suite.service.DeleteListing(ctx, suite.cedente, stored.ListingID))
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *ListingServiceTestSuite) TestDeleteListing_BlockedByReferences() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()
	suite.mockDocumentRepo.On("ListDocuments", ctx, stored.ListingID).Return(nil, nil).Once()
	suite.mockListingRepo.On("DeleteListing", ctx, stored.ListingID).
		Return(apperrors.NewConflictError("listing is still referenced")).Once()

	err := suite.service.DeleteListing(ctx, suite.cedente, stored.ListingID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

// --- Document Tests ---
func (suite *ListingServiceTestSuite) TestUploadDocument_StoresAndSaves() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	body := strings.NewReader("%PDF-1.4")
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()
	suite.mockStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, stored.ListingID+"/") && strings.HasSuffix(key, "-oficio.pdf")
	}), "oficio.pdf", int64(8), body).Return("documents/ref.pdf", nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.FileRef == "documents/ref.pdf" && d.Title == "Ofício requisitório" && d.ListingID == stored.ListingID
	})).Return(nil).Once()

	doc, err := suite.documents.UploadDocument(ctx, suite.cedente, stored.ListingID, portssvc.DocumentUpload{
		Title: " Ofício requisitório ", FileName: "../../oficio.pdf", Size: 8, Body: body,
	})

	suite.Require().NoError(err)
	suite.Equal("oficio.pdf", doc.FileName)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *ListingServiceTestSuite) TestUploadDocument_RemovesObjectWhenSaveFails() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()
	suite.mockStore.On("Put", ctx, mock.Anything, "laudo.pdf", int64(3), mock.Anything).Return("documents/x.pdf", nil).Once()
	suite.mockDocumentRepo.On("SaveDocument", ctx, mock.Anything).Return(assert.AnError).Once()
	suite.mockStore.On("Delete", ctx, "documents/x.pdf").Return(nil).Once()

	_, err := suite.documents.UploadDocument(ctx, suite.cedente, stored.ListingID, portssvc.DocumentUpload{
		Title: "Laudo", FileName: "laudo.pdf", Size: 3, Body: strings.NewReader("abc"),
	})

	suite.ErrorIs(err, assert.AnError)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *ListingServiceTestSuite) TestUploadDocument_NonOwnerForbidden() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingDisponivel)
	scope := domain.VisibilityScope{OwnerID: suite.broker.ActorID, IncludeAvailable: true}
	suite.mockListingRepo.On("FindListingByID", ctx, scope, stored.ListingID).Return(stored, nil).Once()

	_, err := suite.documents.UploadDocument(ctx, suite.broker, stored.ListingID, portssvc.DocumentUpload{
		Title: "Laudo", FileName: "laudo.pdf", Size: 3, Body: strings.NewReader("abc"),
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockStore.AssertNotCalled(suite.T(), "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ListingServiceTestSuite) TestDeleteDocument_ChecksListingOwnership() {
	ctx := context.Background()
	stored := suite.listingOf(suite.cedente, domain.ListingEmAnalise)
	doc := &domain.Document{DocumentID: uuid.NewString(), ListingID: stored.ListingID, FileRef: "documents/d.pdf"}
	suite.mockDocumentRepo.On("FindDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()
	suite.mockListingRepo.On("FindListingByID", ctx, domain.VisibilityScope{OwnerID: suite.cedente.ActorID}, stored.ListingID).Return(stored, nil).Once()
	suite.mockDocumentRepo.On("DeleteDocument", ctx, doc.DocumentID).Return(nil).Once()
	suite.mockStore.On("Delete", ctx, "documents/d.pdf").Return(nil).Once()

	suite.NoError(suite.documents.DeleteDocument(ctx, suite.cedente, doc.DocumentID))
	suite.mockDocumentRepo.AssertExpectations(suite.T())
}

func TestListingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ListingServiceTestSuite))
}
