package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/handlers"
	"github.com/SscSPs/precatorio_marketplace/internal/platform/config"
	"github.com/SscSPs/precatorio_marketplace/internal/utils"
	"github.com/SscSPs/precatorio_marketplace/internal/utils/validators"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string

	auth         *MockAuthService
	google       *MockGoogleOAuthService
	user         *MockUserService
	address      *MockAddressService
	reference    *MockReferenceService
	listing      *MockListingService
	document     *MockDocumentService
	dueDiligence *MockDueDiligenceService
	proposal     *MockProposalService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validators.Register(v)
	}
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.auth = new(MockAuthService)
	suite.google = new(MockGoogleOAuthService)
	suite.user = new(MockUserService)
	suite.address = new(MockAddressService)
	suite.reference = new(MockReferenceService)
	suite.listing = new(MockListingService)
	suite.document = new(MockDocumentService)
	suite.dueDiligence = new(MockDueDiligenceService)
	suite.proposal = new(MockProposalService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	rate, err := limiter.NewRateFromFormatted("2-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Auth:         suite.auth,
		GoogleOAuth:  suite.google,
		User:         suite.user,
		Address:      suite.address,
		Reference:    suite.reference,
		Listing:      suite.listing,
		Document:     suite.document,
		DueDiligence: suite.dueDiligence,
		Proposal:     suite.proposal,
	}, limiter.New(memory.NewStore(), rate))
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.auth.AssertExpectations(suite.T())
	suite.listing.AssertExpectations(suite.T())
	suite.document.AssertExpectations(suite.T())
	suite.dueDiligence.AssertExpectations(suite.T())
	suite.proposal.AssertExpectations(suite.T())
	suite.user.AssertExpectations(suite.T())
}

func newActor(role domain.Role) *domain.Actor {
	a := &domain.Actor{ActorID: uuid.NewString(), Username: "tester", Email: "tester@example.com", Name: "Tester", Role: role, IsActive: true}
	a.EnforcePrivilegeInvariant()
	return a
}

// login issues a real token for actor and expects the middleware to resolve it.
func (suite *HandlersTestSuite) login(actor *domain.Actor) *domain.AccessToken {
	token, err := utils.GenerateJWT(actor.ActorID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.auth.On("ResolveActor", mock.Anything, actor.ActorID, token.TokenID).Return(actor, nil).Once()
	return token
}

func (suite *HandlersTestSuite) do(method, url string, token *domain.AccessToken, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", "Bearer "+token.Token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestProtectedRoute_MissingToken() {
	w := suite.do(http.MethodGet, "/api/v1/listings", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.listing.AssertNotCalled(suite.T(), "ListListings")
}

func (suite *HandlersTestSuite) TestProtectedRoute_RevokedToken() {
	actor := newActor(domain.RoleCedente)
	token, err := utils.GenerateJWT(actor.ActorID, suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.auth.On("ResolveActor", mock.Anything, actor.ActorID, token.TokenID).
		Return(nil, apperrors.NewUnauthorizedError("token revoked")).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", token, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.user.AssertNotCalled(suite.T(), "GetMe")
}

func (suite *HandlersTestSuite) TestProtectedRoute_WrongSecret() {
	actor := newActor(domain.RoleCedente)
	token, err := utils.GenerateJWT(actor.ActorID, "another-secret", time.Hour, "test")
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/v1/users/me", token, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.auth.AssertNotCalled(suite.T(), "ResolveActor")
}

func (suite *HandlersTestSuite) TestRegister_Success() {
	actor := newActor(domain.RoleCedente)
	suite.auth.On("Register", mock.Anything, mock.MatchedBy(func(r dto.RegisterRequest) bool {
		return r.Email == "new@example.com" && r.Username == "newbie"
	})).Return(actor, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", nil, map[string]any{
		"username":        "newbie",
		"email":           "new@example.com",
		"password":        "s3cret-pass",
		"passwordConfirm": "s3cret-pass",
		"name":            "New Person",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.ActorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(actor.ActorID, body.ActorID)
	suite.Equal(domain.RoleCedente, body.Role)
}

func (suite *HandlersTestSuite) TestRegister_BindErrorNamesField() {
	w := suite.do(http.MethodPost, "/api/v1/auth/register", nil, map[string]any{"username": "newbie"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("email", suite.decodeError(w).Field)
	suite.auth.AssertNotCalled(suite.T(), "Register")
}

func (suite *HandlersTestSuite) TestRegister_DuplicateEmail() {
	suite.auth.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFieldConflictError("email", "email already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", nil, map[string]any{
		"username":        "newbie",
		"email":           "taken@example.com",
		"password":        "s3cret-pass",
		"passwordConfirm": "s3cret-pass",
		"name":            "New Person",
	})

	suite.Equal(http.StatusConflict, w.Code)
	body := suite.decodeError(w)
	suite.Equal("email", body.Field)
	suite.Equal("email already registered", body.Error)
}

func (suite *HandlersTestSuite) TestLogin_Success() {
	actor := newActor(domain.RoleBroker)
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.auth.On("Login", mock.Anything, dto.LoginRequest{Email: "broker@example.com", Password: "pw"}).
		Return(actor, &domain.AccessToken{Token: "signed", TokenID: "jti", ExpiresAt: expiresAt}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", nil, map[string]string{"email": "broker@example.com", "password": "pw"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("signed", body.Token)
	suite.True(expiresAt.Equal(body.ExpiresAt))
	suite.Equal(actor.ActorID, body.Actor.ActorID)
}

func (suite *HandlersTestSuite) TestLogin_RateLimited() {
	suite.auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, nil, apperrors.NewUnauthorizedError("invalid credentials")).Twice()
	creds := map[string]string{"email": "someone@example.com", "password": "wrong"}

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", nil, creds).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", nil, creds).Code)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", nil, creds)
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.NotEmpty(w.Header().Get("Retry-After"))
	suite.auth.AssertNumberOfCalls(suite.T(), "Login", 2)
}

func (suite *HandlersTestSuite) TestLogout_RevokesCurrentToken() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	suite.auth.On("Logout", mock.Anything, token.TokenID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/logout", token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestGoogleRoute_DisabledWithoutConfig() {
	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", nil, map[string]string{"code": "abc"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateMe_Conflict() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	email := "taken@example.com"
	suite.user.On("UpdateMe", mock.Anything, actor, dto.UpdateMeRequest{Email: &email}).
		Return(nil, apperrors.NewFieldConflictError("email", "email already registered")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/users/me", token, map[string]string{"email": email})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("email", suite.decodeError(w).Field)
}

func (suite *HandlersTestSuite) TestChangeRole_Forbidden() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)
	targetID := uuid.NewString()
	suite.user.On("ChangeRole", mock.Anything, actor, targetID, dto.ChangeRoleRequest{Role: "Advogado"}).
		Return(nil, apperrors.NewForbiddenError("only administrators may change roles")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/users/"+targetID+"/role", token, map[string]string{"role": "Advogado"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestCreateListing_Success() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	courtID, debtorID := uuid.NewString(), uuid.NewString()
	listing := &domain.Listing{
		ListingID:     uuid.NewString(),
		CedenteID:     actor.ActorID,
		CourtID:       courtID,
		DebtorID:      debtorID,
		ProcessNumber: "0001234-56.2020.8.26.0001",
		Nature:        domain.NatureAlimentar,
		FaceValue:     decimal.NewFromInt(100000),
		IssueDate:     time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		BudgetYear:    2025,
		Status:        domain.ListingEmAnalise,
	}
	suite.listing.On("CreateListing", mock.Anything, actor, mock.MatchedBy(func(r dto.CreateListingRequest) bool {
		return r.CourtID == courtID && r.FaceValue != nil && r.FaceValue.Equal(decimal.NewFromInt(100000))
	})).Return(listing, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/listings", token, map[string]any{
		"courtId":       courtID,
		"debtorId":      debtorID,
		"processNumber": listing.ProcessNumber,
		"nature":        "Alimentar",
		"faceValue":     "100000",
		"issueDate":     "2023-03-01",
		"budgetYear":    2025,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.ListingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(listing.ListingID, body.ListingID)
	suite.Equal("2023-03-01", body.IssueDate)
	suite.Equal(domain.ListingEmAnalise, body.Status)
}

func (suite *HandlersTestSuite) TestCreateListing_InvalidCourtID() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)

	w := suite.do(http.MethodPost, "/api/v1/listings", token, map[string]any{
		"courtId":       "not-a-uuid",
		"debtorId":      uuid.NewString(),
		"processNumber": "123",
		"nature":        "Comum",
		"faceValue":     "10",
		"issueDate":     "2023-03-01",
		"budgetYear":    2025,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("courtId", suite.decodeError(w).Field)
	suite.listing.AssertNotCalled(suite.T(), "CreateListing")
}

func (suite *HandlersTestSuite) TestListListings_NormalizesPage() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)
	suite.listing.On("ListListings", mock.Anything, actor,
		mock.MatchedBy(func(f domain.ListingFilter) bool {
			return f.Status != nil && *f.Status == domain.ListingDisponivel && f.SortBy == domain.SortByFaceValue && f.SortDesc
		}),
		domain.Page{Limit: 100, Offset: 0},
	).Return([]domain.Listing{}, 0, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/listings?status=Dispon%C3%ADvel&ordering=-face_value&limit=500&offset=-3", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListListingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(100, body.Limit)
	suite.Equal(0, body.Offset)
	suite.Empty(body.Listings)
}

func (suite *HandlersTestSuite) TestListListings_UnknownStatus() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)

	w := suite.do(http.MethodGet, "/api/v1/listings?status=Bogus", token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("status", suite.decodeError(w).Field)
	suite.listing.AssertNotCalled(suite.T(), "ListListings")
}

func (suite *HandlersTestSuite) TestGetListing_OutOfScopeIsNotFound() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	listingID := uuid.NewString()
	suite.listing.On("GetListing", mock.Anything, actor, listingID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/listings/"+listingID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetListing_MalformedIDIsNotFound() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)

	w := suite.do(http.MethodGet, "/api/v1/listings/abc", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.listing.AssertNotCalled(suite.T(), "GetListing", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestProposalHistory_MalformedIDIsNotFound() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)

	w := suite.do(http.MethodGet, "/api/v1/proposals/42/history", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.proposal.AssertNotCalled(suite.T(), "ListHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetListing_InternalErrorIsHidden() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	listingID := uuid.NewString()
	suite.listing.On("GetListing", mock.Anything, actor, listingID).Return(nil, errors.New("connection refused")).Once()

	w := suite.do(http.MethodGet, "/api/v1/listings/"+listingID, token, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeError(w)
	suite.NotContains(body.Error, "connection refused")
	suite.Empty(body.Field)
}

func (suite *HandlersTestSuite) TestUpdateListing_NotOwner() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)
	listingID := uuid.NewString()
	suite.listing.On("UpdateListing", mock.Anything, actor, listingID, mock.Anything).
		Return(nil, apperrors.NewForbiddenError("only the owner may change this listing")).Once()

	w := suite.do(http.MethodPatch, "/api/v1/listings/"+listingID, token, map[string]string{"description": "mine now"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteListing_Success() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	listingID := uuid.NewString()
	suite.listing.On("DeleteListing", mock.Anything, actor, listingID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/listings/"+listingID, token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestUploadDocument_Success() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	listingID := uuid.NewString()
	content := []byte("%PDF-1.4 test")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	suite.Require().NoError(mw.WriteField("title", "Ofício requisitório"))
	fw, err := mw.CreateFormFile("file", "oficio.pdf")
	suite.Require().NoError(err)
	_, err = fw.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	doc := &domain.Document{DocumentID: uuid.NewString(), ListingID: listingID, Title: "Ofício requisitório", FileName: "oficio.pdf", SizeBytes: int64(len(content))}
	suite.document.On("UploadDocument", mock.Anything, actor, listingID, mock.MatchedBy(func(u portssvc.DocumentUpload) bool {
		return u.Title == "Ofício requisitório" && u.FileName == "oficio.pdf" && u.Size == int64(len(content)) && u.Body != nil
	})).Return(doc, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/"+listingID+"/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(doc.DocumentID, body.DocumentID)
}

func (suite *HandlersTestSuite) TestUploadDocument_MissingTitle() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "oficio.pdf")
	suite.Require().NoError(err)
	_, _ = fw.Write([]byte("%PDF"))
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("title", suite.decodeError(w).Field)
	suite.document.AssertNotCalled(suite.T(), "UploadDocument")
}

func (suite *HandlersTestSuite) TestTransitionDueDiligence_Approve() {
	actor := newActor(domain.RoleAdministrador)
	token := suite.login(actor)
	ddID := uuid.NewString()
	dd := &domain.DueDiligence{DueDiligenceID: ddID, ListingID: uuid.NewString(), Status: domain.DueDiligenceAprovado}
	suite.dueDiligence.On("TransitionDueDiligence", mock.Anything, actor, ddID, mock.MatchedBy(func(r dto.TransitionDueDiligenceRequest) bool {
		return r.Status == "APROVADO"
	})).Return(dd, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/due-diligences/"+ddID+"/transition", token, map[string]string{"status": "APROVADO"})

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DueDiligenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.DueDiligenceAprovado, body.Status)
}

func (suite *HandlersTestSuite) TestTransitionDueDiligence_UnknownStatusRejectedByBinding() {
	actor := newActor(domain.RoleAdministrador)
	token := suite.login(actor)

	w := suite.do(http.MethodPost, "/api/v1/due-diligences/"+uuid.NewString()+"/transition", token, map[string]string{"status": "DONE"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("status", suite.decodeError(w).Field)
}

func (suite *HandlersTestSuite) TestTransitionProposal_InvalidTransition() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)
	proposalID := uuid.NewString()
	suite.proposal.On("TransitionProposal", mock.Anything, actor, proposalID, dto.TransitionProposalRequest{Status: "ENVIADA"}).
		Return(nil, apperrors.NewInvalidTransitionError("cannot move from ACEITA to ENVIADA")).Once()

	w := suite.do(http.MethodPost, "/api/v1/proposals/"+proposalID+"/transition", token, map[string]string{"status": "ENVIADA"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.decodeError(w).Error, "ACEITA")
}

func (suite *HandlersTestSuite) TestListProposals_PassesListingFilter() {
	actor := newActor(domain.RoleBroker)
	token := suite.login(actor)
	listingID := uuid.NewString()
	suite.proposal.On("ListProposals", mock.Anything, actor,
		mock.MatchedBy(func(id *string) bool { return id != nil && *id == listingID }),
		domain.Page{Limit: 20, Offset: 0},
	).Return([]domain.Proposal{{ProposalID: uuid.NewString(), ListingID: listingID, Status: domain.ProposalEnviada}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/proposals?listing="+listingID, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.ProposalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(domain.ProposalEnviada, body[0].Status)
}

func (suite *HandlersTestSuite) TestExpireOverdue() {
	actor := newActor(domain.RoleAdministrador)
	token := suite.login(actor)
	expired := []domain.Proposal{{ProposalID: uuid.NewString(), Status: domain.ProposalExpirada}}
	suite.proposal.On("ExpireOverdue", mock.Anything, actor, mock.AnythingOfType("time.Time")).Return(expired, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/proposals/expire-overdue", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ExpireOverdueResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Expired, 1)
	suite.Equal(expired[0].ProposalID, body.Expired[0].ProposalID)
}

func (suite *HandlersTestSuite) TestListHistory() {
	actor := newActor(domain.RoleCedente)
	token := suite.login(actor)
	proposalID := uuid.NewString()
	suite.proposal.On("ListHistory", mock.Anything, actor, proposalID).Return([]domain.ProposalHistory{
		{HistoryID: uuid.NewString(), ProposalID: proposalID, StatusBefore: domain.ProposalRascunho, StatusAfter: domain.ProposalEnviada},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/proposals/"+proposalID+"/history", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.Contains(w.Body.String(), string(domain.ProposalEnviada)))
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
