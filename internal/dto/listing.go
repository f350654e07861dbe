package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateListingRequest defines the data needed to put a precatório on the marketplace.
type CreateListingRequest struct {
	CedenteID     *string          `json:"cedenteId" binding:"omitempty,uuid"` // Administrators only
	AdvogadoID    *string          `json:"advogadoId" binding:"omitempty,uuid"`
	CourtID       string           `json:"courtId" binding:"required,uuid"`
	DebtorID      string           `json:"debtorId" binding:"required,uuid"`
	ProcessNumber string           `json:"processNumber" binding:"required,max=50"`
	Nature        string           `json:"nature" binding:"required,oneof=Alimentar Comum"`
	FaceValue     *decimal.Decimal `json:"faceValue" binding:"required"`
	AskingValue   *decimal.Decimal `json:"askingValue"`
	FeePercent    *decimal.Decimal `json:"feePercent"`
	IssueDate     string           `json:"issueDate" binding:"required,datetime=2006-01-02"`
	BudgetYear    int              `json:"budgetYear" binding:"required,min=1988,max=2100"`
	Description   *string          `json:"description"`
}

// UpdateListingRequest defines the partially updatable listing fields.
type UpdateListingRequest struct {
	AdvogadoID  *string          `json:"advogadoId" binding:"omitempty,uuid"`
	AskingValue *decimal.Decimal `json:"askingValue"`
	FeePercent  *decimal.Decimal `json:"feePercent"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
}

// ListListingsParams defines query parameters for listing the marketplace.
type ListListingsParams struct {
	Status        *string `form:"status"`
	CourtID       *string `form:"court" binding:"omitempty,uuid"`
	DebtorID      *string `form:"debtor" binding:"omitempty,uuid"`
	Nature        *string `form:"nature" binding:"omitempty,oneof=Alimentar Comum"`
	BudgetYear    *int    `form:"budget_year"`
	BudgetYearGTE *int    `form:"budget_year_gte"`
	BudgetYearLTE *int    `form:"budget_year_lte"`
	FaceValueGTE  *string `form:"face_value_gte"`
	FaceValueLTE  *string `form:"face_value_lte"`
	Search        string  `form:"search"`
	Ordering      string  `form:"ordering"`
	Limit         int     `form:"limit,default=20"`
	Offset        int     `form:"offset,default=0"`
}

var orderingFields = map[string]domain.ListingSortField{
	"valor_face":    domain.SortByFaceValue,
	"face_value":    domain.SortByFaceValue,
	"created_at":    domain.SortByCreatedAt,
	"ano_orcamento": domain.SortByBudgetYear,
	"budget_year":   domain.SortByBudgetYear,
}

// ToListingFilter converts the query parameters into a domain filter.
func (p ListListingsParams) ToListingFilter() (domain.ListingFilter, error) {
	f := domain.ListingFilter{
		CourtID:       p.CourtID,
		DebtorID:      p.DebtorID,
		BudgetYear:    p.BudgetYear,
		BudgetYearGTE: p.BudgetYearGTE,
		BudgetYearLTE: p.BudgetYearLTE,
		Search:        strings.TrimSpace(p.Search),
		SortBy:        domain.SortByCreatedAt,
		SortDesc:      true,
	}
	if p.Status != nil {
		st, ok := domain.ParseListingStatus(*p.Status)
		if !ok {
			return f, apperrors.NewFieldValidationError("status", "unknown listing status")
		}
		f.Status = &st
	}
	if p.Nature != nil {
		n := domain.Nature(*p.Nature)
		f.Nature = &n
	}
	if p.FaceValueGTE != nil {
		v, err := decimal.NewFromString(*p.FaceValueGTE)
		if err != nil {
			return f, apperrors.NewFieldValidationError("face_value_gte", "must be a decimal number")
		}
		f.FaceValueGTE = &v
	}
	if p.FaceValueLTE != nil {
		v, err := decimal.NewFromString(*p.FaceValueLTE)
		if err != nil {
			return f, apperrors.NewFieldValidationError("face_value_lte", "must be a decimal number")
		}
		f.FaceValueLTE = &v
	}
	if p.Ordering != "" {
		name := strings.TrimPrefix(p.Ordering, "-")
		field, ok := orderingFields[name]
		if !ok {
			return f, apperrors.NewFieldValidationError("ordering", "unsupported ordering field")
		}
		f.SortBy = field
		f.SortDesc = strings.HasPrefix(p.Ordering, "-")
	}
	return f, nil
}

// Page returns the pagination window of the query.
func (p ListListingsParams) Page() domain.Page {
	return domain.Page{Limit: p.Limit, Offset: p.Offset}.Normalize()
}

// DocumentResponse defines the data returned for a listing document.
type DocumentResponse struct {
	DocumentID string    `json:"documentID"`
	ListingID  string    `json:"listingID"`
	Title      string    `json:"title"`
	FileRef    string    `json:"fileRef"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: d.DocumentID,
		ListingID:  d.ListingID,
		Title:      d.Title,
		FileRef:    d.FileRef,
		FileName:   d.FileName,
		SizeBytes:  d.SizeBytes,
		UploadedAt: d.UploadedAt,
	}
}

// ToListDocumentResponse converts a slice of domain.Document to DocumentResponse DTOs
func ToListDocumentResponse(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}

// ListingResponse defines the data returned for a listing.
type ListingResponse struct {
	ListingID     string               `json:"listingID"`
	CedenteID     string               `json:"cedenteID"`
	AdvogadoID    *string              `json:"advogadoID,omitempty"`
	Court         *domain.Court        `json:"court,omitempty"`
	CourtID       string               `json:"courtID"`
	Debtor        *domain.DebtorEntity `json:"debtor,omitempty"`
	DebtorID      string               `json:"debtorID"`
	ProcessNumber string               `json:"processNumber"`
	Nature        domain.Nature        `json:"nature"`
	FaceValue     decimal.Decimal      `json:"faceValue"`
	AskingValue   *decimal.Decimal     `json:"askingValue,omitempty"`
	FeePercent    decimal.Decimal      `json:"feePercent"`
	IssueDate     string               `json:"issueDate"`
	BudgetYear    int                  `json:"budgetYear"`
	Status        domain.ListingStatus `json:"status"`
	Description   *string              `json:"description,omitempty"`
	Documents     []DocumentResponse   `json:"documents,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ToListingResponse converts a domain.Listing to ListingResponse DTO
func ToListingResponse(l *domain.Listing) ListingResponse {
	var docs []DocumentResponse
	if len(l.Documents) > 0 {
		docs = ToListDocumentResponse(l.Documents)
	}
	return ListingResponse{
		ListingID:     l.ListingID,
		CedenteID:     l.CedenteID,
		AdvogadoID:    l.AdvogadoID,
		Court:         l.Court,
		CourtID:       l.CourtID,
		Debtor:        l.Debtor,
		DebtorID:      l.DebtorID,
		ProcessNumber: l.ProcessNumber,
		Nature:        l.Nature,
		FaceValue:     l.FaceValue,
		AskingValue:   l.AskingValue,
		FeePercent:    l.FeePercent,
		IssueDate:     l.IssueDate.Format(time.DateOnly),
		BudgetYear:    l.BudgetYear,
		Status:        l.Status,
		Description:   l.Description,
		Documents:     docs,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ListListingsResponse wraps one page of listings.
type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToListListingsResponse converts a page of listings to its response DTO
func ToListListingsResponse(listings []domain.Listing, total int, page domain.Page) ListListingsResponse {
	res := make([]ListingResponse, len(listings))
	for i := range listings {
		res[i] = ToListingResponse(&listings[i])
	}
	return ListListingsResponse{Listings: res, Total: total, Limit: page.Limit, Offset: page.Offset}
}
