package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the marketplace lifecycle state of a listing.
type ListingStatus string

const (
	ListingEmAnalise    ListingStatus = "Em Análise"
	ListingDisponivel   ListingStatus = "Disponível"
	ListingEmNegociacao ListingStatus = "Em Negociação"
	ListingVendido      ListingStatus = "Vendido"
	ListingSuspenso     ListingStatus = "Suspenso"
)

// ParseListingStatus returns the status matching s, or false when s is unknown.
func ParseListingStatus(s string) (ListingStatus, bool) {
	switch st := ListingStatus(s); st {
	case ListingEmAnalise, ListingDisponivel, ListingEmNegociacao, ListingVendido, ListingSuspenso:
		return st, true
	}
	return "", false
}

// Nature classifies the credit origin.
type Nature string

const (
	NatureAlimentar Nature = "Alimentar"
	NatureComum     Nature = "Comum"
)

// ParseNature returns the nature matching s, or false when s is unknown.
func ParseNature(s string) (Nature, bool) {
	switch n := Nature(s); n {
	case NatureAlimentar, NatureComum:
		return n, true
	}
	return "", false
}

// Listing is a precatório offered on the marketplace.
type Listing struct {
	ListingID     string           `json:"listingID"`
	CedenteID     string           `json:"cedenteID"`
	AdvogadoID    *string          `json:"advogadoID,omitempty"`
	CourtID       string           `json:"courtID"`
	DebtorID      string           `json:"debtorID"`
	ProcessNumber string           `json:"processNumber"`
	Nature        Nature           `json:"nature"`
	FaceValue     decimal.Decimal  `json:"faceValue"`
	AskingValue   *decimal.Decimal `json:"askingValue,omitempty"`
	FeePercent    decimal.Decimal  `json:"feePercent"`
	IssueDate     time.Time        `json:"issueDate"`
	BudgetYear    int              `json:"budgetYear"`
	Status        ListingStatus    `json:"status"`
	Description   *string          `json:"description,omitempty"`
	AuditFields

	Court     *Court        `json:"court,omitempty"`
	Debtor    *DebtorEntity `json:"debtor,omitempty"`
	Documents []Document    `json:"documents,omitempty"`
}

// AskingWithinFace reports whether the asking value, when set, does not exceed face.
func AskingWithinFace(face decimal.Decimal, asking *decimal.Decimal) bool {
	return asking == nil || asking.LessThanOrEqual(face)
}

// ListingMove is a conditional status change applied to a listing as a side effect of another
// workflow. It only takes effect while the listing is still in From.
type ListingMove struct {
	ListingID string
	From      ListingStatus
	To        ListingStatus
}

// ListingSortField names the columns a listing query can be ordered by.
type ListingSortField string

const (
	SortByFaceValue  ListingSortField = "face_value"
	SortByCreatedAt  ListingSortField = "created_at"
	SortByBudgetYear ListingSortField = "budget_year"
)

// ListingFilter holds optional query filters. They narrow the visibility scope, never widen it.
type ListingFilter struct {
	Status        *ListingStatus
	CourtID       *string
	DebtorID      *string
	Nature        *Nature
	BudgetYear    *int
	BudgetYearGTE *int
	BudgetYearLTE *int
	FaceValueGTE  *decimal.Decimal
	FaceValueLTE  *decimal.Decimal
	Search        string
	SortBy        ListingSortField
	SortDesc      bool
}

// Document is a file attached to a listing.
type Document struct {
	DocumentID string    `json:"documentID"`
	ListingID  string    `json:"listingID"`
	Title      string    `json:"title"`
	FileRef    string    `json:"fileRef"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}
