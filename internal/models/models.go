package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds the timestamp columns shared by most tables.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Actor mirrors a row of the users table.
type Actor struct {
	ActorID      string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	CPF          sql.NullString `db:"cpf"`
	Phone        sql.NullString `db:"phone"`
	Role         string         `db:"role"`
	IsActive     bool           `db:"is_active"`
	IsStaff      bool           `db:"is_staff"`
	IsSuperuser  bool           `db:"is_superuser"`
	AuditFields
}

// Address mirrors a row of the addresses table.
type Address struct {
	AddressID  string         `db:"address_id"`
	ActorID    string         `db:"user_id"`
	Street     sql.NullString `db:"street"`
	Number     sql.NullString `db:"number"`
	Complement sql.NullString `db:"complement"`
	City       sql.NullString `db:"city"`
	State      sql.NullString `db:"state"`
	ZipCode    sql.NullString `db:"zip_code"`
	AuditFields
}

// Court mirrors a row of the courts table.
type Court struct {
	CourtID string         `db:"court_id"`
	Name    string         `db:"name"`
	Acronym string         `db:"acronym"`
	State   sql.NullString `db:"state"`
}

// DebtorEntity mirrors a row of the debtor_entities table.
type DebtorEntity struct {
	DebtorID string         `db:"debtor_id"`
	Name     string         `db:"name"`
	CNPJ     sql.NullString `db:"cnpj"`
	Sphere   string         `db:"sphere"`
}

// Listing mirrors a row of the listings table.
type Listing struct {
	ListingID     string              `db:"listing_id"`
	CedenteID     string              `db:"cedente_id"`
	AdvogadoID    sql.NullString      `db:"advogado_id"`
	CourtID       string              `db:"court_id"`
	DebtorID      string              `db:"debtor_id"`
	ProcessNumber string              `db:"process_number"`
	Nature        string              `db:"nature"`
	FaceValue     decimal.Decimal     `db:"face_value"`
	AskingValue   decimal.NullDecimal `db:"asking_value"`
	FeePercent    decimal.Decimal     `db:"fee_percent"`
	IssueDate     time.Time           `db:"issue_date"`
	BudgetYear    int                 `db:"budget_year"`
	Status        string              `db:"status"`
	Description   sql.NullString      `db:"description"`
	AuditFields
}

// Document mirrors a row of the listing_documents table.
type Document struct {
	DocumentID string    `db:"document_id"`
	ListingID  string    `db:"listing_id"`
	Title      string    `db:"title"`
	FileRef    string    `db:"file_ref"`
	FileName   string    `db:"file_name"`
	SizeBytes  int64     `db:"size_bytes"`
	UploadedAt time.Time `db:"uploaded_at"`
}

// DueDiligence mirrors a row of the due_diligences table.
type DueDiligence struct {
	DueDiligenceID     string         `db:"due_diligence_id"`
	ListingID          string         `db:"listing_id"`
	AnalystID          string         `db:"analyst_id"`
	Status             string         `db:"status"`
	Notes              string         `db:"notes"`
	DocumentApproved   bool           `db:"document_approved"`
	RepactuationReason sql.NullString `db:"repactuation_reason"`
	StartedAt          sql.NullTime   `db:"started_at"`
	CompletedAt        sql.NullTime   `db:"completed_at"`
	AuditFields
}

// Proposal mirrors a row of the proposals table.
type Proposal struct {
	ProposalID          string          `db:"proposal_id"`
	ListingID           string          `db:"listing_id"`
	ProposerID          string          `db:"proposer_id"`
	ProposedValue       decimal.Decimal `db:"proposed_value"`
	DiscountRate        decimal.Decimal `db:"discount_rate"`
	AnnualInterestRate  decimal.Decimal `db:"annual_interest_rate"`
	TermMonths          int             `db:"term_months"`
	NetValueCedente     decimal.Decimal `db:"net_value_cedente"`
	NetValueProponent   decimal.Decimal `db:"net_value_proponent"`
	ProfitMarginPercent decimal.Decimal `db:"profit_margin_percent"`
	DueDate             time.Time       `db:"due_date"`
	Status              string          `db:"status"`
	Notes               sql.NullString  `db:"notes"`
	AuditFields
}

// ProposalHistory mirrors a row of the append-only proposal_history table.
type ProposalHistory struct {
	HistoryID    string          `db:"history_id"`
	ProposalID   string          `db:"proposal_id"`
	StatusBefore string          `db:"status_before"`
	StatusAfter  string          `db:"status_after"`
	ValueBefore  decimal.Decimal `db:"value_before"`
	ValueAfter   decimal.Decimal `db:"value_after"`
	ActorID      string          `db:"actor_id"`
	Reason       string          `db:"reason"`
	CreatedAt    time.Time       `db:"created_at"`
}
