package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the negotiation state of a purchase offer.
type ProposalStatus string

const (
	ProposalRascunho  ProposalStatus = "RASCUNHO"
	ProposalEnviada   ProposalStatus = "ENVIADA"
	ProposalAceita    ProposalStatus = "ACEITA"
	ProposalRejeitada ProposalStatus = "REJEITADA"
	ProposalExpirada  ProposalStatus = "EXPIRADA"
)

var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalRascunho: {ProposalEnviada},
	ProposalEnviada:  {ProposalAceita, ProposalRejeitada, ProposalExpirada},
}

// ParseProposalStatus returns the status matching s, or false when s is unknown.
func ParseProposalStatus(s string) (ProposalStatus, bool) {
	switch st := ProposalStatus(s); st {
	case ProposalRascunho, ProposalEnviada, ProposalAceita, ProposalRejeitada, ProposalExpirada:
		return st, true
	}
	return "", false
}

// CanTransitionTo reports whether next is a permitted successor of s.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Revisable reports whether the proposal value may still change.
func (s ProposalStatus) Revisable() bool {
	return s == ProposalRascunho || s == ProposalEnviada
}

// Proposal is a buyer's offer on a listing.
type Proposal struct {
	ProposalID          string          `json:"proposalID"`
	ListingID           string          `json:"listingID"`
	ProposerID          string          `json:"proposerID"`
	ProposedValue       decimal.Decimal `json:"proposedValue"`
	DiscountRate        decimal.Decimal `json:"discountRate"`
	AnnualInterestRate  decimal.Decimal `json:"annualInterestRate"`
	TermMonths          int             `json:"termMonths"`
	NetValueCedente     decimal.Decimal `json:"netValueCedente"`
	NetValueProponent   decimal.Decimal `json:"netValueProponent"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	DueDate             time.Time       `json:"dueDate"`
	Status              ProposalStatus  `json:"status"`
	Notes               *string         `json:"notes,omitempty"`
	AuditFields
}

// IsOverdue reports whether a sent proposal's due date lies before the day of now.
func (p *Proposal) IsOverdue(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return p.Status == ProposalEnviada && p.DueDate.Before(today)
}

// ProposalHistory is an immutable record of one proposal transition.
type ProposalHistory struct {
	HistoryID    string          `json:"historyID"`
	ProposalID   string          `json:"proposalID"`
	StatusBefore ProposalStatus  `json:"statusBefore"`
	StatusAfter  ProposalStatus  `json:"statusAfter"`
	ValueBefore  decimal.Decimal `json:"valueBefore"`
	ValueAfter   decimal.Decimal `json:"valueAfter"`
	ActorID      string          `json:"actorID"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProposalTransition carries a requested change through the repository in one transaction.
type ProposalTransition struct {
	Proposal    *Proposal
	From        ProposalStatus
	History     ProposalHistory
	ListingMove *ListingMove
}
