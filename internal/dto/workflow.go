package dto

import (
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenDueDiligenceRequest defines the data needed to open a review on a listing.
type OpenDueDiligenceRequest struct {
	AnalystID string `json:"analystId" binding:"required,uuid"`
	Notes     string `json:"notes" binding:"required"`
}

// TransitionDueDiligenceRequest moves a review to a new status.
type TransitionDueDiligenceRequest struct {
	Status             string  `json:"status" binding:"required,oneof=PENDENTE EM_ANALISE APROVADO REPACTUADO REJEITADO"`
	Notes              *string `json:"notes"`
	RepactuationReason *string `json:"repactuationReason"`
	DocumentApproved   *bool   `json:"documentApproved"`
}

// DueDiligenceResponse defines the data returned for a review.
type DueDiligenceResponse struct {
	DueDiligenceID     string                    `json:"dueDiligenceID"`
	ListingID          string                    `json:"listingID"`
	AnalystID          string                    `json:"analystID"`
	Status             domain.DueDiligenceStatus `json:"status"`
	Notes              string                    `json:"notes"`
	DocumentApproved   bool                      `json:"documentApproved"`
	RepactuationReason *string                   `json:"repactuationReason,omitempty"`
	StartedAt          *time.Time                `json:"startedAt,omitempty"`
	CompletedAt        *time.Time                `json:"completedAt,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// ToDueDiligenceResponse converts a domain.DueDiligence to its response DTO
func ToDueDiligenceResponse(d *domain.DueDiligence) DueDiligenceResponse {
	return DueDiligenceResponse{
		DueDiligenceID:     d.DueDiligenceID,
		ListingID:          d.ListingID,
		AnalystID:          d.AnalystID,
		Status:             d.Status,
		Notes:              d.Notes,
		DocumentApproved:   d.DocumentApproved,
		RepactuationReason: d.RepactuationReason,
		StartedAt:          d.StartedAt,
		CompletedAt:        d.CompletedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// ToListDueDiligenceResponse converts a slice of reviews to response DTOs
func ToListDueDiligenceResponse(dds []domain.DueDiligence) []DueDiligenceResponse {
	res := make([]DueDiligenceResponse, len(dds))
	for i := range dds {
		res[i] = ToDueDiligenceResponse(&dds[i])
	}
	return res
}

// CreateProposalRequest defines the terms of a new purchase offer.
type CreateProposalRequest struct {
	ProposedValue       *decimal.Decimal `json:"proposedValue" binding:"required"`
	DiscountRate        *decimal.Decimal `json:"discountRate" binding:"required"`
	AnnualInterestRate  *decimal.Decimal `json:"annualInterestRate" binding:"required"`
	TermMonths          int              `json:"termMonths" binding:"required,min=1"`
	NetValueCedente     *decimal.Decimal `json:"netValueCedente" binding:"required"`
	NetValueProponent   *decimal.Decimal `json:"netValueProponent" binding:"required"`
	ProfitMarginPercent *decimal.Decimal `json:"profitMarginPercent" binding:"required"`
	DueDate             string           `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Notes               *string          `json:"notes"`
}

// TransitionProposalRequest moves a proposal to a new status. The reason is checked by the
// service so that a missing reason is reported the same way on every path.
type TransitionProposalRequest struct {
	Status        string           `json:"status" binding:"required"`
	Reason        string           `json:"reason"`
	ProposedValue *decimal.Decimal `json:"proposedValue"`
}

// ReviseProposalRequest changes the proposed value without changing status.
type ReviseProposalRequest struct {
	ProposedValue *decimal.Decimal `json:"proposedValue" binding:"required"`
	Reason        string           `json:"reason"`
}

// ListProposalsParams defines query parameters for listing proposals.
type ListProposalsParams struct {
	ListingID *string `form:"listing" binding:"omitempty,uuid"`
	Limit     int     `form:"limit,default=20"`
	Offset    int     `form:"offset,default=0"`
}

// Page returns the pagination window of the query.
func (p ListProposalsParams) Page() domain.Page {
	return domain.Page{Limit: p.Limit, Offset: p.Offset}.Normalize()
}

// ProposalResponse defines the data returned for a proposal.
type ProposalResponse struct {
	ProposalID          string                `json:"proposalID"`
	ListingID           string                `json:"listingID"`
	ProposerID          string                `json:"proposerID"`
	ProposedValue       decimal.Decimal       `json:"proposedValue"`
	DiscountRate        decimal.Decimal       `json:"discountRate"`
	AnnualInterestRate  decimal.Decimal       `json:"annualInterestRate"`
	TermMonths          int                   `json:"termMonths"`
	NetValueCedente     decimal.Decimal       `json:"netValueCedente"`
	NetValueProponent   decimal.Decimal       `json:"netValueProponent"`
	ProfitMarginPercent decimal.Decimal       `json:"profitMarginPercent"`
	DueDate             string                `json:"dueDate"`
	Status              domain.ProposalStatus `json:"status"`
	Notes               *string               `json:"notes,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
	UpdatedAt           time.Time             `json:"updatedAt"`
}

// ToProposalResponse converts a domain.Proposal to ProposalResponse DTO
func ToProposalResponse(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID:          p.ProposalID,
		ListingID:           p.ListingID,
		ProposerID:          p.ProposerID,
		ProposedValue:       p.ProposedValue,
		DiscountRate:        p.DiscountRate,
		AnnualInterestRate:  p.AnnualInterestRate,
		TermMonths:          p.TermMonths,
		NetValueCedente:     p.NetValueCedente,
		NetValueProponent:   p.NetValueProponent,
		ProfitMarginPercent: p.ProfitMarginPercent,
		DueDate:             p.DueDate.Format(time.DateOnly),
		Status:              p.Status,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ToListProposalResponse converts a slice of proposals to response DTOs
func ToListProposalResponse(ps []domain.Proposal) []ProposalResponse {
	res := make([]ProposalResponse, len(ps))
	for i := range ps {
		res[i] = ToProposalResponse(&ps[i])
	}
	return res
}

// ExpireOverdueResponse reports the result of an expiry sweep.
type ExpireOverdueResponse struct {
	Expired []ProposalResponse `json:"expired"`
}
