package mapping

import (
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
)

// ToModelDueDiligence converts a domain DueDiligence to a model DueDiligence
func ToModelDueDiligence(d domain.DueDiligence) models.DueDiligence {
	return models.DueDiligence{
		DueDiligenceID:     d.DueDiligenceID,
		ListingID:          d.ListingID,
		AnalystID:          d.AnalystID,
		Status:             string(d.Status),
		Notes:              d.Notes,
		DocumentApproved:   d.DocumentApproved,
		RepactuationReason: ToNullString(d.RepactuationReason),
		StartedAt:          ToNullTime(d.StartedAt),
		CompletedAt:        ToNullTime(d.CompletedAt),
		AuditFields:        models.AuditFields(d.AuditFields),
	}
}

// ToDomainDueDiligence converts a model DueDiligence to a domain DueDiligence
func ToDomainDueDiligence(m models.DueDiligence) domain.DueDiligence {
	return domain.DueDiligence{
		DueDiligenceID:     m.DueDiligenceID,
		ListingID:          m.ListingID,
		AnalystID:          m.AnalystID,
		Status:             domain.DueDiligenceStatus(m.Status),
		Notes:              m.Notes,
		DocumentApproved:   m.DocumentApproved,
		RepactuationReason: FromNullString(m.RepactuationReason),
		StartedAt:          FromNullTime(m.StartedAt),
		CompletedAt:        FromNullTime(m.CompletedAt),
		AuditFields:        domain.AuditFields(m.AuditFields),
	}
}

// ToModelProposal converts a domain Proposal to a model Proposal
func ToModelProposal(d domain.Proposal) models.Proposal {
	return models.Proposal{
		ProposalID:          d.ProposalID,
		ListingID:           d.ListingID,
		ProposerID:          d.ProposerID,
		ProposedValue:       d.ProposedValue,
		DiscountRate:        d.DiscountRate,
		AnnualInterestRate:  d.AnnualInterestRate,
		TermMonths:          d.TermMonths,
		NetValueCedente:     d.NetValueCedente,
		NetValueProponent:   d.NetValueProponent,
		ProfitMarginPercent: d.ProfitMarginPercent,
		DueDate:             d.DueDate,
		Status:              string(d.Status),
		Notes:               ToNullString(d.Notes),
		AuditFields:         models.AuditFields(d.AuditFields),
	}
}

// ToDomainProposal converts a model Proposal to a domain Proposal
func ToDomainProposal(m models.Proposal) domain.Proposal {
	return domain.Proposal{
		ProposalID:          m.ProposalID,
		ListingID:           m.ListingID,
		ProposerID:          m.ProposerID,
		ProposedValue:       m.ProposedValue,
		DiscountRate:        m.DiscountRate,
		AnnualInterestRate:  m.AnnualInterestRate,
		TermMonths:          m.TermMonths,
		NetValueCedente:     m.NetValueCedente,
		NetValueProponent:   m.NetValueProponent,
		ProfitMarginPercent: m.ProfitMarginPercent,
		DueDate:             m.DueDate,
		Status:              domain.ProposalStatus(m.Status),
		Notes:               FromNullString(m.Notes),
		AuditFields:         domain.AuditFields(m.AuditFields),
	}
}

// ToDomainProposalSlice converts a slice of model Proposals to domain Proposals
func ToDomainProposalSlice(ms []models.Proposal) []domain.Proposal {
	ds := make([]domain.Proposal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProposal(m)
	}
	return ds
}

// ToDomainProposalHistory converts a model ProposalHistory to a domain ProposalHistory
func ToDomainProposalHistory(m models.ProposalHistory) domain.ProposalHistory {
	return domain.ProposalHistory{
		HistoryID:    m.HistoryID,
		ProposalID:   m.ProposalID,
		StatusBefore: domain.ProposalStatus(m.StatusBefore),
		StatusAfter:  domain.ProposalStatus(m.StatusAfter),
		ValueBefore:  m.ValueBefore,
		ValueAfter:   m.ValueAfter,
		ActorID:      m.ActorID,
		Reason:       m.Reason,
		CreatedAt:    m.CreatedAt,
	}
}
