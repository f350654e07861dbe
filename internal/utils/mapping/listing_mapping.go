package mapping

import (
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
)

// ToModelListing converts a domain Listing to a model Listing
func ToModelListing(d domain.Listing) models.Listing {
	return models.Listing{
		ListingID:     d.ListingID,
		CedenteID:     d.CedenteID,
		AdvogadoID:    ToNullString(d.AdvogadoID),
		CourtID:       d.CourtID,
		DebtorID:      d.DebtorID,
		ProcessNumber: d.ProcessNumber,
		Nature:        string(d.Nature),
		FaceValue:     d.FaceValue,
		AskingValue:   ToNullDecimal(d.AskingValue),
		FeePercent:    d.FeePercent,
		IssueDate:     d.IssueDate,
		BudgetYear:    d.BudgetYear,
		Status:        string(d.Status),
		Description:   ToNullString(d.Description),
		AuditFields:   models.AuditFields(d.AuditFields),
	}
}

// ToDomainListing converts a model Listing to a domain Listing
func ToDomainListing(m models.Listing) domain.Listing {
	return domain.Listing{
		ListingID:     m.ListingID,
		CedenteID:     m.CedenteID,
		AdvogadoID:    FromNullString(m.AdvogadoID),
		CourtID:       m.CourtID,
		DebtorID:      m.DebtorID,
		ProcessNumber: m.ProcessNumber,
		Nature:        domain.Nature(m.Nature),
		FaceValue:     m.FaceValue,
		AskingValue:   FromNullDecimal(m.AskingValue),
		FeePercent:    m.FeePercent,
		IssueDate:     m.IssueDate,
		BudgetYear:    m.BudgetYear,
		Status:        domain.ListingStatus(m.Status),
		Description:   FromNullString(m.Description),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
}

// ToDomainListingSlice converts a slice of model Listings to domain Listings
func ToDomainListingSlice(ms []models.Listing) []domain.Listing {
	ds := make([]domain.Listing, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainListing(m)
	}
	return ds
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document(m)
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
