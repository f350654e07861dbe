package dto

import "github.com/SscSPs/precatorio_marketplace/internal/core/domain"

// CreateCourtRequest defines the data needed to register a court.
type CreateCourtRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Acronym string  `json:"acronym" binding:"required,max=20"`
	State   *string `json:"state" binding:"omitempty,uf"`
}

// CreateDebtorRequest defines the data needed to register a debtor entity.
type CreateDebtorRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	CNPJ   *string `json:"cnpj" binding:"omitempty,cnpj"`
	Sphere string  `json:"sphere" binding:"required,oneof=Federal Estadual Municipal"`
}

// ListCourtsResponse wraps the list of courts.
type ListCourtsResponse struct {
	Courts []domain.Court `json:"courts"`
}

// ListDebtorsResponse wraps the list of debtor entities.
type ListDebtorsResponse struct {
	Debtors []domain.DebtorEntity `json:"debtors"`
}
