package mapping

import (
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
)

// ToModelActor converts a domain Actor to a model Actor
func ToModelActor(d domain.Actor) models.Actor {
	return models.Actor{
		ActorID:      d.ActorID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		CPF:          ToNullString(d.CPF),
		Phone:        ToNullString(d.Phone),
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		IsStaff:      d.IsStaff,
		IsSuperuser:  d.IsSuperuser,
		AuditFields:  models.AuditFields(d.AuditFields),
	}
}

// ToDomainActor converts a model Actor to a domain Actor
func ToDomainActor(m models.Actor) domain.Actor {
	return domain.Actor{
		ActorID:      m.ActorID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CPF:          FromNullString(m.CPF),
		Phone:        FromNullString(m.Phone),
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		IsStaff:      m.IsStaff,
		IsSuperuser:  m.IsSuperuser,
		AuditFields:  domain.AuditFields(m.AuditFields),
	}
}

// ToModelAddress converts a domain Address to a model Address
func ToModelAddress(d domain.Address) models.Address {
	return models.Address{
		AddressID:   d.AddressID,
		ActorID:     d.ActorID,
		Street:      ToNullString(d.Street),
		Number:      ToNullString(d.Number),
		Complement:  ToNullString(d.Complement),
		City:        ToNullString(d.City),
		State:       ToNullString(d.State),
		ZipCode:     ToNullString(d.ZipCode),
		AuditFields: models.AuditFields(d.AuditFields),
	}
}

// ToDomainAddress converts a model Address to a domain Address
func ToDomainAddress(m models.Address) domain.Address {
	return domain.Address{
		AddressID:   m.AddressID,
		ActorID:     m.ActorID,
		Street:      FromNullString(m.Street),
		Number:      FromNullString(m.Number),
		Complement:  FromNullString(m.Complement),
		City:        FromNullString(m.City),
		State:       FromNullString(m.State),
		ZipCode:     FromNullString(m.ZipCode),
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAddressSlice converts a slice of model Addresses to domain Addresses
func ToDomainAddressSlice(ms []models.Address) []domain.Address {
	ds := make([]domain.Address, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAddress(m)
	}
	return ds
}

// ToDomainCourt converts a model Court to a domain Court
func ToDomainCourt(m models.Court) domain.Court {
	return domain.Court{CourtID: m.CourtID, Name: m.Name, Acronym: m.Acronym, State: FromNullString(m.State)}
}

// ToDomainDebtor converts a model DebtorEntity to a domain DebtorEntity
func ToDomainDebtor(m models.DebtorEntity) domain.DebtorEntity {
	return domain.DebtorEntity{DebtorID: m.DebtorID, Name: m.Name, CNPJ: FromNullString(m.CNPJ), Sphere: domain.Sphere(m.Sphere)}
}
