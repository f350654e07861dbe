package dto

import (
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// UpdateMeRequest defines the profile fields an actor may change on its own account.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateMeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,min=3,max=150"`
	CPF      *string `json:"cpf" binding:"omitempty,cpf"`
	Phone    *string `json:"phone" binding:"omitempty,numeric,min=10,max=11"`
}

// ChangeRoleRequest defines the payload for the privileged role change.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ActorResponse defines the data returned for an actor.
type ActorResponse struct {
	ActorID     string            `json:"actorID"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	CPF         *string           `json:"cpf,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Role        domain.Role       `json:"role"`
	IsActive    bool              `json:"isActive"`
	IsStaff     bool              `json:"isStaff"`
	IsSuperuser bool              `json:"isSuperuser"`
	Addresses   []AddressResponse `json:"addresses,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ToActorResponse converts a domain.Actor to ActorResponse DTO
func ToActorResponse(a *domain.Actor) ActorResponse {
	var addresses []AddressResponse
	if len(a.Addresses) > 0 {
		addresses = ToListAddressResponse(a.Addresses)
	}
	return ActorResponse{
		ActorID:     a.ActorID,
		Username:    a.Username,
		Email:       a.Email,
		Name:        a.Name,
		CPF:         a.CPF,
		Phone:       a.Phone,
		Role:        a.Role,
		IsActive:    a.IsActive,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		Addresses:   addresses,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AddressRequest is used both to create and to update an address.
type AddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=255"`
	Number     *string `json:"number" binding:"omitempty,max=20"`
	Complement *string `json:"complement" binding:"omitempty,max=255"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	State      *string `json:"state" binding:"omitempty,uf"`
	ZipCode    *string `json:"zipCode" binding:"omitempty,cep"`
}

// AddressResponse defines the data returned for an address.
type AddressResponse struct {
	AddressID  string    `json:"addressID"`
	Street     *string   `json:"street,omitempty"`
	Number     *string   `json:"number,omitempty"`
	Complement *string   `json:"complement,omitempty"`
	City       *string   `json:"city,omitempty"`
	State      *string   `json:"state,omitempty"`
	ZipCode    *string   `json:"zipCode,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToAddressResponse converts a domain.Address to AddressResponse DTO
func ToAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		AddressID:  a.AddressID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToListAddressResponse converts a slice of domain.Address to a slice of AddressResponse DTOs
func ToListAddressResponse(addresses []domain.Address) []AddressResponse {
	res := make([]AddressResponse, len(addresses))
	for i := range addresses {
		res[i] = ToAddressResponse(&addresses[i])
	}
	return res
}
