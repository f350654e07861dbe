package domain

import "time"

// Role is the tag that gates every policy decision made for an actor.
type Role string

const (
	RoleCedente       Role = "Cedente"
	RoleBroker        Role = "Broker"
	RoleAdvogado      Role = "Advogado"
	RoleAdministrador Role = "Administrador"
)

// ParseRole returns the role matching s, or false when s names no known role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCedente, RoleBroker, RoleAdvogado, RoleAdministrador:
		return r, true
	}
	return "", false
}

// Actor is an authenticated user of the marketplace.
type Actor struct {
	ActorID      string  `json:"actorID"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `json:"name"`
	CPF          *string `json:"cpf,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Role         Role    `json:"role"`
	IsActive     bool    `json:"isActive"`
	IsStaff      bool    `json:"isStaff"`
	IsSuperuser  bool    `json:"isSuperuser"`
	AuditFields
	Addresses []Address `json:"addresses,omitempty"`
}

// IsPrivileged reports whether the actor bypasses ownership and visibility rules.
func (a *Actor) IsPrivileged() bool {
	return a.IsStaff || a.Role == RoleAdministrador
}

// HasAnyRole reports whether the actor's role is one of roles.
func (a *Actor) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// EnforcePrivilegeInvariant grants staff and superuser rights to administrators.
// It must run on every write path of an actor, before commit.
func (a *Actor) EnforcePrivilegeInvariant() {
	if a.Role == RoleAdministrador {
		a.IsStaff = true
		a.IsSuperuser = true
	}
}

// Address is a postal address owned by an actor.
type Address struct {
	AddressID  string  `json:"addressID"`
	ActorID    string  `json:"actorID"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Complement *string `json:"complement,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	ZipCode    *string `json:"zipCode,omitempty"`
	AuditFields
}

// RevokedToken identifies an access token that must no longer authenticate.
type RevokedToken struct {
	TokenID   string
	ExpiresAt time.Time
}

// AccessToken is a signed bearer credential issued to an actor.
type AccessToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}
