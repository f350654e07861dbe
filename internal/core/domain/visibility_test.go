package domain_test

import (
	"testing"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestScopeFor(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		want  domain.VisibilityScope
	}{
		{
			name:  "administrator sees everything",
			actor: domain.Actor{ActorID: "adm", Role: domain.RoleAdministrador},
			want:  domain.VisibilityScope{All: true},
		},
		{
			name:  "staff cedente sees everything",
			actor: domain.Actor{ActorID: "st", Role: domain.RoleCedente, IsStaff: true},
			want:  domain.VisibilityScope{All: true},
		},
		{
			name:  "cedente sees own",
			actor: domain.Actor{ActorID: "c1", Role: domain.RoleCedente},
			want:  domain.VisibilityScope{OwnerID: "c1"},
		},
		{
			name:  "broker sees own and available",
			actor: domain.Actor{ActorID: "b1", Role: domain.RoleBroker},
			want:  domain.VisibilityScope{OwnerID: "b1", IncludeAvailable: true},
		},
		{
			name:  "advogado sees own and available",
			actor: domain.Actor{ActorID: "a1", Role: domain.RoleAdvogado},
			want:  domain.VisibilityScope{OwnerID: "a1", IncludeAvailable: true},
		},
		{
			name:  "unknown role falls back to own",
			actor: domain.Actor{ActorID: "x", Role: domain.Role("Outro")},
			want:  domain.VisibilityScope{OwnerID: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ScopeFor(&tt.actor))
		})
	}
}

func TestCanView(t *testing.T) {
	owner := domain.Actor{ActorID: "owner", Role: domain.RoleCedente}
	otherCedente := domain.Actor{ActorID: "other", Role: domain.RoleCedente}
	broker := domain.Actor{ActorID: "broker", Role: domain.RoleBroker}
	admin := domain.Actor{ActorID: "admin", Role: domain.RoleAdministrador}

	available := domain.Listing{CedenteID: "owner", Status: domain.ListingDisponivel}
	underReview := domain.Listing{CedenteID: "owner", Status: domain.ListingEmAnalise}

	tests := []struct {
		name    string
		actor   domain.Actor
		listing domain.Listing
		want    bool
	}{
		{"owner sees listing under review", owner, underReview, true},
		{"other cedente never sees foreign listing", otherCedente, available, false},
		{"broker sees available listing", broker, available, true},
		{"broker does not see listing under review", broker, underReview, false},
		{"admin sees listing under review", admin, underReview, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanView(&tt.actor, &tt.listing))
		})
	}
}

func TestCanMutate(t *testing.T) {
	listing := domain.Listing{CedenteID: "owner", Status: domain.ListingDisponivel}

	assert.True(t, domain.CanMutate(&domain.Actor{ActorID: "owner", Role: domain.RoleCedente}, &listing))
	assert.True(t, domain.CanMutate(&domain.Actor{ActorID: "adm", Role: domain.RoleAdministrador}, &listing))
	assert.False(t, domain.CanMutate(&domain.Actor{ActorID: "broker", Role: domain.RoleBroker}, &listing))
}

func TestActor_EnforcePrivilegeInvariant(t *testing.T) {
	admin := domain.Actor{Role: domain.RoleAdministrador}
	admin.EnforcePrivilegeInvariant()
	assert.True(t, admin.IsStaff)
	assert.True(t, admin.IsSuperuser)

	admin.EnforcePrivilegeInvariant()
	assert.True(t, admin.IsStaff)
	assert.True(t, admin.IsSuperuser)

	broker := domain.Actor{Role: domain.RoleBroker}
	broker.EnforcePrivilegeInvariant()
	assert.False(t, broker.IsStaff)
	assert.False(t, broker.IsSuperuser)
}
