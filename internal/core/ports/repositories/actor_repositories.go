package repositories

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// ActorReader defines read operations for actor data
type ActorReader interface {
	// FindActorByID retrieves an actor by ID.
	FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error)

	// FindActorByEmail retrieves an actor by email, case-insensitively.
	FindActorByEmail(ctx context.Context, email string) (*domain.Actor, error)
}

// ActorWriter defines write operations for actor data
type ActorWriter interface {
	// SaveActor persists a new actor and its addresses in one transaction.
	SaveActor(ctx context.Context, actor domain.Actor) error

	// UpdateActor updates profile, role and privilege flags of an existing actor.
	UpdateActor(ctx context.Context, actor domain.Actor) error

	// DeleteActor removes an actor. Addresses cascade; any other reference fails with a conflict.
	DeleteActor(ctx context.Context, actorID string) error
}

// ActorRepositoryFacade combines all actor-related repository interfaces
type ActorRepositoryFacade interface {
	ActorReader
	ActorWriter
}

// TokenDenylist records revoked access tokens until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, token domain.RevokedToken) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
