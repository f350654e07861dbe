package services

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// ActorResolverSvc turns a validated token into the actor it authenticates.
type ActorResolverSvc interface {
	// ResolveActor fails with ErrUnauthorized when the token was revoked or the actor is
	// missing or inactive.
	ResolveActor(ctx context.Context, actorID, tokenID string) (*domain.Actor, error)
}

// AuthSvcFacade defines account opening and session operations.
type AuthSvcFacade interface {
	ActorResolverSvc

	// Register opens a new account together with its addresses.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Actor, error)

	// Login checks credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Actor, *domain.AccessToken, error)

	// SignInWithVerifiedEmail issues an access token for the existing actor owning email.
	SignInWithVerifiedEmail(ctx context.Context, email string, verified bool) (*domain.Actor, *domain.AccessToken, error)

	// Logout revokes the token until it expires.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// GoogleOAuthSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
