package middleware

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	actorKey = contextKey("actor")
	tokenKey = contextKey("token")
)

// TokenInfo identifies the access token that authenticated the request.
type TokenInfo struct {
	TokenID   string
	ExpiresAt time.Time
}

// WithActor returns a copy of ctx carrying the resolved actor and its token.
func WithActor(ctx context.Context, actor *domain.Actor, token TokenInfo) context.Context {
	ctx = context.WithValue(ctx, actorKey, actor)
	return context.WithValue(ctx, tokenKey, token)
}

// GetActorFromContext retrieves the authenticated actor from the request context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (*domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(*domain.Actor)
	return actor, ok && actor != nil
}

// GetTokenFromContext retrieves the token that authenticated the request.
func GetTokenFromContext(c *gin.Context) (TokenInfo, bool) {
	token, ok := c.Request.Context().Value(tokenKey).(TokenInfo)
	return token, ok
}
