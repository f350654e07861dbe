package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/platform/config"
	"github.com/SscSPs/precatorio_marketplace/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var errInvalidCredentials = apperrors.NewUnauthorizedError("invalid email or password")

// authService implements AuthSvcFacade.
type authService struct {
	BaseService
	cfg       *config.Config
	actorRepo portsrepo.ActorRepositoryFacade
	denylist  portsrepo.TokenDenylist
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, actorRepo portsrepo.ActorRepositoryFacade, denylist portsrepo.TokenDenylist) portssvc.AuthSvcFacade {
	return &authService{
		cfg:       cfg,
		actorRepo: actorRepo,
		denylist:  denylist,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Actor, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.NewFieldValidationError("passwordConfirm", "passwords do not match")
	}

	role := domain.RoleCedente
	if req.Role != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, apperrors.NewFieldValidationError("role", "unknown role")
		}
		role = parsed
	}
	if role == domain.RoleAdministrador {
		return nil, apperrors.NewFieldValidationError("role", "the Administrador role cannot be self-assigned")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	actor := domain.Actor{
		ActorID:      uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		CPF:          req.CPF,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	for _, a := range req.Addresses {
		actor.Addresses = append(actor.Addresses, newAddress(actor.ActorID, a, now))
	}
	actor.EnforcePrivilegeInvariant()

	if err := s.actorRepo.SaveActor(ctx, actor); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save actor", slog.String("username", actor.Username))
		return nil, err
	}

	s.LogInfo(ctx, "Actor registered",
		slog.String("actor_id", actor.ActorID),
		slog.String("role", string(actor.Role)))
	return &actor, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Actor, *domain.AccessToken, error) {
	actor, err := s.actorRepo.FindActorByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up actor for login")
		return nil, nil, err
	}
	if !utils.CheckPasswordHash(req.Password, actor.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("actor_id", actor.ActorID))
		return nil, nil, errInvalidCredentials
	}
	if !actor.IsActive {
		return nil, nil, apperrors.NewUnauthorizedError("account is inactive")
	}
	return s.issue(ctx, actor)
}

func (s *authService) SignInWithVerifiedEmail(ctx context.Context, email string, verified bool) (*domain.Actor, *domain.AccessToken, error) {
	if email == "" || !verified {
		return nil, nil, apperrors.NewUnauthorizedError("email is not verified by the identity provider")
	}
	actor, err := s.actorRepo.FindActorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewUnauthorizedError("no account is registered for this email")
		}
		s.LogError(ctx, err, "Failed to look up actor for external sign-in")
		return nil, nil, err
	}
	if !actor.IsActive {
		return nil, nil, apperrors.NewUnauthorizedError("account is inactive")
	}
	return s.issue(ctx, actor)
}

func (s *authService) issue(ctx context.Context, actor *domain.Actor) (*domain.Actor, *domain.AccessToken, error) {
	token, err := utils.GenerateJWT(actor.ActorID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("actor_id", actor.ActorID))
		return nil, nil, apperrors.NewAppError(500, "failed to generate access token", err)
	}
	s.LogInfo(ctx, "Access token issued", slog.String("actor_id", actor.ActorID))
	return actor, token, nil
}

func (s *authService) ResolveActor(ctx context.Context, actorID, tokenID string) (*domain.Actor, error) {
	revoked, err := s.denylist.IsRevoked(ctx, tokenID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check token revocation")
		return nil, err
	}
	if revoked {
		return nil, apperrors.NewUnauthorizedError("token has been revoked")
	}

	actor, err := s.actorRepo.FindActorByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("actor no longer exists")
		}
		return nil, err
	}
	if !actor.IsActive {
		return nil, apperrors.NewUnauthorizedError("account is inactive")
	}
	return actor, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.denylist.Revoke(ctx, domain.RevokedToken{TokenID: tokenID, ExpiresAt: expiresAt}); err != nil {
		s.LogError(ctx, err, "Failed to revoke token")
		return err
	}
	s.LogInfo(ctx, "Token revoked")
	return nil
}

// --- GoogleOAuthSvcFacade Implementation ---

// googleOAuthService implements the GoogleOAuthSvcFacade.
type googleOAuthService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
