package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler signs existing actors in with a Google authorization code.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	authService        portssvc.AuthSvcFacade
}

func newGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthSvcFacade, authService portssvc.AuthSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{googleOAuthService: googleOAuthService, authService: authService}
}

// ExchangeCodeRequest is the body of the Google code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// exchangeCodeGoogle godoc
// @Summary Sign in with Google
// @Description Exchanges a Google authorization code, verifies the ID token and returns a bearer token for the account registered with the same verified email.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code.")
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve ID token from Google."})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	actor, token, err := h.authService.SignInWithVerifiedEmail(ctx, email, verified)
	if err != nil {
		respondError(c, err, "Google sign-in rejected")
		return
	}
	logger.Info("Actor signed in with Google", slog.String("actor_id", actor.ActorID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Actor:     dto.ToActorResponse(actor),
	})
}

// registerGoogleOAuthRoutes registers the Google sign-in route.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.Auth)
	rg.POST("/auth/google/exchange-code", h.exchangeCodeGoogle)
}
