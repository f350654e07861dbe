package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests on the current actor's account.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	addressService portssvc.AddressSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, as portssvc.AddressSvcFacade) *userHandler {
	return &userHandler{
		userService:    us,
		addressService: as,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, addressService portssvc.AddressSvcFacade) {
	h := newUserHandler(userService, addressService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PATCH("/me", h.updateMe)
		users.DELETE("/me", h.deleteMe)
		users.PATCH("/:id/role", h.changeRole) // Admin or staff only

		addresses := users.Group("/me/addresses")
		{
			addresses.GET("", h.listAddresses)
			addresses.POST("", h.createAddress)
			addresses.GET("/:addressID", h.getAddress)
			addresses.PUT("/:addressID", h.updateAddress)
			addresses.DELETE("/:addressID", h.deleteAddress)
		}
	}
}

// getMe godoc
// @Summary Get the current account
// @Description Returns the authenticated actor with its addresses
// @Tags users
// @Produce json
// @Success 200 {object} dto.ActorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	me, err := h.userService.GetMe(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to get current actor")
		return
	}
	c.JSON(http.StatusOK, dto.ToActorResponse(me))
}

// updateMe godoc
// @Summary Update the current account
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateMeRequest true "Fields to update"
// @Success 200 {object} dto.ActorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *userHandler) updateMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.userService.UpdateMe(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to update current actor")
		return
	}
	c.JSON(http.StatusOK, dto.ToActorResponse(updated))
}

// deleteMe godoc
// @Summary Delete the current account
// @Description Marks the account as deleted. Existing tokens stop working.
// @Tags users
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deleteMe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteMe(c.Request.Context(), actor); err != nil {
		respondError(c, err, "Failed to delete current actor")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Actor deleted own account", slog.String("actor_id", actor.ActorID))
	c.Status(http.StatusNoContent)
}

// changeRole godoc
// @Summary Change an actor's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Actor ID"
// @Param role body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.ActorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/role [patch]
func (h *userHandler) changeRole(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.userService.ChangeRole(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to change role")
		return
	}
	c.JSON(http.StatusOK, dto.ToActorResponse(updated))
}

// listAddresses godoc
// @Summary List my addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} dto.AddressResponse
// @Security BearerAuth
// @Router /users/me/addresses [get]
func (h *userHandler) listAddresses(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	addresses, err := h.addressService.ListAddresses(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list addresses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAddressResponse(addresses))
}

// createAddress godoc
// @Summary Add an address
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body dto.AddressRequest true "Address"
// @Success 201 {object} dto.AddressResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/addresses [post]
func (h *userHandler) createAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	address, err := h.addressService.CreateAddress(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create address")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAddressResponse(address))
}

// getAddress godoc
// @Summary Get one of my addresses
// @Tags addresses
// @Produce json
// @Param addressID path string true "Address ID"
// @Success 200 {object} dto.AddressResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/addresses/{addressID} [get]
func (h *userHandler) getAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	addressID, ok := pathID(c, "addressID")
	if !ok {
		return
	}

	address, err := h.addressService.GetAddress(c.Request.Context(), actor, addressID)
	if err != nil {
		respondError(c, err, "Failed to get address")
		return
	}
	c.JSON(http.StatusOK, dto.ToAddressResponse(address))
}

// updateAddress godoc
// @Summary Replace one of my addresses
// @Tags addresses
// @Accept json
// @Produce json
// @Param addressID path string true "Address ID"
// @Param address body dto.AddressRequest true "Address"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/addresses/{addressID} [put]
func (h *userHandler) updateAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	addressID, ok := pathID(c, "addressID")
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	address, err := h.addressService.UpdateAddress(c.Request.Context(), actor, addressID, req)
	if err != nil {
		respondError(c, err, "Failed to update address")
		return
	}
	c.JSON(http.StatusOK, dto.ToAddressResponse(address))
}

// deleteAddress godoc
// @Summary Remove one of my addresses
// @Tags addresses
// @Param addressID path string true "Address ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/addresses/{addressID} [delete]
func (h *userHandler) deleteAddress(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	addressID, ok := pathID(c, "addressID")
	if !ok {
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), actor, addressID); err != nil {
		respondError(c, err, "Failed to delete address")
		return
	}
	c.Status(http.StatusNoContent)
}
