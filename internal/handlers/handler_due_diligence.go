package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dueDiligenceHandler struct {
	dueDiligenceService portssvc.DueDiligenceSvcFacade
}

func newDueDiligenceHandler(ds portssvc.DueDiligenceSvcFacade) *dueDiligenceHandler {
	return &dueDiligenceHandler{dueDiligenceService: ds}
}

func registerDueDiligenceRoutes(rg *gin.RouterGroup, dueDiligenceService portssvc.DueDiligenceSvcFacade) {
	h := newDueDiligenceHandler(dueDiligenceService)

	rg.GET("/listings/:id/due-diligences", h.listDueDiligences)
	rg.POST("/listings/:id/due-diligences", h.openDueDiligence)

	dd := rg.Group("/due-diligences")
	{
		dd.GET("/:id", h.getDueDiligence)
		dd.POST("/:id/transition", h.transitionDueDiligence)
	}
}

// openDueDiligence godoc
// @Summary Open a review
// @Description Assigns an analyst to review a listing. Administrators and staff only.
// @Tags due-diligence
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param review body dto.OpenDueDiligenceRequest true "Review"
// @Success 201 {object} dto.DueDiligenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/due-diligences [post]
func (h *dueDiligenceHandler) openDueDiligence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OpenDueDiligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dd, err := h.dueDiligenceService.OpenDueDiligence(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to open due diligence")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Due diligence opened",
		slog.String("due_diligence_id", dd.DueDiligenceID), slog.String("listing_id", dd.ListingID))
	c.JSON(http.StatusCreated, dto.ToDueDiligenceResponse(dd))
}

// listDueDiligences godoc
// @Summary List a listing's reviews
// @Tags due-diligence
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} dto.DueDiligenceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/due-diligences [get]
func (h *dueDiligenceHandler) listDueDiligences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dds, err := h.dueDiligenceService.ListDueDiligences(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to list due diligences")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDueDiligenceResponse(dds))
}

// getDueDiligence godoc
// @Summary Get a review
// @Tags due-diligence
// @Produce json
// @Param id path string true "Due diligence ID"
// @Success 200 {object} dto.DueDiligenceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /due-diligences/{id} [get]
func (h *dueDiligenceHandler) getDueDiligence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dd, err := h.dueDiligenceService.GetDueDiligence(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get due diligence")
		return
	}
	c.JSON(http.StatusOK, dto.ToDueDiligenceResponse(dd))
}

// transitionDueDiligence godoc
// @Summary Move a review forward
// @Description Applies a status change. Approval makes the listing available, REPACTUADO requires a reason.
// @Tags due-diligence
// @Accept json
// @Produce json
// @Param id path string true "Due diligence ID"
// @Param transition body dto.TransitionDueDiligenceRequest true "Target status"
// @Success 200 {object} dto.DueDiligenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /due-diligences/{id}/transition [post]
func (h *dueDiligenceHandler) transitionDueDiligence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TransitionDueDiligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	dd, err := h.dueDiligenceService.TransitionDueDiligence(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to transition due diligence")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Due diligence transitioned",
		slog.String("due_diligence_id", dd.DueDiligenceID), slog.String("status", string(dd.Status)))
	c.JSON(http.StatusOK, dto.ToDueDiligenceResponse(dd))
}
