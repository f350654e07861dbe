package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves courts and debtor entities.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	rg.GET("/courts", h.listCourts)
	rg.POST("/courts", h.createCourt)
	rg.GET("/debtors", h.listDebtors)
	rg.POST("/debtors", h.createDebtor)
}

// listCourts godoc
// @Summary List courts
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListCourtsResponse
// @Security BearerAuth
// @Router /courts [get]
func (h *referenceHandler) listCourts(c *gin.Context) {
	courts, err := h.referenceService.ListCourts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list courts")
		return
	}
	c.JSON(http.StatusOK, dto.ListCourtsResponse{Courts: courts})
}

// createCourt godoc
// @Summary Register a court
// @Tags reference
// @Accept json
// @Produce json
// @Param court body dto.CreateCourtRequest true "Court"
// @Success 201 {object} domain.Court
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /courts [post]
func (h *referenceHandler) createCourt(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	court, err := h.referenceService.CreateCourt(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create court")
		return
	}
	c.JSON(http.StatusCreated, court)
}

// listDebtors godoc
// @Summary List debtor entities
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListDebtorsResponse
// @Security BearerAuth
// @Router /debtors [get]
func (h *referenceHandler) listDebtors(c *gin.Context) {
	debtors, err := h.referenceService.ListDebtors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list debtors")
		return
	}
	c.JSON(http.StatusOK, dto.ListDebtorsResponse{Debtors: debtors})
}

// createDebtor godoc
// @Summary Register a debtor entity
// @Tags reference
// @Accept json
// @Produce json
// @Param debtor body dto.CreateDebtorRequest true "Debtor entity"
// @Success 201 {object} domain.DebtorEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /debtors [post]
func (h *referenceHandler) createDebtor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateDebtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debtor, err := h.referenceService.CreateDebtor(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create debtor")
		return
	}
	c.JSON(http.StatusCreated, debtor)
}
