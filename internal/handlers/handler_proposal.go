package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// proposalHandler serves purchase proposals and their history.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
	now             func() time.Time
}

func newProposalHandler(ps portssvc.ProposalSvcFacade) *proposalHandler {
	return &proposalHandler{proposalService: ps, now: time.Now}
}

func registerProposalRoutes(rg *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	h := newProposalHandler(proposalService)

	rg.POST("/listings/:id/proposals", h.createProposal)

	proposals := rg.Group("/proposals")
	{
		proposals.GET("", h.listProposals)
		proposals.POST("/expire-overdue", h.expireOverdue) // Admin or staff only
		proposals.GET("/:id", h.getProposal)
		proposals.POST("/:id/transition", h.transitionProposal)
		proposals.POST("/:id/revise", h.reviseProposal)
		proposals.GET("/:id/history", h.listHistory)
	}
}

// createProposal godoc
// @Summary Make a proposal
// @Description Creates a draft proposal on an available listing. Owners cannot bid on their own listing.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param proposal body dto.CreateProposalRequest true "Proposal"
// @Success 201 {object} dto.ProposalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/proposals [post]
func (h *proposalHandler) createProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.proposalService.CreateProposal(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to create proposal")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Proposal created",
		slog.String("proposal_id", p.ProposalID), slog.String("listing_id", p.ListingID))
	c.JSON(http.StatusCreated, dto.ToProposalResponse(p))
}

// listProposals godoc
// @Summary List proposals
// @Description Lists the caller's proposals. Administrators and staff see every proposal.
// @Tags proposals
// @Produce json
// @Param listing query string false "Listing ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.ProposalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals [get]
func (h *proposalHandler) listProposals(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var params dto.ListProposalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	ps, err := h.proposalService.ListProposals(c.Request.Context(), actor, params.ListingID, params.Page())
	if err != nil {
		respondError(c, err, "Failed to list proposals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProposalResponse(ps))
}

// getProposal godoc
// @Summary Get a proposal
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.proposalService.GetProposal(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get proposal")
		return
	}
	c.JSON(http.StatusOK, dto.ToProposalResponse(p))
}

// transitionProposal godoc
// @Summary Change a proposal's status
// @Description Sends, accepts, rejects, counters, cancels or expires a proposal. Accepting moves the listing into negotiation.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param transition body dto.TransitionProposalRequest true "Target status"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id}/transition [post]
func (h *proposalHandler) transitionProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TransitionProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.proposalService.TransitionProposal(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to transition proposal")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Proposal transitioned",
		slog.String("proposal_id", p.ProposalID), slog.String("status", string(p.Status)))
	c.JSON(http.StatusOK, dto.ToProposalResponse(p))
}

// reviseProposal godoc
// @Summary Revise a proposal's value
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param revision body dto.ReviseProposalRequest true "New value"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id}/revise [post]
func (h *proposalHandler) reviseProposal(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReviseProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.proposalService.ReviseProposal(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to revise proposal")
		return
	}
	c.JSON(http.StatusOK, dto.ToProposalResponse(p))
}

// listHistory godoc
// @Summary List a proposal's history
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {array} domain.ProposalHistory
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id}/history [get]
func (h *proposalHandler) listHistory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	history, err := h.proposalService.ListHistory(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to list proposal history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// expireOverdue godoc
// @Summary Expire overdue proposals
// @Description Marks every open proposal whose due date has passed as expired
// @Tags proposals
// @Produce json
// @Success 200 {object} dto.ExpireOverdueResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/expire-overdue [post]
func (h *proposalHandler) expireOverdue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	expired, err := h.proposalService.ExpireOverdue(c.Request.Context(), actor, h.now())
	if err != nil {
		respondError(c, err, "Failed to expire overdue proposals")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Overdue proposals expired", slog.Int("count", len(expired)))
	c.JSON(http.StatusOK, dto.ExpireOverdueResponse{Expired: dto.ToListProposalResponse(expired)})
}
