package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/SscSPs/precatorio_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// listingHandler serves listings and their documents.
type listingHandler struct {
	listingService  portssvc.ListingSvcFacade
	documentService portssvc.DocumentSvcFacade
}

func newListingHandler(ls portssvc.ListingSvcFacade, ds portssvc.DocumentSvcFacade) *listingHandler {
	return &listingHandler{listingService: ls, documentService: ds}
}

func registerListingRoutes(rg *gin.RouterGroup, listingService portssvc.ListingSvcFacade, documentService portssvc.DocumentSvcFacade) {
	h := newListingHandler(listingService, documentService)

	listings := rg.Group("/listings")
	{
		listings.GET("", h.listListings)
		listings.POST("", h.createListing)
		listings.GET("/:id", h.getListing)
		listings.PATCH("/:id", h.updateListing)
		listings.DELETE("/:id", h.deleteListing)

		listings.GET("/:id/documents", h.listDocuments)
		listings.POST("/:id/documents", h.uploadDocument)
	}
	rg.DELETE("/documents/:id", h.deleteDocument)
}

// createListing godoc
// @Summary Create a listing
// @Description Puts a precatório on the marketplace. Cedentes create for themselves, administrators name the cedente.
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body dto.CreateListingRequest true "Listing"
// @Success 201 {object} dto.ListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings [post]
func (h *listingHandler) createListing(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create listing")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Listing created",
		slog.String("listing_id", listing.ListingID), slog.String("actor_id", actor.ActorID))
	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

// listListings godoc
// @Summary List visible listings
// @Description Lists the listings the caller may see, filtered and paginated
// @Tags listings
// @Produce json
// @Param status query string false "Listing status"
// @Param court query string false "Court ID"
// @Param debtor query string false "Debtor ID"
// @Param nature query string false "Alimentar or Comum"
// @Param budget_year query int false "Budget year"
// @Param budget_year_gte query int false "Minimum budget year"
// @Param budget_year_lte query int false "Maximum budget year"
// @Param face_value_gte query string false "Minimum face value"
// @Param face_value_lte query string false "Maximum face value"
// @Param search query string false "Matches process number or description"
// @Param ordering query string false "face_value, created_at or budget_year, prefixed with - for descending"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListListingsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings [get]
func (h *listingHandler) listListings(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var params dto.ListListingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToListingFilter()
	if err != nil {
		respondError(c, err, "Invalid listing filter")
		return
	}

	page := params.Page()
	listings, total, err := h.listingService.ListListings(c.Request.Context(), actor, filter, page)
	if err != nil {
		respondError(c, err, "Failed to list listings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListListingsResponse(listings, total, page))
}

// getListing godoc
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} dto.ListingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [get]
func (h *listingHandler) getListing(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	listing, err := h.listingService.GetListing(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get listing")
		return
	}
	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// updateListing godoc
// @Summary Update a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param listing body dto.UpdateListingRequest true "Fields to update"
// @Success 200 {object} dto.ListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [patch]
func (h *listingHandler) updateListing(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err, "Failed to update listing")
		return
	}
	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// deleteListing godoc
// @Summary Delete a listing
// @Tags listings
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Listing has proposals or reviews"
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *listingHandler) deleteListing(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), actor, listingID); err != nil {
		respondError(c, err, "Failed to delete listing")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Listing deleted",
		slog.String("listing_id", listingID), slog.String("actor_id", actor.ActorID))
	c.Status(http.StatusNoContent)
}

// listDocuments godoc
// @Summary List a listing's documents
// @Tags documents
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/documents [get]
func (h *listingHandler) listDocuments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentResponse(docs))
}

// uploadDocument godoc
// @Summary Upload a document
// @Description Attaches a PDF, DOC or DOCX file to a listing the caller owns
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Listing ID"
// @Param title formData string true "Document title"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/documents [post]
func (h *listingHandler) uploadDocument(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	title := c.PostForm("title")
	if title == "" {
		respondError(c, apperrors.NewFieldValidationError("title", "title is required"), "Invalid document upload")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.NewFieldValidationError("file", "file is required"), "Invalid document upload")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, apperrors.NewAppError(http.StatusInternalServerError, "failed to open upload", err), "Failed to read upload")
		return
	}
	defer f.Close()

	doc, err := h.documentService.UploadDocument(c.Request.Context(), actor, id, portssvc.DocumentUpload{
		Title:    title,
		FileName: fh.Filename,
		Size:     fh.Size,
		Body:     f,
	})
	if err != nil {
		respondError(c, err, "Failed to upload document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *listingHandler) deleteDocument(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
