package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/service"
	"github.com/Tom0603/SoftwareEngineering-Lecture/pkg/response"
)

type createListingRequest struct {
	Type         string  `json:"type" binding:"required"`
	CreatedAt    string  `json:"created_at" binding:"required"` // YYYY-MM-DD
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Room         string  `json:"room" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	ContactEmail *string `json:"contact_email"`
	B64Image     string  `json:"b64_image"`
}

// ListListings returns every listing with its image attached.
// @Summary List all listings
// @Tags listings
// @Produce json
// @Success 200 {array} model.ListingWithImage
// @Failure 400 {object} response.ErrorBody
// @Router /listings [get]
func (h *Handler) ListListings(c *gin.Context) {
	listings, err := h.listings.List(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Error while trying to read from database")
		return
	}
	response.OK(c, listings)
}

// GetListing returns a single listing by its uuid.
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param uuid path string true "Listing UUID"
// @Success 200 {object} model.ListingWithImage
// @Failure 404 {object} response.ErrorBody
// @Failure 400 {object} response.ErrorBody
// @Router /listings/{uuid} [get]
func (h *Handler) GetListing(c *gin.Context) {
	listing, err := h.listings.Get(c.Request.Context(), c.Param("uuid"))
	if errors.Is(err, service.ErrNotFound) {
		response.NotFound(c, "listing does not exist")
		return
	}
	if err != nil {
		response.BadRequest(c, "Error while trying to read from database")
		return
	}
	response.OK(c, listing)
}

// CreateListing creates a listing, checking for duplicates first unless
// ?force=true is given.
// @Summary Create a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param force query bool false "Skip duplicate detection"
// @Param request body createListingRequest true "Listing to create"
// @Success 201 {object} model.Listing
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} map[string]interface{}
// @Router /listings [post]
func (h *Handler) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.BadRequest(c, "Missing required fields")
			return
		}
		response.BadRequest(c, "invalid request body")
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), service.CreateInput{
		Type:         req.Type,
		CreatedAt:    req.CreatedAt,
		Title:        req.Title,
		Description:  req.Description,
		Room:         req.Room,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
		B64Image:     req.B64Image,
		Force:        c.Query("force") == "true",
	})
	if err != nil {
		var dup *service.DuplicateError
		switch {
		case errors.As(err, &dup):
			response.Conflict(c, dup.Matches)
		case errors.Is(err, service.ErrMissingFields):
			response.BadRequest(c, "Missing required fields")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, service.ErrInvalidDate.Error())
		case errors.Is(err, service.ErrImage):
			response.BadRequest(c, "Error while trying to upload image to database")
		default:
			response.BadRequest(c, "Error while trying to add to database")
		}
		return
	}
	response.Created(c, listing)
}

// DeleteListing removes a listing row and its image.
// @Summary Delete a listing
// @Tags listings
// @Produce json
// @Param uuid path string true "Listing UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /listings/{uuid} [delete]
func (h *Handler) DeleteListing(c *gin.Context) {
	if err := h.listings.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		if errors.Is(err, service.ErrImage) {
			response.BadRequest(c, "Error while trying to delete image from database")
			return
		}
		response.BadRequest(c, "Error while trying to delete from database")
		return
	}
	response.OK(c, gin.H{})
}
