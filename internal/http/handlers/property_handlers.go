package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/estospaces/realtysvc/domain"
	"github.com/estospaces/realtysvc/internal/http/middleware"
)

// PropertyHandlers handles listing HTTP requests
type PropertyHandlers struct {
	propertySvc domain.PropertyService
	logger      *zerolog.Logger
}

// NewPropertyHandlers creates new property handlers
func NewPropertyHandlers(propertySvc domain.PropertyService, logger *zerolog.Logger) *PropertyHandlers {
	return &PropertyHandlers{
		propertySvc: propertySvc,
		logger:      logger,
	}
}

// CreatePropertyRequest represents listing creation input
type CreatePropertyRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	PropertyType string  `json:"property_type" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	ManagerID    uint    `json:"manager_id" binding:"required"`
	AreaNumeric  float64 `json:"area_numeric"`
	AreaUnit     string  `json:"area_unit"`
	Country      string  `json:"country"`
}

// UpdatePropertyRequest represents a partial listing update. Pointer
// fields distinguish absent keys from zero values; this struct is the
// whole allow-list.
type UpdatePropertyRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	PropertyType *string  `json:"property_type"`
	Price        *float64 `json:"price"`
	AreaNumeric  *float64 `json:"area_numeric"`
	AreaUnit     *string  `json:"area_unit"`
	Note         *string  `json:"note"`
}

// UpdateStatusRequest represents a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// Create handles listing creation
func (h *PropertyHandlers) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	property, err := h.propertySvc.Create(c.Request.Context(), domain.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		ManagerID:    req.ManagerID,
		AreaNumeric:  req.AreaNumeric,
		AreaUnit:     req.AreaUnit,
		Country:      req.Country,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("property creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property created successfully",
		"property": propertyJSON(property),
	})
}

// Get handles a country-scoped listing read. The scope comes from the
// authenticated caller, never the request.
func (h *PropertyHandlers) Get(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	property, err := h.propertySvc.Get(c.Request.Context(), id, user.Country)
	if err != nil {
		h.respondError(c, err, "Error fetching property")
		return
	}

	c.JSON(http.StatusOK, propertyJSON(property))
}

// Update handles a partial listing update
func (h *PropertyHandlers) Update(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertySvc.Update(c.Request.Context(), id, domain.PropertyPatch{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		AreaNumeric:  req.AreaNumeric,
		AreaUnit:     req.AreaUnit,
		Note:         req.Note,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
			return
		}
		h.respondError(c, err, "Error updating property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property updated successfully",
		"property": propertyJSON(property),
	})
}

// Delete handles listing archival (soft delete)
func (h *PropertyHandlers) Delete(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	property, err := h.propertySvc.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error archiving property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property archived successfully",
		"property": propertyJSON(property),
	})
}

// Publish handles making a listing publicly visible
func (h *PropertyHandlers) Publish(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	property, err := h.propertySvc.Publish(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error publishing property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property published successfully",
		"property": propertyJSON(property),
	})
}

// Unpublish handles hiding a listing
func (h *PropertyHandlers) Unpublish(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	property, err := h.propertySvc.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Error unpublishing property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property unpublished successfully",
		"property": propertyJSON(property),
	})
}

// UpdateStatus handles a status transition (e.g. sold, rented)
func (h *PropertyHandlers) UpdateStatus(c *gin.Context) {
	id, ok := h.propertyID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status field"})
		return
	}

	property, err := h.propertySvc.UpdateStatus(c.Request.Context(), id, req.Status, req.Note)
	if err != nil {
		h.respondError(c, err, "Error updating property status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property status updated successfully",
		"property": propertyJSON(property),
	})
}

func (h *PropertyHandlers) propertyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return 0, false
	}
	return uint(id), true
}

func (h *PropertyHandlers) respondError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, domain.ErrPropertyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	h.logger.Error().Err(err).Msg(logMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func propertyJSON(p *domain.Property) gin.H {
	return gin.H{
		"id":            p.ID,
		"title":         p.Title,
		"description":   p.Description,
		"property_type": p.PropertyType,
		"price":         p.Price,
		"manager_id":    p.ManagerID,
		"area_numeric":  p.AreaNumeric,
		"area_unit":     p.AreaUnit,
		"status":        p.Status,
		"is_published":  p.IsPublished,
		"published_at":  p.PublishedAt,
		"country":       p.Country,
		"note":          p.Note,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}
