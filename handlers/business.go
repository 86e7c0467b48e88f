package handlers

import (
	"net/http"

	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
)

// BusinessHandler serves the business directory endpoints.
type BusinessHandler struct {
	Service directory.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(svc directory.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// ListHandler handles GET /api/businesses.
func (h *BusinessHandler) ListHandler(c *gin.Context) {
	page, limit := parsePaging(c)
	query := directory.BusinessListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}
	businesses, pagination, err := h.Service.List(query)
	if err != nil {
		respondStoreError(c, err, "Business not found", "Failed to fetch businesses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": businesses, "pagination": pagination})
}

// GetHandler handles GET /api/businesses/:id.
func (h *BusinessHandler) GetHandler(c *gin.Context) {
	business, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Business not found", "Failed to fetch business")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": business})
}

// CreateHandler handles POST /api/businesses.
func (h *BusinessHandler) CreateHandler(c *gin.Context) {
	var input directory.BusinessCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	business, err := h.Service.Create(input)
	if err != nil {
		respondStoreError(c, err, "Business not found", "Failed to create business")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": business})
}

// UpdateHandler handles PUT /api/businesses/:id.
func (h *BusinessHandler) UpdateHandler(c *gin.Context) {
	var input directory.BusinessUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	business, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err, "Business not found", "Failed to update business")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": business})
}

// DeleteHandler handles DELETE /api/businesses/:id.
func (h *BusinessHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err, "Business not found", "Failed to delete business")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}
