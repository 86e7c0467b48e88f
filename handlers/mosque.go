package handlers

import (
	"net/http"

	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
)

// MosqueHandler serves the mosque directory endpoints.
type MosqueHandler struct {
	Service directory.MosqueService
}

// NewMosqueHandler creates a new MosqueHandler.
func NewMosqueHandler(svc directory.MosqueService) *MosqueHandler {
	return &MosqueHandler{Service: svc}
}

// ListHandler handles GET /api/mosques.
func (h *MosqueHandler) ListHandler(c *gin.Context) {
	page, limit := parsePaging(c)
	query := directory.MosqueListQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	mosques, pagination, err := h.Service.List(query)
	if err != nil {
		respondStoreError(c, err, "Mosque not found", "Failed to fetch mosques")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": mosques, "pagination": pagination})
}

// GetHandler handles GET /api/mosques/:id.
func (h *MosqueHandler) GetHandler(c *gin.Context) {
	mosque, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Mosque not found", "Failed to fetch mosque")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": mosque})
}

// CreateHandler handles POST /api/mosques.
func (h *MosqueHandler) CreateHandler(c *gin.Context) {
	var input directory.MosqueCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mosque, err := h.Service.Create(input)
	if err != nil {
		respondStoreError(c, err, "Mosque not found", "Failed to create mosque")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": mosque})
}

// UpdateHandler handles PUT /api/mosques/:id.
func (h *MosqueHandler) UpdateHandler(c *gin.Context) {
	var input directory.MosqueUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mosque, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err, "Mosque not found", "Failed to update mosque")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": mosque})
}

// DeleteHandler handles DELETE /api/mosques/:id.
func (h *MosqueHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err, "Mosque not found", "Failed to delete mosque")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mosque deleted successfully"})
}
