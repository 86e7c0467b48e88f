package handlers

import (
	"net/http"

	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler serves the emergency contact endpoints.
type EmergencyHandler struct {
	Service directory.EmergencyService
}

// NewEmergencyHandler creates a new EmergencyHandler.
func NewEmergencyHandler(svc directory.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{Service: svc}
}

// ListHandler handles GET /api/emergency.
func (h *EmergencyHandler) ListHandler(c *gin.Context) {
	page, limit := parsePaging(c)
	query := directory.EmergencyListQuery{
		Type:  c.Query("type"),
		Page:  page,
		Limit: limit,
	}
	contacts, pagination, err := h.Service.List(query)
	if err != nil {
		respondStoreError(c, err, "Emergency contact not found", "Failed to fetch emergency contacts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contacts, "pagination": pagination})
}

// GetHandler handles GET /api/emergency/:id.
func (h *EmergencyHandler) GetHandler(c *gin.Context) {
	contact, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Emergency contact not found", "Failed to fetch emergency contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contact})
}

// CreateHandler handles POST /api/emergency.
func (h *EmergencyHandler) CreateHandler(c *gin.Context) {
	var input directory.EmergencyCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact, err := h.Service.Create(input)
	if err != nil {
		respondStoreError(c, err, "Emergency contact not found", "Failed to create emergency contact")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": contact})
}

// UpdateHandler handles PUT /api/emergency/:id.
func (h *EmergencyHandler) UpdateHandler(c *gin.Context) {
	var input directory.EmergencyUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err, "Emergency contact not found", "Failed to update emergency contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": contact})
}

// DeleteHandler handles DELETE /api/emergency/:id.
func (h *EmergencyHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err, "Emergency contact not found", "Failed to delete emergency contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Emergency contact deleted successfully"})
}
