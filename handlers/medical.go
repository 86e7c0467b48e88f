package handlers

import (
	"net/http"

	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
)

// MedicalHandler serves the medical services directory endpoints.
type MedicalHandler struct {
	Service directory.MedicalService
}

// NewMedicalHandler creates a new MedicalHandler.
func NewMedicalHandler(svc directory.MedicalService) *MedicalHandler {
	return &MedicalHandler{Service: svc}
}

// ListHandler handles GET /api/medical.
func (h *MedicalHandler) ListHandler(c *gin.Context) {
	page, limit := parsePaging(c)
	query := directory.MedicalListQuery{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		Emergency: c.Query("emergency") == "true",
		Page:      page,
		Limit:     limit,
	}
	services, pagination, err := h.Service.List(query)
	if err != nil {
		respondStoreError(c, err, "Medical service not found", "Failed to fetch medical services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": services, "pagination": pagination})
}

// GetHandler handles GET /api/medical/:id.
func (h *MedicalHandler) GetHandler(c *gin.Context) {
	service, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Medical service not found", "Failed to fetch medical service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": service})
}

// CreateHandler handles POST /api/medical.
func (h *MedicalHandler) CreateHandler(c *gin.Context) {
	var input directory.MedicalCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service, err := h.Service.Create(input)
	if err != nil {
		respondStoreError(c, err, "Medical service not found", "Failed to create medical service")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": service})
}

// UpdateHandler handles PUT /api/medical/:id.
func (h *MedicalHandler) UpdateHandler(c *gin.Context) {
	var input directory.MedicalUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	service, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err, "Medical service not found", "Failed to update medical service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": service})
}

// DeleteHandler handles DELETE /api/medical/:id.
func (h *MedicalHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err, "Medical service not found", "Failed to delete medical service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medical service deleted successfully"})
}
