package handlers

import (
	"net/http"

	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the event calendar endpoints.
type EventHandler struct {
	Service directory.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc directory.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

// ListHandler handles GET /api/events.
func (h *EventHandler) ListHandler(c *gin.Context) {
	page, limit := parsePaging(c)
	query := directory.EventListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Upcoming: c.Query("upcoming") == "true",
		Featured: c.Query("featured") == "true",
		Page:     page,
		Limit:    limit,
	}
	events, pagination, err := h.Service.List(query)
	if err != nil {
		respondStoreError(c, err, "Event not found", "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events, "pagination": pagination})
}

// GetHandler handles GET /api/events/:id.
func (h *EventHandler) GetHandler(c *gin.Context) {
	event, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Event not found", "Failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// CreateHandler handles POST /api/events.
func (h *EventHandler) CreateHandler(c *gin.Context) {
	var input directory.EventCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.Service.Create(input)
	if err != nil {
		respondStoreError(c, err, "Event not found", "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": event})
}

// UpdateHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateHandler(c *gin.Context) {
	var input directory.EventUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err, "Event not found", "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// DeleteHandler handles DELETE /api/events/:id.
func (h *EventHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err, "Event not found", "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
