package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ainfakroun/database/repository"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
)

// parsePaging reads page/limit query parameters. Anything unparsable or
// non-positive falls back to the defaults downstream.
func parsePaging(c *gin.Context) (int64, int64) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	return page, limit
}

// respondStoreError maps a repository failure onto the error envelope:
// not-found keeps its 404 identity, anything else becomes the generic 500
// with the detail logged server-side only.
func respondStoreError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, failMsg, err)
}
