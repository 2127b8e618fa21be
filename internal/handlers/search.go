package handlers

import (
	"net/http"
	"strconv"

	"khisha/internal/auth"
	"khisha/internal/services"

	"github.com/gin-gonic/gin"
)

// Search looks up the caller's symptoms and journal entries by free text
func Search(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusOK, []services.SearchHit{})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // max limit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	hits, err := services.NewSearchService().Search(userID, term, limit, offset)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, hits)
}
