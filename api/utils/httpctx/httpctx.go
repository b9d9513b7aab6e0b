package httpctx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CurrentPlayerID retrieves the caller's player id from Gin context if present.
func CurrentPlayerID(c *gin.Context) (string, bool) {
	val, exists := c.Get("playerID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// Pagination reads page and limit query params, clamping limit to [1, maxLimit].
func Pagination(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}
