package api

import (
	"net/http"
	"strconv"

	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parsePaging reads the from/size query pair. Missing values fall back to
// zero and let the query layer apply its defaults; malformed or negative
// values are a client error.
func parsePaging(c *gin.Context) (from, size int, ok bool) {
	var err error

	if raw := c.Query("from"); raw != "" {
		if from, err = strconv.Atoi(raw); err != nil || from < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from parameter",
			})
			return 0, 0, false
		}
	}
	if raw := c.Query("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil || size < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid size parameter",
			})
			return 0, 0, false
		}
	}
	return from, size, true
}

func requireActorID(c *gin.Context) (uuid.UUID, bool) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}
	return actorID, true
}
