package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
	"github.com/BruksfildServices01/barber-showcase/internal/httpresp"
)

type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

func (h *PublicHandler) Root(c *gin.Context) {
	httpresp.OK(c, gin.H{"Hello": "World"})
}

// Item echoes the path id and the optional q query; q is null when absent.
func (h *PublicHandler) Item(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "item_id must be an integer.")
		return
	}

	var q *string
	if v, ok := c.GetQuery("q"); ok {
		q = &v
	}

	httpresp.OK(c, gin.H{
		"item_id": itemID,
		"q":       q,
	})
}

func (h *PublicHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
