package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-showcase/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
)

// resource names a record type in error codes and messages.
type resource struct {
	key   string
	title string
}

var (
	barberResource    = resource{key: "barber", title: "Barber"}
	hairstyleResource = resource{key: "hairstyle", title: "Hairstyle"}
	exampleResource   = resource{key: "example", title: "Example"}
)

func (r resource) notFound(c *gin.Context) {
	httperr.NotFound(c, r.key+"_not_found", r.title+" not found")
}

// fail maps a repository error onto the response. Unknown errors are
// attached to the context for the request logger and answered with 500.
func (r resource) fail(c *gin.Context, verb string, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		r.notFound(c)
	case httperr.IsBusiness(err, catalog.ErrCodeInvalidReference):
		httperr.Conflict(c, catalog.ErrCodeInvalidReference,
			"barber_id or hairstyle_id does not reference an existing record.")
	default:
		_ = c.Error(err)
		httperr.Internal(c, "failed_to_"+verb+"_"+r.key, "Failed to "+verb+" "+r.key+".")
	}
}

// pathID parses a positive integer path parameter, writing a 400 when it
// is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
