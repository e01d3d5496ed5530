package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/media"
	"github.com/siphore/huddle-api/internal/service"
)

// respondError maps a service error onto the wire format. Unknown errors
// surface as opaque 500s outside development.
func respondError(c *gin.Context, environment string, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		body := gin.H{"error": svcErr.Code, "message": svcErr.Message}
		if len(svcErr.Fields) > 0 {
			body["errors"] = svcErr.Fields
		}
		c.JSON(svcErr.Status, body)
		return
	}

	body := gin.H{"error": "server_error", "message": "Internal server error"}
	if environment == "development" {
		body["message"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// parseID reads the :id route parameter. Malformed identifiers cannot
// match any record, so they respond 404.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Not found"})
		return 0, false
	}
	return id, true
}

// formFile opens a multipart upload by field name. A missing field yields
// a zero file so the service can fold it into its validation report.
func formFile(c *gin.Context, field string) (media.File, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return media.File{}, func() {}, nil
	}
	f, err := header.Open()
	if err != nil {
		return media.File{}, func() {}, err
	}
	return media.File{Reader: f, Name: header.Filename, Size: header.Size}, func() { f.Close() }, nil
}
