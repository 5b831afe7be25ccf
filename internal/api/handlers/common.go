package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

// writeError maps any failure to the response envelope. Internal detail is
// exposed only outside release mode.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	body := gin.H{"success": false}

	var ae *utils.AppError
	if errors.As(err, &ae) && status < http.StatusInternalServerError {
		body["message"] = ae.Message
		if len(ae.Fields) > 0 {
			body["errors"] = ae.Fields
		}
	} else {
		body["message"] = "Server error"
		_ = c.Error(err)
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = err.Error()
		}
	}

	c.JSON(status, body)
}

func invalidBody(c *gin.Context, op string, err error) {
	writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Handlers.idParam", "Invalid id", err))
		return 0, false
	}
	return uint(id), true
}

// formFile returns the uploaded file for the field, or nil when the request
// carries none (including non-multipart requests).
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}
