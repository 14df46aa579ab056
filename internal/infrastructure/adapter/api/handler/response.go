package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/api/dto"
)

const (
	msgTransactionNotFound = "Transaction not found"
	msgInternalServer      = "Internal server error"
	msgBodyNotObject       = "request body must be a JSON object"
)

// errBodyNotObject marks a body that is not a JSON object
var errBodyNotObject = errors.New(msgBodyNotObject)

// respondError maps a domain error to its HTTP status and body
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	switch {
	case domainerr.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Errors: domainerr.Violations(err),
		})

	case domainerr.IsInputRangeError(err):
		var rangeErr *domainerr.InputRangeError
		errors.As(err, &rangeErr)
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Errors: []string{rangeErr.Message},
		})

	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: msgTransactionNotFound,
		})

	default:
		_ = c.Error(err)
		logger.Error("Unexpected error while handling request", map[string]any{
			"error": err.Error(),
			"path":  c.Request.URL.Path,
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: msgInternalServer,
		})
	}
}

// parseTransactionID reads the :id path parameter.
// Anything but a positive integer addresses no transaction.
func parseTransactionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidTransactionID),
			Message: msgTransactionNotFound,
		})
		return 0, false
	}
	return id, true
}

// decodeObject reads the request body as a JSON object; an empty body is {}
func decodeObject(c *gin.Context) (map[string]any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return nil, errBodyNotObject
	}
	return payload, nil
}

// queryInt parses an integer query parameter, falling back when absent or malformed
func queryInt(c *gin.Context, name string, fallback int) int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
