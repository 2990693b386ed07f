// Package handler provides shared helpers for the API handlers: error
// handling, auth checks, parameter parsing and pagination binding.
package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/response"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/utils"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/middleware"
)

// HandleError sends the matching error response. Returns true when an
// error was handled and the caller should return.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.Error(c, appErr.Code, appErr.Message)
		return true
	}
	response.InternalError(c, err.Error())
	return true
}

// MustSucceed sends either the error or a success response with data.
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.Success(c, data)
}

// MustSucceedWithMessage is MustSucceed with a custom success message.
func MustSucceedWithMessage(c *gin.Context, err error, message string, data interface{}) {
	if HandleError(c, err) {
		return
	}
	response.SuccessWithMessage(c, message, data)
}

// MustSucceedPage is the paginated variant of MustSucceed.
func MustSucceedPage(c *gin.Context, err error, list interface{}, total int64, page, pageSize int) {
	if HandleError(c, err) {
		return
	}
	response.SuccessPage(c, list, total, page, pageSize)
}

// RequireUserID returns the authenticated user ID. On anonymous requests
// it sends a 401 and returns false.
func RequireUserID(c *gin.Context) (int64, bool) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Unauthorized(c, "login required")
		return 0, false
	}
	return userID, true
}

// ParseID parses the "id" path parameter.
func ParseID(c *gin.Context, resourceName string) (int64, bool) {
	return ParseParamID(c, "id", resourceName)
}

// ParseParamID parses a path parameter as int64. On failure it sends a
// 400 and returns false.
func ParseParamID(c *gin.Context, paramName, resourceName string) (int64, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+resourceName+" id")
		return 0, false
	}
	return id, true
}

// ParseQueryID parses an optional query-parameter ID. An absent parameter
// yields (nil, true).
func ParseQueryID(c *gin.Context, paramName, resourceName string) (*int64, bool) {
	idStr := c.Query(paramName)
	if idStr == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+resourceName+" id")
		return nil, false
	}
	return &id, true
}

// DateFormat is the wire format for dates.
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// ParseQueryDate parses an optional date query parameter. An absent
// parameter yields (nil, true).
func ParseQueryDate(c *gin.Context, paramName string) (*time.Time, bool) {
	dateStr := c.Query(paramName)
	if dateStr == "" {
		return nil, true
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		response.BadRequest(c, "invalid "+paramName+", expected YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

// BindPagination binds and normalizes page/page_size query parameters.
func BindPagination(c *gin.Context) utils.Pagination {
	var p utils.Pagination
	p.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	p.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	p.Normalize()
	return p
}
