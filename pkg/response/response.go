package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitly/talentflow/pkg/apperr"
)

// Envelope wraps all API responses in a consistent structure
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details for failed responses
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK sends a successful response with data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 response for successfully created resources
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

// Message sends a success response with just a message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    gin.H{"message": message},
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	errorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

// InternalError sends a 500 response
// Note: Never expose internal error details to clients
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

// FromError maps a classified engine error onto the HTTP surface. Every
// error kind the engine produces has a fixed status; anything
// unclassified is reported as a 500 without leaking detail.
func FromError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		InternalError(c, "")
		return
	}
	errorResponse(c, status, string(kind), err.Error())
}

var statusByKind = map[apperr.Kind]int{
	apperr.NotFound:         http.StatusNotFound,
	apperr.NotScheduled:     http.StatusNotFound,
	apperr.Forbidden:        http.StatusForbidden,
	apperr.AlreadyScheduled: http.StatusConflict,
	apperr.JobNotApplied:    http.StatusBadRequest,
	apperr.InvalidClient:    http.StatusBadRequest,
	apperr.DateRange:        http.StatusBadRequest,
	apperr.Validation:       http.StatusUnprocessableEntity,
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
