package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API response.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const headerRequestID = "X-Request-ID"

func write(c *gin.Context, status int, r Response) {
	r.RequestID = c.Writer.Header().Get(headerRequestID)
	c.JSON(status, r)
}

// Success sends a 200 response.
func Success(c *gin.Context, data any) {
	write(c, http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response, used for freshly minted ids.
func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, Response{Success: true, Data: data})
}

// Error sends an error response and aborts the handler chain.
func Error(c *gin.Context, statusCode int, code, message string) {
	write(c, statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
	c.Abort()
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
