// Package httperr defines the error envelope every API handler responds with.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the nested error object of the envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the wire shape for all non-2xx responses. Status is carried
// for middleware, not serialized.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}
}

// AbortWithError writes the envelope and records the cause on the gin
// context so the logging middleware can see it. err must be non-nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
