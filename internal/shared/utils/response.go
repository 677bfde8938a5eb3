package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libris/internal/shared/constants"
	"libris/internal/shared/errors"
)

// APIResponse is the uniform envelope every endpoint returns. The Error
// flag, not the HTTP status, signals domain-level failure: not-found and
// similar outcomes ship as 200 with a message, while 401 is reserved for
// the authorization gate and 500 for internal faults.
type APIResponse struct {
	Error   bool        `json:"error"`
	Data    interface{} `json:"data"`
	Message *string     `json:"message"`
}

func newResponse(isError bool, data interface{}, message string) APIResponse {
	resp := APIResponse{
		Error: isError,
		Data:  data,
	}
	if message != "" {
		resp.Message = &message
	}
	return resp
}

// SuccessResponse sends a 200 envelope with the payload and an optional
// message.
func SuccessResponse(c *gin.Context, data interface{}, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusOK, newResponse(false, data, msg))
}

// NotFoundResponse reports a missing entity: HTTP 200, null data, and the
// error flag raised. The envelope, not the status code, carries the miss.
func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, newResponse(true, nil, message))
}

// ErrorResponse sends an error envelope with the given HTTP status.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, newResponse(true, nil, message))
}

// ErrorResponseWithError maps an error to the envelope. AppErrors keep
// their status code and message; not-found collapses to the 200 null-data
// contract; anything else becomes a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Type == errors.ErrorTypeNotFound {
			NotFoundResponse(c, appErr.Message)
			return
		}
		c.JSON(appErr.Code, newResponse(true, nil, appErr.Message))
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
}
