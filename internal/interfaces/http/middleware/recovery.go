package middleware

import (
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// Recovery converts panics into 500 responses. Broken client connections
// are logged and dropped without writing a response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if checkBrokenConnection(recovered) {
			log.Errorw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		c.Abort()
	})
}

// checkBrokenConnection checks if the error is a broken connection
func checkBrokenConnection(err interface{}) bool {
	var brokenConnections = []string{
		"connection reset by peer",
		"broken pipe",
		"connection refused",
	}

	if ne, ok := err.(*net.OpError); ok {
		if se, ok := ne.Err.(*os.SyscallError); ok {
			errStr := strings.ToLower(se.Error())
			for _, s := range brokenConnections {
				if strings.Contains(errStr, s) {
					return true
				}
			}
		}
	}
	return false
}
