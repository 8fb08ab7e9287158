// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	vigil_errors "github.com/adaptivsec/vigil/api/errors"
	logger "github.com/adaptivsec/vigil/api/logging"
)

// RespondWithError writes the uniform failure envelope and logs the cause.
// The logged err never reaches the client; only message does.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"success": false, "error": message})
}

// NormalizeErrorMessage narrows an arbitrary recovered value to a client
// message: an error's message when it has one, the fixed unknown-error
// literal otherwise. Panic values that are not errors fall in the second
// bucket.
func NormalizeErrorMessage(v any) string {
	err, ok := v.(error)
	if !ok || err == nil || err.Error() == "" {
		return vigil_errors.UnknownErrorMessage
	}
	return err.Error()
}
