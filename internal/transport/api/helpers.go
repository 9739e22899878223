package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhupeshkr/sebi-trading/internal/transport/api/middlewares"
)

// getUserIDFromContext reads the user id placed by the auth middleware. Zero
// is never a valid id: unauthenticated requests never reach the handlers
// that call this.
func getUserIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentUserIDKey)
	userID, _ := id.(int64)
	return userID
}

// respondError writes the uniform failure envelope. Optional key/value pairs
// (details, alert) are merged into the body.
func respondError(c *gin.Context, status int, msg string, extra gin.H) {
	body := gin.H{"success": false, "error": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(status, body)
}

func respondInternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	msg := "internal server error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	respondError(c, http.StatusInternalServerError, msg, nil)
}
