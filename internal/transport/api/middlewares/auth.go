package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bhupeshkr/sebi-trading/internal/service/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey   = "currentUserID"
	CurrentUsernameKey = "currentUsername"
)

// checkAuthorization extracts and validates the bearer token from the
// Authorization header. A missing or malformed header returns
// ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*jwt.Token, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	tokenStr := tokenHeader[len(bearer):]
	token, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return token, nil
}

// AuthRequired rejects unauthorized requests and stores the token's user id
// and username in the request context.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, ErrTokenNotExist) {
				msg = "Authorization header required"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
			return
		}
		userClaim, ok := token.Claims.(*tokens.UserClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"success": false, "error": "invalid jwt claims type"})
			return
		}
		c.Set(CurrentUserIDKey, userClaim.ID)
		c.Set(CurrentUsernameKey, userClaim.Username)
		c.Next()
	}
}
