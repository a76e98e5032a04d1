package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"video-tube/domain/model"
	"video-tube/domain/repository"
	"video-tube/infrastructure/configuration"
	"video-tube/infrastructure/logger"
)

// Auth validates the Bearer token and sets "user_id" on the gin context.
// The token subject must still exist in the users collection.
func Auth(userRepository repository.IUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.Request.Header.Get("Authorization")
		if authorization == "" {
			unauthorized(c, "Authorization header is required")
			return
		}
		parts := strings.Split(authorization, "Bearer ")
		if len(parts) != 2 {
			unauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		var claims model.UserClaims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(configuration.C.App.SecretKey), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, tokenMessage(err))
			return
		}

		if _, err := userRepository.GetByUserName(c.Request.Context(), claims.UserName); err != nil {
			logger.GetLogger().WithField("userName", claims.UserName).Warn("Token subject not found")
			unauthorized(c, "Unauthorized")
			return
		}

		c.Set("user_id", claims.Issuer)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		model.NewResponse(http.StatusUnauthorized, nil, message))
}

func tokenMessage(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Token is expired or not active yet"
		}
	}
	return "Invalid token"
}
