package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": message, "code": "unauthorized"}})
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			abortUnauthorized(ctx, "Authorization header is required")
			return
		}

		// Divides the header into Bearer and Token
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(ctx, "Invalid authorization format")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortUnauthorized(ctx, "Invalid token")
			return
		}

		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				abortUnauthorized(ctx, "Token expired")
				return
			}
		}

		// Sets the token claims in the context (user ID)
		if id, ok := claims["id"].(float64); ok {
			ctx.Set("userId", int(id))
		}
		ctx.Next()
	}
}

// CurrentUserID returns the id of the authenticated user, if any.
func CurrentUserID(ctx *gin.Context) (int, bool) {
	v, ok := ctx.Get("userId")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}
