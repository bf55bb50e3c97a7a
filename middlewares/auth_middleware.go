package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bkiskm0705-stack/nutrition-app/config"
)

func parseToken(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(config.C.Auth.JWTSecret)
	if len(secret) == 0 {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
		return nil, false
	}
	return claims, true
}

// AuthMiddleware guards participant routes. Identity is the name claim;
// there is no user lookup because login is name-only.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}
		name, _ := claims["name"].(string)
		if name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "name claim missing"})
			return
		}
		c.Set("name", name)
		c.Next()
	}
}

// AdminMiddleware guards the dashboard routes behind the shared-password
// session token.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin token required"})
			return
		}
		c.Next()
	}
}
