package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuth
const (
	ContextSubject = "subject"
	ContextRole    = "userRole"
)

// JWTAuth validates an HS256 bearer token and stores its subject and role in the context.
// Requests without a valid token are answered with 401.
func JWTAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "Authorization header must use Bearer scheme")
			return
		}

		claims, err := parseJWTToken(tokenString, jwtSecret)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if err := extractAndSetClaims(c, claims); err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// parseJWTToken validates and parses a JWT token using HMAC signing method.
// exp, nbf and iat are checked by the parser.
func parseJWTToken(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return jwtSecret, nil
	}, jwt.WithIssuedAt())
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// extractAndSetClaims copies subject and role into the Gin context
func extractAndSetClaims(c *gin.Context, claims jwt.MapClaims) error {
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return fmt.Errorf("token missing required 'sub' claim")
	}
	c.Set(ContextSubject, subject)

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return fmt.Errorf("token missing required 'role' claim")
	}
	c.Set(ContextRole, role)

	return nil
}
