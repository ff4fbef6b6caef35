package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/surveyhub/quiz-service/internal/models"
	"github.com/surveyhub/quiz-service/internal/repositories"
)

const actorKey = "actor"

// Identity resolves the bearer token to an Actor and stores it in the gin
// context. A missing Authorization header yields an anonymous actor; a
// malformed or stale token is rejected. Token issuance lives with the
// external identity provider; only validation happens here.
func Identity(secret string, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(actorKey, models.Actor{})
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		rawID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}

		// The token may outlive the account or a role change; the user row
		// is authoritative for staff status.
		user, err := users.GetByID(c.Request.Context(), uint(rawID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unknown user"})
			return
		}

		userID := user.ID
		c.Set(actorKey, models.Actor{UserID: &userID, IsStaff: user.IsStaff})
		c.Next()
	}
}

// RequireStaff gates write endpoints to privileged actors.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Staff role required"})
			return
		}
		c.Next()
	}
}

// ActorFromContext returns the actor resolved by Identity; absent means
// anonymous.
func ActorFromContext(c *gin.Context) models.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
