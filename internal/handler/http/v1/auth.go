package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/models"
)

const actorContextKey = "actor"

// identityClaims is the token payload issued by the accounts service.
type identityClaims struct {
	Role       string `json:"role"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	HospitalID string `json:"hospital_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware authenticates the caller from a Bearer token and
// stores the resulting Actor in the request context.
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &identityClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.WithError(err).Warn("Rejected invalid identity token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if claims.Subject == "" || claims.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is missing identity claims"})
			return
		}

		actor := models.Actor{
			UserID: claims.Subject,
			Role:   models.Role(claims.Role),
			Name:   claims.Name,
			Phone:  claims.Phone,
		}
		if claims.HospitalID != "" {
			hospitalID, err := uuid.Parse(claims.HospitalID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token carries a malformed hospital id"})
				return
			}
			actor.HospitalID = hospitalID
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// actorFromContext returns the authenticated caller stored by the
// middleware.
func actorFromContext(c *gin.Context) models.Actor {
	if value, ok := c.Get(actorContextKey); ok {
		if actor, ok := value.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
