package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxTeamID = "team_id"

// AuthMiddleware guards routes with the bearer tokens issued at login.
type AuthMiddleware struct {
	tokens *TokenManager
}

func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireTeam admits team tokens and stores the team ID on the context.
func (am *AuthMiddleware) RequireTeam() gin.HandlerFunc {
	return am.require(RoleTeam)
}

// RequireAdmin admits admin tokens only.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return am.require(RoleAdmin)
}

func (am *AuthMiddleware) require(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		claims, err := am.tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		if claims.Role == RoleTeam {
			c.Set(ctxTeamID, claims.Subject)
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return c.Query("token")
}

func teamID(c *gin.Context) string {
	return c.GetString(ctxTeamID)
}
