package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grigorev/user-directory/internal/domain/entity"
	repo "github.com/grigorev/user-directory/internal/domain/repository"
	"github.com/grigorev/user-directory/pkg/helpers"
	"github.com/grigorev/user-directory/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxClaimsKey    = "claims"
)

// Auth validates the bearer token and re-checks the account's current
// status against the store. The status claim inside the token is a
// stale snapshot; admission always depends on what the store says now,
// so blocking an account revokes its outstanding tokens immediately.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortErr(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.AbortErr(c, http.StatusForbidden, "User blocked or deleted")
				return
			}
			response.AbortErr(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if u.Status != entity.StatusActive {
			response.AbortErr(c, http.StatusForbidden, "User blocked or deleted")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
