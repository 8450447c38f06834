package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/grigorev/user-directory/internal/domain/repository"
	handlers "github.com/grigorev/user-directory/internal/interface/http"
	"github.com/grigorev/user-directory/internal/interface/middleware"
	"github.com/grigorev/user-directory/pkg/helpers"
)

// UserModule wires the protected directory endpoints behind the access
// gate.
// GET  /api/users
// POST /api/users/block, /api/users/unblock, /api/users/delete
type UserModule struct {
	Handler *handlers.UserHandler
	Repo    repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, r repo.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Repo: r, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Repo, m.JWT))
	{
		users.GET("", m.Handler.List)
		users.POST("/block", m.Handler.Block)
		users.POST("/unblock", m.Handler.Unblock)
		users.POST("/delete", m.Handler.Delete)
	}
}
