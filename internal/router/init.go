package router

import (
	"github.com/grigorev/user-directory/internal/application"
	"github.com/grigorev/user-directory/internal/container"
	repo "github.com/grigorev/user-directory/internal/domain/repository"
	pginfra "github.com/grigorev/user-directory/internal/infrastructure/postgres"
	handlers "github.com/grigorev/user-directory/internal/interface/http"
	"github.com/grigorev/user-directory/internal/router/modules"
)

type Deps struct {
	Repo        repo.UserRepository
	Service     *application.Service
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
}

func buildDeps() Deps {
	r := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewService(
		r,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
	)

	return Deps{
		Repo:        r,
		Service:     service,
		AuthHandler: handlers.NewAuthHandler(service, container.GetLogger()),
		UserHandler: handlers.NewUserHandler(service, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry.
// Called once during startup to wire up the feature modules.
func InitModules(r *Registry) {
	deps := buildDeps()
	r.Add(modules.NewAuthModule(deps.AuthHandler))
	r.Add(modules.NewUserModule(deps.UserHandler, deps.Repo, container.GetJWT()))
}
