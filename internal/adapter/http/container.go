package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/database/mongodb"
	"todoapi/internal/adapter/database/mongodb/repository"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
	"todoapi/pkg/config"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
	Tokens   port.TokenService

	AuthService port.AuthService
	TodoService port.TodoService

	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
	Identity    gin.HandlerFunc

	users *repository.UserRepository
}

func NewContainer(db *mongodb.DB, cfg *config.Config, metrics *telemetry.AppMetrics) *Container {
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTExpiry)

	authSvc := service.NewAuthService(userRepo, tokens)
	todoSvc := service.NewTodoService(todoRepo)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,
		Tokens:   tokens,

		AuthService: authSvc,
		TodoService: todoSvc,

		AuthHandler: handler.NewAuthHandler(authSvc, metrics),
		TodoHandler: handler.NewTodoHandler(todoSvc, metrics),
		Identity:    middleware.Identity(tokens, userRepo),

		users: userRepo,
	}
}

func (c *Container) EnsureIndexes(ctx context.Context) error {
	return c.users.EnsureIndexes(ctx)
}
