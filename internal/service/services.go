package service

import (
	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/store"
	"newsroom/models"
)

// Services aggregates every application service.
type Services struct {
	AuthService    AuthService
	NewsService    NewsService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		NewsService:    NewNewsService(storages.NewsRepository, cfg.Pagination, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.Pagination, logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
