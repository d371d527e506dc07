package service

import (
	"context"

	"newsroom/models"
)

// appInfoService serves static build metadata captured at startup.
type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) BuildInfo(_ context.Context) models.AppBuildInfo {
	return s.info
}
