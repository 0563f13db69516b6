package analytics

import (
	"context"
	"fmt"

	"stayhub/internal/shared/constants"
	"stayhub/pkg/cache"
)

type Service interface {
	GetDashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error)
	InvalidateDashboard(ctx context.Context) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cacheService: cacheService}
}

func (s *service) GetDashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_DASHBOARD

	if s.cacheService != nil {
		var cached DashboardAnalytics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	dashboard, err := s.repo.GetDashboardAnalytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard analytics: %w", err)
	}

	if s.cacheService != nil {
		// Stale dashboards are tolerable; a failed write is not worth failing the request.
		_ = s.cacheService.Set(ctx, cacheKey, dashboard, constants.TTL_ANALYTICS_DASHBOARD)
	}

	return dashboard, nil
}

func (s *service) InvalidateDashboard(ctx context.Context) error {
	if s.cacheService == nil {
		return nil
	}
	return s.cacheService.Delete(ctx, constants.CACHE_KEY_ANALYTICS_DASHBOARD)
}
