package service

import (
	"context"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/models"
)

type siteService struct {
	guard
	adapter adapter.SiteAdapter
}

// NewSiteService constructs a [SiteService].
func NewSiteService(site adapter.SiteAdapter, session AuthState, logger *logger.Logger) SiteService {
	return &siteService{
		guard:   guard{session: session, logger: logger},
		adapter: site,
	}
}

func (s *siteService) Dashboard(ctx context.Context) (models.AdminDashboard, error) {
	if err := s.requireAdmin(); err != nil {
		return models.AdminDashboard{}, err
	}

	dashboard, err := s.adapter.GetAdminDashboard(ctx)
	if err != nil {
		return models.AdminDashboard{}, s.fail(ctx, err)
	}
	return dashboard, nil
}

func (s *siteService) Content(ctx context.Context) (models.SiteContent, error) {
	content, err := s.adapter.GetSiteContent(ctx)
	if err != nil {
		return models.SiteContent{}, s.fail(ctx, err)
	}
	return content, nil
}
