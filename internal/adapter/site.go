package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/models"
)

// GetAdminDashboard implements [SiteAdapter]. Admin only on the backend.
func (h *httpServerAdapter) GetAdminDashboard(ctx context.Context) (models.AdminDashboard, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/admin/dashboard")
	if err != nil {
		return models.AdminDashboard{}, fmt.Errorf("admin dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AdminDashboard{}, err
	}

	return decode[models.AdminDashboard](resp, "admin dashboard")
}

// GetSiteContent implements [SiteAdapter].
func (h *httpServerAdapter) GetSiteContent(ctx context.Context) (models.SiteContent, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/cms/content")
	if err != nil {
		return models.SiteContent{}, fmt.Errorf("site content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SiteContent{}, err
	}

	env, err := decode[models.Envelope[models.SiteContent]](resp, "site content")
	if err != nil {
		return models.SiteContent{}, err
	}
	return env.Data, nil
}
