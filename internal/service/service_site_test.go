package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/app"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/mock"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSiteSvc(t *testing.T, session AuthState) (SiteService, *mock.MockSiteAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	site := mock.NewMockSiteAdapter(ctrl)

	return NewSiteService(site, session, logger.Nop()), site
}

func TestSiteService_Dashboard(t *testing.T) {
	svc, site := newTestSiteSvc(t, signedIn(admin))

	site.EXPECT().GetAdminDashboard(gomock.Any()).Return(models.AdminDashboard{
		Message: "Welcome Admin Ravi Admin",
		Stats:   models.DashboardStats{TotalUsers: 3, TotalAdmins: 1, TotalStudents: 2},
	}, nil)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.Stats.TotalUsers)
	assert.Equal(t, 2, dashboard.Stats.TotalStudents)
}

func TestSiteService_DashboardRefusedLocally(t *testing.T) {
	// no adapter expectations: the mock fails on any call
	svc, _ := newTestSiteSvc(t, signedIn(student))
	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrAdminOnly)

	anon, _ := newTestSiteSvc(t, anonymous())
	_, err = anon.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestSiteService_DashboardBackendRefusal(t *testing.T) {
	svc, site := newTestSiteSvc(t, signedIn(admin))

	site.EXPECT().GetAdminDashboard(gomock.Any()).
		Return(models.AdminDashboard{}, fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgAdminsOnly))

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrAdminOnly)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestSiteService_ContentAnonymous(t *testing.T) {
	svc, site := newTestSiteSvc(t, anonymous())

	site.EXPECT().GetSiteContent(gomock.Any()).Return(models.SiteContent{
		WelcomeMessage: "Welcome to EduResources CMS!",
		LatestNews:     []models.NewsItem{{ID: 1, Title: "Semester begins soon"}},
	}, nil)

	content, err := svc.Content(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Welcome to EduResources CMS!", content.WelcomeMessage)
	assert.Len(t, content.LatestNews, 1)
}

func TestSiteService_ContentUnavailable(t *testing.T) {
	svc, site := newTestSiteSvc(t, anonymous())

	site.EXPECT().GetSiteContent(gomock.Any()).
		Return(models.SiteContent{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Failed to load CMS content"))

	_, err := svc.Content(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}
