package service

import (
	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
)

// ClientServices groups every service of the client.
type ClientServices struct {
	AuthService     AuthService
	AccountService  AccountService
	ResourceService ResourceService
	BookmarkService BookmarkService
	ProfileService  ProfileService
	ProgressService ProgressService
	SiteService     SiteService
}

// NewClientServices wires the services over one server adapter and one
// session. tempDir is where viewed files are written.
func NewClientServices(serverAdapter adapter.ServerAdapter, session Authenticator, validator validators.Validator, tempDir string, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewAuthService(session, logger),
		AccountService:  NewAccountService(serverAdapter, validator, logger),
		ResourceService: NewResourceService(serverAdapter, session, validator, tempDir, logger),
		BookmarkService: NewBookmarkService(serverAdapter, session, validator, logger),
		ProfileService:  NewProfileService(serverAdapter, session, validator, logger),
		ProgressService: NewProgressService(serverAdapter, session, validator, logger),
		SiteService:     NewSiteService(serverAdapter, session, logger),
	}
}
