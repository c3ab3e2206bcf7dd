package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-edu-resources/models"
)

// fakeSession is an in-memory Authenticator.
type fakeSession struct {
	mu          sync.Mutex
	user        *models.User
	invalidated int

	login    func(models.Credentials) (models.User, error)
	register func(models.Registration) (models.RegisterResult, error)
	logouts  int
}

func signedIn(user models.User) *fakeSession {
	return &fakeSession{user: &user}
}

func anonymous() *fakeSession {
	return &fakeSession{}
}

func (f *fakeSession) IsAuthenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user != nil
}

func (f *fakeSession) IsAdmin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user != nil && f.user.Admin()
}

func (f *fakeSession) CurrentUser() (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeSession) SetUser(user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return ErrNotSignedIn
	}
	f.user = &user
	return nil
}

func (f *fakeSession) Invalidate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	f.invalidated++
	return nil
}

func (f *fakeSession) Login(_ context.Context, creds models.Credentials) (models.User, error) {
	user, err := f.login(creds)
	if err == nil {
		f.mu.Lock()
		f.user = &user
		f.mu.Unlock()
	}
	return user, err
}

func (f *fakeSession) Register(_ context.Context, reg models.Registration) (models.RegisterResult, error) {
	return f.register(reg)
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	f.logouts++
	return nil
}

var (
	student = models.User{ID: "u-1", Name: "Asha Student", Email: "student@college.edu", Role: "student"}
	admin   = models.User{ID: "u-2", Name: "Ravi Admin", Email: "admin@college.edu", Role: models.RoleAdmin}
)
