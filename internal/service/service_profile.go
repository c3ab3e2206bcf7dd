package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/gabriel-vasile/mimetype"
)

// ProfileAdapter is the slice of the server adapter the profile service
// talks to.
type ProfileAdapter interface {
	adapter.ProfileAdapter
	GetProfile(ctx context.Context) (models.User, error)
}

type profileService struct {
	guard
	adapter   ProfileAdapter
	validator validators.Validator
}

// NewProfileService constructs a [ProfileService].
func NewProfileService(profiles ProfileAdapter, session AuthState, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		guard:     guard{session: session, logger: logger},
		adapter:   profiles,
		validator: validator,
	}
}

func (p *profileService) Get(ctx context.Context) (models.User, error) {
	if !p.session.IsAuthenticated() {
		return models.User{}, ErrNotSignedIn
	}

	user, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.User{}, p.fail(ctx, err)
	}

	p.syncUser(user)
	return user, nil
}

func (p *profileService) Update(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if !p.session.IsAuthenticated() {
		return models.User{}, ErrNotSignedIn
	}
	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := p.adapter.UpdateProfile(ctx, update)
	if err != nil {
		return models.User{}, p.fail(ctx, err)
	}

	p.syncUser(user)
	return user, nil
}

func (p *profileService) UploadPhoto(ctx context.Context, photo models.Photo) (models.PhotoUploadResponse, error) {
	if !p.session.IsAuthenticated() {
		return models.PhotoUploadResponse{}, ErrNotSignedIn
	}

	photo.ContentType = strings.ToLower(strings.TrimSpace(photo.ContentType))
	if !slices.Contains(models.PhotoContentTypes, photo.ContentType) {
		return models.PhotoUploadResponse{}, fmt.Errorf("%w: %q, expected jpeg, png or webp", ErrUnsupportedPhoto, photo.ContentType)
	}
	if photo.Size > models.MaxPhotoSize {
		return models.PhotoUploadResponse{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, photo.Size, models.MaxPhotoSize)
	}
	if err := p.validator.Validate(ctx, photo); err != nil {
		return models.PhotoUploadResponse{}, err
	}

	resp, err := p.adapter.UploadProfilePhoto(ctx, photo)
	if err != nil {
		return models.PhotoUploadResponse{}, p.fail(ctx, err)
	}

	if resp.Profile != nil {
		p.syncUser(*resp.Profile)
	} else if user, ok := p.session.CurrentUser(); ok && resp.PhotoURL != "" {
		user.ProfilePhoto = resp.PhotoURL
		p.syncUser(user)
	}
	return resp, nil
}

func (p *profileService) UploadPhotoFile(ctx context.Context, path string) (models.PhotoUploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("error opening photo: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("error reading photo: %w", err)
	}

	mt, err := mimetype.DetectReader(file)
	if err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("error detecting photo type: %w", err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("error reading photo: %w", err)
	}

	return p.UploadPhoto(ctx, models.Photo{
		Filename:    filepath.Base(path),
		ContentType: strings.SplitN(mt.String(), ";", 2)[0],
		Size:        info.Size(),
		Body:        file,
	})
}

func (p *profileService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if !p.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if err := p.validator.Validate(ctx, change); err != nil {
		return err
	}

	return p.fail(ctx, p.adapter.ChangePassword(ctx, change))
}
