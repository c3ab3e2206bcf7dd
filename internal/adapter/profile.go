package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/models"
)

// UpdateProfile implements [ProfileAdapter] via PUT /api/auth/profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(update).
		Put("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser(resp, "profile update")
}

// UploadProfilePhoto implements [ProfileAdapter]. The photo is sent as the
// multipart "file" field with its content type.
func (h *httpServerAdapter) UploadProfilePhoto(ctx context.Context, photo models.Photo) (models.PhotoUploadResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField("file", photo.Filename, photo.ContentType, photo.Body).
		Post("/api/auth/profile/photo")
	if err != nil {
		return models.PhotoUploadResponse{}, fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PhotoUploadResponse{}, err
	}

	return decode[models.PhotoUploadResponse](resp, "photo upload")
}

// ChangePassword implements [ProfileAdapter] via PUT /api/auth/profile/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(change).
		Put("/api/auth/profile/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}
