package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
)

type bookmarkService struct {
	guard
	adapter   adapter.BookmarkAdapter
	validator validators.Validator
}

// NewBookmarkService constructs a [BookmarkService].
func NewBookmarkService(bookmarks adapter.BookmarkAdapter, session AuthState, validator validators.Validator, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		guard:     guard{session: session, logger: logger},
		adapter:   bookmarks,
		validator: validator,
	}
}

func (b *bookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	if !b.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	list, err := b.adapter.ListBookmarks(ctx)
	if err != nil {
		return nil, b.fail(ctx, err)
	}
	return list, nil
}

func (b *bookmarkService) Check(ctx context.Context, kind models.ResourceKind, id string) (models.BookmarkStatus, error) {
	if !b.session.IsAuthenticated() {
		return models.BookmarkStatus{}, ErrNotSignedIn
	}
	if err := checkTarget(kind, id); err != nil {
		return models.BookmarkStatus{}, err
	}

	status, err := b.adapter.CheckBookmark(ctx, kind, id)
	if err != nil {
		return models.BookmarkStatus{}, b.fail(ctx, err)
	}
	return status, nil
}

func (b *bookmarkService) Add(ctx context.Context, kind models.ResourceKind, id, category string) (models.Bookmark, error) {
	if !b.session.IsAuthenticated() {
		return models.Bookmark{}, ErrNotSignedIn
	}

	req := models.BookmarkRequest{
		ResourceType: kind,
		ResourceID:   strings.TrimSpace(id),
		Category:     strings.TrimSpace(category),
	}
	if req.Category == "" {
		req.Category = models.DefaultBookmarkCategory
	}
	if err := b.validator.Validate(ctx, req); err != nil {
		return models.Bookmark{}, err
	}

	bookmark, err := b.adapter.AddBookmark(ctx, req)
	if err != nil {
		return models.Bookmark{}, b.fail(ctx, err)
	}
	return bookmark, nil
}

func (b *bookmarkService) Remove(ctx context.Context, kind models.ResourceKind, id string) error {
	if !b.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if err := checkTarget(kind, id); err != nil {
		return err
	}

	return b.fail(ctx, b.adapter.RemoveBookmark(ctx, kind, id))
}

func (b *bookmarkService) RemoveByID(ctx context.Context, bookmarkID string) error {
	if !b.session.IsAuthenticated() {
		return ErrNotSignedIn
	}
	if strings.TrimSpace(bookmarkID) == "" {
		return fmt.Errorf("%w: bookmark id is required", validators.ErrInvalidInput)
	}

	return b.fail(ctx, b.adapter.RemoveBookmarkByID(ctx, bookmarkID))
}

func (b *bookmarkService) Toggle(ctx context.Context, kind models.ResourceKind, id string) (bool, error) {
	status, err := b.Check(ctx, kind, id)
	if err != nil {
		return false, err
	}

	if status.Bookmarked {
		if err = b.Remove(ctx, kind, id); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err = b.Add(ctx, kind, id, ""); err != nil {
		return false, err
	}
	return true, nil
}
