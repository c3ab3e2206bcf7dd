package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/models"
)

// ListBookmarks implements [BookmarkAdapter].
func (h *httpServerAdapter) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/bookmarks/")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	env, err := decode[models.Envelope[[]models.Bookmark]](resp, "bookmarks")
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CheckBookmark implements [BookmarkAdapter].
func (h *httpServerAdapter) CheckBookmark(ctx context.Context, kind models.ResourceKind, resourceID string) (models.BookmarkStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"type": string(kind), "id": resourceID}).
		Get("/api/bookmarks/check/{type}/{id}")
	if err != nil {
		return models.BookmarkStatus{}, fmt.Errorf("check bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BookmarkStatus{}, err
	}

	out, err := decode[models.BookmarkCheckResponse](resp, "bookmark check")
	if err != nil {
		return models.BookmarkStatus{}, err
	}
	return out.BookmarkStatus, nil
}

// AddBookmark implements [BookmarkAdapter]. Adding an existing bookmark
// returns the stored one.
func (h *httpServerAdapter) AddBookmark(ctx context.Context, req models.BookmarkRequest) (models.Bookmark, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/bookmarks/")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("add bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	env, err := decode[models.Envelope[models.Bookmark]](resp, "bookmark")
	if err != nil {
		return models.Bookmark{}, err
	}
	return env.Data, nil
}

// RemoveBookmark implements [BookmarkAdapter].
func (h *httpServerAdapter) RemoveBookmark(ctx context.Context, kind models.ResourceKind, resourceID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"type": string(kind), "id": resourceID}).
		Delete("/api/bookmarks/{type}/{id}")
	if err != nil {
		return fmt.Errorf("remove bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveBookmarkByID implements [BookmarkAdapter].
func (h *httpServerAdapter) RemoveBookmarkByID(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/bookmarks/id/{id}")
	if err != nil {
		return fmt.Errorf("remove bookmark by id request: %w", err)
	}

	return mapHTTPError(resp)
}
