package models

// DefaultBookmarkCategory is applied by the backend when none is given.
const DefaultBookmarkCategory = "General"

// Bookmark links the current user to a resource.
type Bookmark struct {
	ID           string       `json:"id"`
	UserEmail    string       `json:"user_email,omitempty"`
	ResourceType ResourceKind `json:"resource_type"`
	ResourceID   string       `json:"resource_id"`
	Category     string       `json:"category,omitempty"`
	Title        string       `json:"title,omitempty"`
	CreatedAt    Timestamp    `json:"created_at"`
}

// BookmarkRequest is the body of a bookmark creation.
type BookmarkRequest struct {
	ResourceType ResourceKind `json:"resource_type" validate:"required,resource_kind"`
	ResourceID   string       `json:"resource_id" validate:"required"`
	Category     string       `json:"category,omitempty" validate:"omitempty,max=50"`
}

// BookmarkStatus reports whether a resource is bookmarked.
type BookmarkStatus struct {
	Bookmarked bool   `json:"bookmarked"`
	BookmarkID string `json:"bookmark_id,omitempty"`
}
