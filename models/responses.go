package models

// Envelope is the {success, message, data} wrapper most endpoints answer with.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// ListEnvelope is the wrapper of paginated listings.
type ListEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// StatsEnvelope wraps the stats endpoint, which uses a "stats" key instead
// of "data".
type StatsEnvelope struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// BookmarkCheckResponse is the body of a bookmark check.
type BookmarkCheckResponse struct {
	Success bool `json:"success"`
	BookmarkStatus
}

// PhotoUploadResponse is the body of a profile photo upload.
type PhotoUploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	PhotoURL string `json:"photo_url"`
	Profile  *User  `json:"profile,omitempty"`
}

// MessageResponse is the body of endpoints that only report an outcome.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of FastAPI error responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
