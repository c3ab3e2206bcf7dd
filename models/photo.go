package models

import "io"

// Photo limits enforced by the backend.
const (
	MaxPhotoSize = 5 << 20
)

// PhotoContentTypes lists the accepted profile photo types.
var PhotoContentTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// Photo is a profile picture upload.
type Photo struct {
	Filename    string    `validate:"required"`
	ContentType string    `validate:"required,oneof=image/jpeg image/jpg image/png image/webp"`
	Size        int64     `validate:"gt=0,max=5242880"`
	Body        io.Reader `validate:"required"`
}
