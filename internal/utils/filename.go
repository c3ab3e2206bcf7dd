package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

// FilenameFromDisposition returns the file name of a Content-Disposition
// header, or fallback when the header is absent, malformed, or names no file.
// The result is always a bare base name.
func FilenameFromDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return fallback
	}

	name := SanitizeFilename(params["filename"])
	if name == "" {
		return fallback
	}
	return name
}

// SanitizeFilename strips any directory part so a server supplied name cannot
// escape the target directory. Returns "" for names that reduce to nothing.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}
