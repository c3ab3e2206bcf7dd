package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/utils"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
)

// Page sizes of resource listings, as enforced by the backend.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type resourceService struct {
	guard
	adapter   adapter.ResourceAdapter
	validator validators.Validator
	tempDir   string
}

// NewResourceService constructs a [ResourceService]. View writes into
// tempDir, or into the OS temporary directory when it is empty.
func NewResourceService(resources adapter.ResourceAdapter, session AuthState, validator validators.Validator, tempDir string, logger *logger.Logger) ResourceService {
	return &resourceService{
		guard:     guard{session: session, logger: logger},
		adapter:   resources,
		validator: validator,
		tempDir:   tempDir,
	}
}

func (r *resourceService) List(ctx context.Context, kind models.ResourceKind, page models.Page) (models.ResourcePage, error) {
	if err := checkKind(kind); err != nil {
		return models.ResourcePage{}, err
	}

	page.Limit = clampLimit(page.Limit)
	if err := r.validator.Validate(ctx, page); err != nil {
		return models.ResourcePage{}, err
	}

	result, err := r.adapter.ListResources(ctx, kind, page)
	if err != nil {
		return models.ResourcePage{}, r.fail(ctx, err)
	}
	return result, nil
}

func (r *resourceService) Get(ctx context.Context, kind models.ResourceKind, id string) (models.Resource, error) {
	if err := checkTarget(kind, id); err != nil {
		return models.Resource{}, err
	}

	res, err := r.adapter.GetResource(ctx, kind, id)
	if err != nil {
		return models.Resource{}, r.fail(ctx, err)
	}
	return res, nil
}

func (r *resourceService) Create(ctx context.Context, kind models.ResourceKind, upload models.ResourceUpload) (models.Resource, error) {
	if err := r.requireAdmin(); err != nil {
		return models.Resource{}, err
	}
	if err := checkKind(kind); err != nil {
		return models.Resource{}, err
	}

	upload.Update = false
	if err := r.validator.Validate(ctx, upload); err != nil {
		return models.Resource{}, err
	}

	res, err := r.adapter.CreateResource(ctx, kind, upload)
	if err != nil {
		return models.Resource{}, r.fail(ctx, err)
	}
	r.logger.Info().Str("kind", kind.String()).Str("id", res.ID).Msg("resource created")
	return res, nil
}

func (r *resourceService) Update(ctx context.Context, kind models.ResourceKind, id string, upload models.ResourceUpload) (models.Resource, error) {
	if err := r.requireAdmin(); err != nil {
		return models.Resource{}, err
	}
	if err := checkTarget(kind, id); err != nil {
		return models.Resource{}, err
	}

	upload.Update = true
	if err := r.validator.Validate(ctx, upload); err != nil {
		return models.Resource{}, err
	}
	if upload.File == nil && len(upload.FormData()) == 0 {
		return models.Resource{}, ErrNothingToUpdate
	}

	res, err := r.adapter.UpdateResource(ctx, kind, id, upload)
	if err != nil {
		return models.Resource{}, r.fail(ctx, err)
	}
	r.logger.Info().Str("kind", kind.String()).Str("id", id).Msg("resource updated")
	return res, nil
}

func (r *resourceService) Delete(ctx context.Context, kind models.ResourceKind, id string) error {
	if err := r.requireAdmin(); err != nil {
		return err
	}
	if err := checkTarget(kind, id); err != nil {
		return err
	}

	if err := r.adapter.DeleteResource(ctx, kind, id); err != nil {
		return r.fail(ctx, err)
	}
	r.logger.Info().Str("kind", kind.String()).Str("id", id).Msg("resource deleted")
	return nil
}

func (r *resourceService) Download(ctx context.Context, kind models.ResourceKind, id, dir string) (models.DownloadedFile, error) {
	if err := checkTarget(kind, id); err != nil {
		return models.DownloadedFile{}, err
	}
	if dir == "" {
		dir = "."
	}

	blob, err := r.adapter.DownloadResource(ctx, kind, id)
	if err != nil {
		return models.DownloadedFile{}, r.fail(ctx, err)
	}
	defer blob.Body.Close()

	if err = os.MkdirAll(dir, 0o750); err != nil {
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	name := fileName(blob.Filename, id)
	path := filepath.Join(dir, name)

	// write next to the target and rename so a cancelled download never
	// leaves a truncated file under the final name
	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	size, err := copyAndClose(tmp, blob.Body)
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	r.logger.Info().Str("path", path).Int64("size", size).Msg("resource downloaded")
	return downloaded(blob.BlobInfo, name, path, size), nil
}

func (r *resourceService) View(ctx context.Context, kind models.ResourceKind, id string) (models.DownloadedFile, error) {
	if err := checkTarget(kind, id); err != nil {
		return models.DownloadedFile{}, err
	}

	blob, err := r.adapter.ViewResource(ctx, kind, id)
	if err != nil {
		return models.DownloadedFile{}, r.fail(ctx, err)
	}
	defer blob.Body.Close()

	name := fileName(blob.Filename, id)
	tmp, err := os.CreateTemp(r.tempDir, "eduresources-*-"+name)
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	size, err := copyAndClose(tmp, blob.Body)
	if err != nil {
		_ = os.Remove(tmp.Name())
		return models.DownloadedFile{}, fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	return downloaded(blob.BlobInfo, name, tmp.Name(), size), nil
}

func copyAndClose(dst *os.File, src io.Reader) (int64, error) {
	n, err := io.Copy(dst, src)
	return n, errors.Join(err, dst.Close())
}

func downloaded(info models.BlobInfo, name, path string, size int64) models.DownloadedFile {
	info.Filename = name
	info.Size = size
	return models.DownloadedFile{BlobInfo: info, Path: path}
}

// fileName never lets a server supplied name leave the target directory.
func fileName(name, id string) string {
	if clean := utils.SanitizeFilename(name); clean != "" && !strings.HasPrefix(clean, ".") {
		return clean
	}
	if clean := utils.SanitizeFilename(id); clean != "" && !strings.HasPrefix(clean, ".") {
		return clean + ".pdf"
	}
	return "resource.pdf"
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}

func checkKind(kind models.ResourceKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown resource kind %q", validators.ErrInvalidInput, kind)
	}
	return nil
}

func checkTarget(kind models.ResourceKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", validators.ErrInvalidInput)
	}
	return nil
}
