package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-edu-resources/internal/utils"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/go-resty/resty/v2"
)

// ListResources implements [ResourceAdapter]. It GETs /api/{kind}/ with skip
// and limit query parameters; a zero limit leaves the backend default.
func (h *httpServerAdapter) ListResources(ctx context.Context, kind models.ResourceKind, page models.Page) (models.ResourcePage, error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("skip", strconv.Itoa(page.Skip))
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get(kindPath(kind))
	if err != nil {
		return models.ResourcePage{}, fmt.Errorf("list %s request: %w", kind.Path(), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResourcePage{}, err
	}

	env, err := decode[models.ListEnvelope[models.Resource]](resp, "list "+kind.Path())
	if err != nil {
		return models.ResourcePage{}, err
	}

	for i := range env.Data {
		env.Data[i].Kind = kind
	}
	return models.ResourcePage{Items: env.Data, Pagination: env.Pagination}, nil
}

// GetResource implements [ResourceAdapter].
func (h *httpServerAdapter) GetResource(ctx context.Context, kind models.ResourceKind, id string) (models.Resource, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get(kindPath(kind) + "{id}")
	if err != nil {
		return models.Resource{}, fmt.Errorf("get %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return decodeResource(resp, kind)
}

// CreateResource implements [ResourceAdapter]. The upload is sent as a
// multipart form with the file under "file". Admin only on the backend.
func (h *httpServerAdapter) CreateResource(ctx context.Context, kind models.ResourceKind, upload models.ResourceUpload) (models.Resource, error) {
	resp, err := h.multipart(ctx, upload).
		Post(kindPath(kind))
	if err != nil {
		return models.Resource{}, fmt.Errorf("create %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return decodeResource(resp, kind)
}

// UpdateResource implements [ResourceAdapter]. Only non-empty fields are
// sent; the file is optional. The backend acknowledges an update with a
// bare message, so the stored record is fetched afterwards unless the
// response already carries it.
func (h *httpServerAdapter) UpdateResource(ctx context.Context, kind models.ResourceKind, id string, upload models.ResourceUpload) (models.Resource, error) {
	resp, err := h.multipart(ctx, upload).
		SetPathParam("id", id).
		Put(kindPath(kind) + "{id}")
	if err != nil {
		return models.Resource{}, fmt.Errorf("update %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	res, err := decodeResource(resp, kind)
	if err != nil {
		return models.Resource{}, err
	}
	if res.ID != "" {
		return res, nil
	}

	h.logger.Debug().Str("kind", kind.String()).Str("id", id).Msg("update returned no record, fetching it")
	return h.GetResource(ctx, kind, id)
}

// DeleteResource implements [ResourceAdapter].
func (h *httpServerAdapter) DeleteResource(ctx context.Context, kind models.ResourceKind, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(kindPath(kind) + "{id}")
	if err != nil {
		return fmt.Errorf("delete %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}

// DownloadResource implements [ResourceAdapter] via GET /api/{kind}/{id}/download.
func (h *httpServerAdapter) DownloadResource(ctx context.Context, kind models.ResourceKind, id string) (models.Blob, error) {
	return h.stream(ctx, kind, id, "download")
}

// ViewResource implements [ResourceAdapter] via GET /api/{kind}/{id}/view.
func (h *httpServerAdapter) ViewResource(ctx context.Context, kind models.ResourceKind, id string) (models.Blob, error) {
	return h.stream(ctx, kind, id, "view")
}

// stream issues the request without letting resty buffer the body. The file
// name comes from Content-Disposition, falling back to "<id>.pdf".
func (h *httpServerAdapter) stream(ctx context.Context, kind models.ResourceKind, id, action string) (models.Blob, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		SetDoNotParseResponse(true).
		SetPathParam("id", id).
		Get(kindPath(kind) + "{id}/" + action)
	if err != nil {
		return models.Blob{}, fmt.Errorf("%s %s request: %w", action, kind, err)
	}
	if err = mapStreamError(resp); err != nil {
		return models.Blob{}, err
	}

	header := resp.Header()
	return models.Blob{
		BlobInfo: models.BlobInfo{
			Filename:    utils.FilenameFromDisposition(header.Get("Content-Disposition"), utils.SanitizeFilename(id)+".pdf"),
			ContentType: header.Get("Content-Type"),
			Size:        resp.RawResponse.ContentLength,
		},
		Body: resp.RawBody(),
	}, nil
}

func (h *httpServerAdapter) multipart(ctx context.Context, upload models.ResourceUpload) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(upload.FormData())
	if upload.File != nil {
		req.SetFileReader("file", upload.FileName, upload.File)
	}
	return req
}

func decodeResource(resp *resty.Response, kind models.ResourceKind) (models.Resource, error) {
	env, err := decode[models.Envelope[models.Resource]](resp, string(kind))
	if err != nil {
		return models.Resource{}, err
	}

	env.Data.Kind = kind
	return env.Data, nil
}
