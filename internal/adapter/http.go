package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-edu-resources/internal/config"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/utils"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.RequestIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, the request timeout and a User-Agent built from
// buildInfo.
//
// Returns [ErrInvalidAddress] (wrapped) if adapterCfg.HTTPAddress is empty or
// cannot be parsed as a URL with a host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	h := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, buildInfo.UserAgent()),
		baseURL: baseURL,
		ids:     utils.NewRequestIDGenerator(),
		logger:  logger,
	}

	h.client.
		OnBeforeRequest(h.authMiddleware).
		OnAfterResponse(h.logMiddleware).
		OnError(h.errorHook)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authMiddleware attaches the held token to every request that does not set
// its own Authorization header, and stamps a request ID.
func (h *httpServerAdapter) authMiddleware(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(headerAuthorization) == "" {
		if token := h.Token(); token != "" {
			r.SetHeader(headerAuthorization, "Bearer "+token)
		}
	}
	if r.Header.Get(headerRequestID) == "" {
		r.SetHeader(headerRequestID, h.ids.Generate())
	}
	return nil
}

func (h *httpServerAdapter) logMiddleware(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(headerRequestID)).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("backend response")
	return nil
}

func (h *httpServerAdapter) errorHook(r *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("method", r.Method).
		Str("url", r.URL).
		Msg("backend request failed")
}

// SetToken implements [AuthAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

func decode[T any](resp *resty.Response, what string) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, what, err)
	}
	return v, nil
}

func kindPath(kind models.ResourceKind) string {
	return "/api/" + kind.Path() + "/"
}
