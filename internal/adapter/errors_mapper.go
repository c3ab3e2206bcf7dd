package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a streamed error response is read.
const maxErrorBody = 64 << 10

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStreamError maps a response whose body was not parsed by resty. The
// body is drained up to maxErrorBody and closed.
func mapStreamError(resp *resty.Response) error {
	if isSuccess(resp.StatusCode()) {
		return nil
	}

	body := resp.RawBody()
	if body == nil {
		return mapStatus(resp.StatusCode(), nil)
	}
	defer body.Close()

	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	return mapStatus(resp.StatusCode(), data)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func mapStatus(status int, body []byte) error {
	if isSuccess(status) {
		return nil
	}

	detail := errorDetail(body)
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case status == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrTooLarge, detail)
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, detail)
	}
}

// errorDetail extracts the message of a FastAPI error body. detail is either
// a string or a list of validation errors; anything else falls back to the
// raw body.
func errorDetail(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return raw
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if len(item.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", item.Loc[len(item.Loc)-1], item.Msg))
				continue
			}
			msgs = append(msgs, item.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	return raw
}
