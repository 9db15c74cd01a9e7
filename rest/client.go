// Package rest is the typed client for the rental API. It owns request
// plumbing and error mapping only; business rules live server-side.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"

	"github.com/ngoclaithe/camerental/config"
	"github.com/ngoclaithe/camerental/pkg/errs"
)

var (
	ErrAPIUnavailable = errors.New("api unavailable")
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrRequestFailed  = errors.New("request failed")
)

// APIError carries the server-provided message so the UI can surface it
// verbatim. Status-class sentinels are attached with errs.Mark, so callers
// match with errors.Is while Message stays available via errors.As.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Message extracts the user-facing text of an API failure, falling back to a
// generic message when the server did not send one.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong, please try again"
}

// Client talks to the rental API. Authentication rides on the cookie jar the
// way the browser client did; no request timeout is configured, cancellation
// is the caller's context.
type Client struct {
	origin string
	http   *http.Client
	logger *slog.Logger
	token  string

	Auth       *AuthService
	Equipments *EquipmentService
	Customers  *CustomerService
	Users      *UserService
	Orders     *OrderService
	Calendar   *CalendarService
	Reports    *ReportService
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build cookie jar")
	}

	c := &Client{
		origin: cfg.Origin(),
		http:   &http.Client{Jar: jar},
		logger: logger,
	}
	c.Auth = &AuthService{client: c}
	c.Equipments = &EquipmentService{client: c}
	c.Customers = &CustomerService{client: c}
	c.Users = &UserService{client: c}
	c.Orders = &OrderService{client: c}
	c.Calendar = &CalendarService{client: c}
	c.Reports = &ReportService{client: c}
	return c, nil
}

// SetAuthToken attaches a bearer token to every request. The cookie jar only
// lives as long as the process, so a restored remember-me session
// re-authenticates through this token instead.
func (c *Client) SetAuthToken(token string) {
	c.token = token
}

type requestOptions struct {
	headers map[string]string
}

type requestOption func(*requestOptions)

func withHeader(key, value string) requestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts ...requestOption) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}
	for k, v := range options.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(err, ErrAPIUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func (c *Client) errorFromResponse(method, path string, resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}

	c.logger.Warn("api request failed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", apiErr.Message,
	)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errs.Mark(apiErr, ErrBadRequest)
	case http.StatusUnauthorized:
		return errs.Mark(apiErr, ErrUnauthorized)
	case http.StatusForbidden:
		return errs.Mark(apiErr, ErrForbidden)
	case http.StatusNotFound:
		return errs.Mark(apiErr, ErrNotFound)
	case http.StatusConflict:
		return errs.Mark(apiErr, ErrConflict)
	default:
		return errs.Mark(apiErr, ErrRequestFailed)
	}
}
