package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/common"
	"github.com/dmitrijs2005/userdash/internal/logging"
	"github.com/google/uuid"
)

const (
	registerPath = "/user/register"
	loginPath    = "/user/login"
	profilePath  = "/user/profile"

	// cap on error bodies copied into StatusError
	maxErrorBody = 1 << 10
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHTTPClient builds a client for the backend at baseURL, e.g.
// "http://127.0.0.1:8080" or "https://api.example.com/v1".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend url %q: missing host", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		logger:  logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, registerPath, "", reg, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("register: %w: empty token", ErrInvalidResponse)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, loginPath, "", creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w: empty token", ErrInvalidResponse)
	}
	return resp.Token, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	var env models.ProfileEnvelope
	if err := c.do(ctx, http.MethodGet, profilePath, token, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, p models.Profile) error {
	return c.do(ctx, http.MethodPut, profilePath, token, p, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerValue(token))
	}

	c.logger.Debug(ctx, "backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if err := mapStatus(resp); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrInvalidResponse, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}
