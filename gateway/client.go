package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Doer executes one HTTP exchange against the catalog API. The cache
// layer depends on this interface, not on Client, so tests and alternate
// transports can stand in.
type Doer interface {
	// Do issues method against path (relative to the API root), encoding
	// body as JSON when non-nil, and returns the raw response body.
	// Failures come back as *Error carrying a taxonomy sentinel.
	Do(ctx context.Context, method, path string, body any) ([]byte, error)
}

// Client is the default Doer: an authenticated, optionally rate-limited
// HTTP client over the remote catalog API.
type Client struct {
	http      *http.Client
	baseURL   string
	tokens    TokenProvider
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

// New creates a gateway client. tokens may be nil for a purely anonymous
// client; logger may be nil.
func New(cfg Config, tokens TokenProvider, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		tokens:    tokens,
		limiter:   limiter,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}, nil
}

// Do implements Doer.
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Method: method, Path: path, Detail: err.Error(), Err: ErrNetwork}
		}
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Method: method, Path: path, Detail: err.Error(), Err: ErrValidation}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Detail: err.Error(), Err: ErrUnknown}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		switch {
		case err != nil:
			// Proceed unauthenticated; the server decides whether the
			// endpoint tolerates that.
			c.logger.Debug("token unavailable", "method", method, "path", path, "error", err)
		case token != "":
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("catalog request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Detail: err.Error(), Err: ErrNetwork}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Status: resp.StatusCode, Detail: err.Error(), Err: ErrNetwork}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	return nil, &Error{
		Method: method,
		Path:   path,
		Status: resp.StatusCode,
		Detail: serverDetail(data),
		Err:    classify(resp.StatusCode),
	}
}

// serverDetail extracts a human-readable message from an error response
// body. The API answers either {"message": ...} or plain text.
func serverDetail(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
