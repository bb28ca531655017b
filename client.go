package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// RequestDecorator runs before every outgoing request is dispatched.
type RequestDecorator func(req *http.Request)

// ResponseHandler runs in the continuation of every failed call, before the
// error reaches the caller. Handlers must be idempotent: the same failing
// response is only seen once, but a handler's side effects can race the
// caller's own error handling.
type ResponseHandler func(err error) error

// Client is the single point of outbound communication with the backend. The
// decorator/handler pair is registered once at construction; individual calls
// carry no per-call auth logic.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     Logger
	decorators []RequestDecorator
	handlers   []ResponseHandler
}

// NewClient builds a Client against cfg.APIURL with the standard middleware:
// bearer attachment from the store, request correlation, and the global
// forced-logout policy on authentication failures.
func NewClient(cfg *Config, store TokenStore, nav Navigator) (*Client, error) {
	base, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid API base URL")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "cookie jar init")
	}

	c := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
			Jar:     jar,
		},
		logger: defLogger{},
	}

	c.Use(BearerDecorator(store))
	c.Use(CorrelationDecorator())
	c.Handle(ForcedLogoutHandler(store, nav, nil))

	return c, nil
}

func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithHTTPClient swaps the underlying transport. Intended for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Use appends a request decorator.
func (c *Client) Use(d RequestDecorator) *Client {
	c.decorators = append(c.decorators, d)
	return c
}

// Handle appends a response handler.
func (c *Client) Handle(h ResponseHandler) *Client {
	c.handlers = append(c.handlers, h)
	return c
}

// BearerDecorator attaches the stored credential as the bearer authorization
// header, overriding any stale header already on the request. Without a stored
// credential the request goes out bare and protected endpoints reject it.
func BearerDecorator(store TokenStore) RequestDecorator {
	return func(req *http.Request) {
		if token, ok := store.Load(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			req.Header.Del("Authorization")
		}
	}
}

// CorrelationDecorator tags every request with a fresh correlation id.
func CorrelationDecorator() RequestDecorator {
	return func(req *http.Request) {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
}

// ForcedLogoutHandler implements the global reaction to authentication
// failures: unless the user is already on the login view, clear the credential
// and force navigation to login, then re-raise the original error so the
// caller's own handling still runs. The policy applies to every request from
// every view, it is not per call.
func ForcedLogoutHandler(store TokenStore, nav Navigator, logger Logger) ResponseHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return func(err error) error {
		if !IsAuthFailure(err) {
			return err
		}
		if nav.CurrentPath() != LoginPath {
			logger.Info("authentication failure, forcing logout")
			if cerr := store.Clear(); cerr != nil {
				logger.Error("clear credential on forced logout: %v", cerr)
			}
			nav.NavigateTo(LoginPath)
		}
		return err
	}
}

// Get issues a GET request. query may be nil; out may be nil to discard the body.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	for _, decorate := range c.decorators {
		decorate(req)
	}

	c.logger.Debug("request %s %s", method, u.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response to classify, so this never triggers the logout policy.
		return c.finish(goerrors.Wrap(err, goerrors.CategoryInternal, "request failed"))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.finish(goerrors.Wrap(err, goerrors.CategoryInternal, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.finish(newAPIError(resp.StatusCode, raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return c.finish(goerrors.Wrap(err, goerrors.CategoryInternal, "decode response body"))
		}
	}
	return nil
}

func (c *Client) finish(err error) error {
	for _, handle := range c.handlers {
		err = handle(err)
	}
	return err
}

func newAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status, Body: body}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.Message = payload.Message
	}

	if status == http.StatusUnauthorized {
		return goerrors.Wrap(apiErr, goerrors.CategoryAuth, "authentication failed").
			WithCode(goerrors.CodeUnauthorized).
			WithTextCode(TextCodeAuthFailure)
	}

	return goerrors.Wrap(apiErr, goerrors.CategoryInternal, "backend request failed").
		WithMetadata(map[string]any{"status": status})
}
