package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
)

// DefaultBaseURL is the public AirNow API host.
const DefaultBaseURL = "http://www.airnowapi.org"

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// maxDetail caps how much of a failed response body is kept on a RequestError.
const maxDetail = 512

// Middleware manipulates an outgoing *http.Request before it is executed.
type Middleware func(context.Context, *http.Request) error

// Logger represents the minimal logging interface used by the client.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Client issues AirNow API requests. It performs exactly one HTTP round trip
// per call and never retries.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	middleware []Middleware
	logger     Logger
}

// NewClient creates a new AirNow client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidBaseURL, "%s: %v", baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Wrap(ErrInvalidBaseURL, baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		userAgent:  "go-airnow-client/0.1",
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		return nil, ErrNilHTTPClient
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// BaseURL returns the host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// URL returns the full address for req, including its query string.
func (c *Client) URL(req *airnow.Request) *url.URL {
	u := *c.baseURL
	endpoint := req.Endpoint
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	u.Path = c.baseURL.Path + endpoint
	u.RawQuery = req.Params.Encode()
	return &u
}

// Get sends req and returns the response body as text, unmodified.
func (c *Client) Get(ctx context.Context, req *airnow.Request) (string, error) {
	if req == nil {
		return "", errors.New("airnow client: nil request")
	}
	u := c.URL(req)
	redacted := RedactURL(u)

	resp, err := c.doRequest(ctx, http.MethodGet, u.String())
	if err != nil {
		c.errorf("airnow client: GET %s: %v", redacted, err)
		return "", &RequestError{URL: redacted, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Status: resp.StatusCode, URL: redacted, Err: errors.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.errorf("airnow client: request failed status=%d url=%s", resp.StatusCode, redacted)
		return "", &RequestError{Status: resp.StatusCode, URL: redacted, Detail: snippet(body)}
	}

	c.debugf("airnow client: %d %s (%d bytes, %s)", resp.StatusCode, redacted, len(body), resp.Header.Get("Content-Type"))
	return string(body), nil
}

// doRequest builds a request, runs middleware, and executes it.
func (c *Client) doRequest(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	for _, mw := range c.middleware {
		if err := mw(ctx, req); err != nil {
			return nil, errors.Wrap(err, "apply middleware")
		}
	}

	c.debugf("airnow client: %s %s", req.Method, RedactURL(req.URL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			if parsed, perr := url.Parse(uerr.URL); perr == nil {
				uerr.URL = RedactURL(parsed)
			}
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

func (c *Client) errorf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Errorf(format, args...)
	}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxDetail {
		s = s[:maxDetail] + "..."
	}
	return s
}
