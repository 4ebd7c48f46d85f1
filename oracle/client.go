package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gogpu/wcag"
)

// DefaultBaseURL is the WebAIM contrast checker endpoint.
const DefaultBaseURL = "https://webaim.org/resources/contrastchecker/"

// Defaults for the retrying HTTP client built by New.
const (
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryMax is the number of retries after the first attempt.
	DefaultRetryMax = 3
	// DefaultRetryWaitMin and DefaultRetryWaitMax bound the backoff between attempts.
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 5 * time.Second
)

// maxBodySize caps the response body. Real answers are under 100 bytes.
const maxBodySize = 64 << 10

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "oracle: unexpected status " + e.Status
}

// Client queries the contrast checker service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures a Client.
//
// Example:
//
//	c := oracle.New(
//	    oracle.WithBaseURL(srv.URL),
//	    oracle.WithHTTPClient(srv.Client()),
//	)
type Option func(*Client)

// WithBaseURL points the client at another endpoint, such as a mirror or
// a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used for requests. It replaces the
// default retrying client, so the retry and timeout options no longer apply.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a logger for this client. By default the client logs
// through wcag.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTimeout bounds each attempt made by the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetryMax sets how many times the default client retries a failed
// request. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.retryMax = n
	}
}

// WithRetryWait sets the backoff bounds of the default client.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.retryWaitMin = minWait
		c.retryWaitMax = maxWait
	}
}

// New creates a Client. Unless WithHTTPClient is given, requests go through
// a retrying client that retries connection errors and 5xx answers with
// exponential backoff.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		timeout:      DefaultTimeout,
		retryMax:     DefaultRetryMax,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = c.newRetryClient()
	}
	return c
}

// newRetryClient builds the default *http.Client on retryablehttp.
func (c *Client) newRetryClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = c.retryMax
	rc.RetryWaitMin = c.retryWaitMin
	rc.RetryWaitMax = c.retryWaitMax
	rc.HTTPClient.Timeout = c.timeout
	rc.Logger = retryLogger{c}
	// Hand the last response back so Verify can report its status.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc.StandardClient()
}

// retryLogger routes retryablehttp's logging through the client's logger,
// resolved per call so that wcag.SetLogger takes effect later on.
type retryLogger struct {
	c *Client
}

func (l retryLogger) Error(msg string, kv ...any) { l.c.log().Error("oracle: "+msg, kv...) }
func (l retryLogger) Info(msg string, kv ...any)  { l.c.log().Debug("oracle: "+msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...any) { l.c.log().Debug("oracle: "+msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...any)  { l.c.log().Warn("oracle: "+msg, kv...) }

func (c *Client) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return wcag.Logger()
}

// Verify asks the service for the contrast of fg on bg.
// It implements wcag.Verifier.
func (c *Client) Verify(ctx context.Context, fg, bg wcag.Color) (wcag.Report, error) {
	if err := fg.Validate(); err != nil {
		return wcag.Report{}, fmt.Errorf("foreground: %w", err)
	}
	if err := bg.Validate(); err != nil {
		return wcag.Report{}, fmt.Errorf("background: %w", err)
	}

	u, err := c.requestURL(Hex(fg), Hex(bg))
	if err != nil {
		return wcag.Report{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return wcag.Report{}, fmt.Errorf("oracle: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := c.log()
	log.Debug("oracle: request", slog.String("url", u))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("oracle: request failed", slog.String("url", u), slog.Any("error", err))
		return wcag.Report{}, fmt.Errorf("oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		log.Warn("oracle: bad status", slog.String("url", u), slog.Int("status", resp.StatusCode))
		return wcag.Report{}, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var report wcag.Report
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&report); err != nil {
		log.Warn("oracle: decode failed", slog.String("url", u), slog.Any("error", err))
		return wcag.Report{}, fmt.Errorf("oracle: decode response: %w", err)
	}
	if _, err := report.Result(); err != nil {
		return wcag.Report{}, fmt.Errorf("oracle: %w", err)
	}

	log.Debug("oracle: response",
		slog.Float64("ratio", report.Ratio),
		slog.String("AA", string(report.AA)),
		slog.String("AAA", string(report.AAA)))
	return report, nil
}

// requestURL appends the query to the base URL. The service expects a
// bare "api" flag, which url.Values cannot express.
func (c *Client) requestURL(fg, bg string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("oracle: base URL: %w", err)
	}
	q := "fcolor=" + fg + "&bcolor=" + bg + "&api"
	if u.RawQuery != "" {
		q = u.RawQuery + "&" + q
	}
	u.RawQuery = q
	return u.String(), nil
}

var _ wcag.Verifier = (*Client)(nil)
