// Package client talks to a citizen-registration endpoint the way the
// conformance suite needs: one form-encoded request per call, no retries, and
// the JSON feedback string handed back untouched for the caller to assert on.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"wcg/internal/platform/privacy"
	"wcg/pkg/citizen"
)

const (
	RegistrationPath = "/registration"
	CitizenPath      = "/citizen"

	// UserAgent identifies conformance traffic in the service logs.
	UserAgent = "wcg-conformance/1.0"

	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

var (
	// ErrNotJSON is returned when the response body does not parse as JSON.
	ErrNotJSON = errors.New("response body is not JSON")
	// ErrMissingFeedback is returned when the JSON body has no string "feedback" key.
	ErrMissingFeedback = errors.New("response has no feedback string")
)

// Result is what the service said about a submitted record.
type Result struct {
	StatusCode int
	Feedback   string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has DefaultTimeout and
// does not follow redirects.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a client for the service rooted at baseURL, e.g.
// "https://wcg-apis.herokuapp.com". A trailing slash is ignored.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer("wcg/client")
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Reset asks the service to forget rec's citizen ID. The response is drained
// and ignored whatever it says; the error is non-nil only when the request
// could not be sent or read.
func (c *Client) Reset(ctx context.Context, rec citizen.Record) (err error) {
	ctx, span := c.start(ctx, "client.Reset", http.MethodDelete, citizenAttr(rec))
	defer func() { endSpan(span, err) }()

	resp, err := c.do(ctx, http.MethodDelete, CitizenPath, rec)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return fmt.Errorf("failed to drain reset response: %w", err)
	}
	return nil
}

// Submit posts rec to the registration endpoint once and returns the status
// code and feedback string. Any status code is a valid Result; an error means
// the request failed or the body did not carry feedback.
func (c *Client) Submit(ctx context.Context, rec citizen.Record) (res *Result, err error) {
	ctx, span := c.start(ctx, "client.Submit", http.MethodPost, citizenAttr(rec))
	defer func() { endSpan(span, err) }()

	resp, err := c.do(ctx, http.MethodPost, RegistrationPath, rec)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read registration response: %w", err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	feedback, err := ExtractFeedback(body)
	if err != nil {
		return nil, fmt.Errorf("registration response (status %d): %w", resp.StatusCode, err)
	}

	c.logger.DebugContext(ctx, "registration submitted",
		"citizen_id", privacy.MaskCitizenID(rec.CitizenID),
		"status", resp.StatusCode,
		"feedback", feedback,
	)
	return &Result{StatusCode: resp.StatusCode, Feedback: feedback}, nil
}

// Ping issues a GET for path and returns the status code. Like Reset, the
// error is non-nil only when no response could be read.
func (c *Client) Ping(ctx context.Context, path string) (status int, err error) {
	ctx, span := c.start(ctx, "client.Ping", http.MethodGet, attribute.String("http.path", path))
	defer func() { endSpan(span, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return 0, fmt.Errorf("failed to drain response: %w", err)
	}
	return resp.StatusCode, nil
}

// ExtractFeedback returns the "feedback" string of a JSON response body.
func ExtractFeedback(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrNotJSON
	}
	v := gjson.GetBytes(body, "feedback")
	if v.Type != gjson.String {
		return "", ErrMissingFeedback
	}
	return v.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, rec citizen.Record) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(rec.Form().Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	c.logger.DebugContext(ctx, "sending request", "method", method, "url", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	return resp, nil
}

func (c *Client) start(ctx context.Context, name, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{attribute.String("http.method", method)}, attrs...)
	return c.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// citizenAttr tags a span with the masked citizen ID.
func citizenAttr(rec citizen.Record) attribute.KeyValue {
	return attribute.String("citizen.id", privacy.MaskCitizenID(rec.CitizenID))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
