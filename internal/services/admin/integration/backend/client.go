package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/cashdesk/internal/platform/otel"
	"github.com/louisbranch/cashdesk/internal/platform/timeouts"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxResponseBytes bounds how much of a backend response is read.
const maxResponseBytes = 8 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the backend API root, e.g. http://localhost:3000/api.
	BaseURL string
	// AdminID identifies the operator on bank detail calls.
	AdminID string
	// HTTPClient defaults to a client without its own timeout; every call
	// is bounded by Timeout instead.
	HTTPClient *http.Client
	// Timeout defaults to timeouts.BackendRequest.
	Timeout time.Duration
}

// Client calls the platform backend REST API.
type Client struct {
	baseURL *url.URL
	adminID string
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url %q must be http or https", raw)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.BackendRequest
	}
	return &Client{
		baseURL: base,
		adminID: strings.TrimSpace(cfg.AdminID),
		http:    httpClient,
		timeout: timeout,
		tracer:  otel.Tracer("github.com/louisbranch/cashdesk/internal/services/admin/integration/backend"),
	}, nil
}

// request describes one backend call. Route is the path template used for
// span names; Path is the concrete path below the base URL.
type request struct {
	Method string
	Route  string
	Path   []string
	Query  url.Values
	Body   []byte
}

func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "backend "+req.Method+" "+req.Route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("http.route", req.Route),
		),
	)
	defer span.End()

	body, err := c.send(ctx, req, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, req request, span trace.Span) ([]byte, error) {
	target := c.baseURL.JoinPath(req.Path...)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var reader io.Reader
	if req.Body != nil {
		reader = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.Route, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Route, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.Route, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp.StatusCode, body)
	}
	return body, nil
}

// segment validates one path identifier.
func segment(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if strings.ContainsAny(value, "/?#") {
		return "", fmt.Errorf("%w: %s %q is malformed", ErrInvalidInput, name, value)
	}
	return value, nil
}

// jsonBody builds request payloads field by field and keeps the first error.
type jsonBody struct {
	data []byte
	err  error
}

func newBody() *jsonBody {
	return &jsonBody{data: []byte("{}")}
}

func (b *jsonBody) set(path string, value any) *jsonBody {
	if b.err == nil {
		b.data, b.err = sjson.SetBytes(b.data, path, value)
	}
	return b
}

// setRaw stores value as raw JSON, used for decimal amounts.
func (b *jsonBody) setRaw(path string, value string) *jsonBody {
	if b.err == nil {
		b.data, b.err = sjson.SetRawBytes(b.data, path, []byte(value))
	}
	return b
}

func (b *jsonBody) bytes() ([]byte, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build request body: %w", b.err)
	}
	return b.data, nil
}
