package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aymerick/douceur/parser"
)

// DefaultServiceURL is the public markdown-to-pdf rendering service.
const DefaultServiceURL = "https://md-to-pdf.fly.dev"

var (
	// ErrMarkdownRequired is returned when a request carries no markdown.
	ErrMarkdownRequired = errors.New("markdown is required")
	// ErrInvalidCSS is reported by LintCSS when the custom stylesheet does
	// not parse.
	ErrInvalidCSS = errors.New("invalid css")
	// ErrRemoteFailure is returned when the service answers with a non-success status.
	ErrRemoteFailure = errors.New("pdf service failure")
)

// Request is the form payload accepted by the rendering service.
type Request struct {
	Markdown string
	Engine   string
	CSS      string
}

// Validate checks the request before it is sent. The stylesheet is passed
// through to the service untouched and is not validated here.
func (r Request) Validate() error {
	if r.Markdown == "" {
		return ErrMarkdownRequired
	}
	return nil
}

// LintCSS reports stylesheets the douceur parser rejects. The parser is
// lenient, so a nil result does not mean the service will accept the CSS.
func (r Request) LintCSS() error {
	if strings.TrimSpace(r.CSS) == "" {
		return nil
	}
	if _, err := parser.Parse(r.CSS); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCSS, err)
	}
	return nil
}

// Form encodes the request. Optional fields are sent only when set.
func (r Request) Form() url.Values {
	form := url.Values{}
	form.Set("markdown", r.Markdown)
	if r.CSS != "" {
		form.Set("css", r.CSS)
	}
	if r.Engine != "" {
		form.Set("engine", r.Engine)
	}
	return form
}

// Client talks to a markdown-to-pdf rendering service.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a PDF client. A zero timeout means requests run until
// the service answers or the context is cancelled.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	httpClient := http.DefaultClient
	if timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		BaseURL: baseURL,
		client:  httpClient,
	}
}

// Render posts the request and returns the PDF bytes.
func (c *Client) Render(ctx context.Context, r Request) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, strings.NewReader(r.Form().Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrRemoteFailure, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
