package pubchem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the PUG REST endpoint.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "chemtools"
	maxResponseSize  = 64 << 20
)

// NotFoundError is returned when PubChem has no compound for an identifier.
type NotFoundError struct {
	Identifier string
	Message    string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("compound %q not found in PubChem: %s", e.Identifier, e.Message)
	}
	return fmt.Sprintf("compound %q not found in PubChem", e.Identifier)
}

// ResponseError is a failed request. Code and Message come from the PUG
// fault document when the server sent one.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("PubChem request failed with status %d", e.StatusCode)
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return msg
}

// fault is the error document PUG REST returns with failed requests.
type fault struct {
	Fault struct {
		Code    string   `json:"Code"`
		Message string   `json:"Message"`
		Details []string `json:"Details"`
	} `json:"Fault"`
}

// Client talks to PUG REST.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTPClient = h }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient = &http.Client{Timeout: d} }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// NewClient creates a client for the public PubChem service.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  defaultUserAgent,
		Logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request addresses one PUG REST compound operation:
// {base}/compound/{namespace}/{identifiers}/{domain}/{format}.
type Request struct {
	Namespace   Namespace
	Identifiers []string
	Domain      string // e.g. "property/MolecularWeight" or "record"; empty for the record
	Format      Format
	Params      url.Values
}

// URL builds the request URL relative to base.
func (r Request) URL(base string) (string, error) {
	if !r.Namespace.Valid() {
		return "", fmt.Errorf("unknown PubChem namespace %q", r.Namespace)
	}
	if !r.Format.Valid() {
		return "", fmt.Errorf("unknown PubChem format %q", r.Format)
	}
	if len(r.Identifiers) == 0 {
		return "", fmt.Errorf("no identifier given")
	}

	ids := make([]string, len(r.Identifiers))
	for i, id := range r.Identifiers {
		id = strings.TrimSpace(id)
		if id == "" {
			return "", fmt.Errorf("empty identifier")
		}
		ids[i] = url.PathEscape(id)
	}

	parts := []string{strings.TrimRight(base, "/"), "compound", string(r.Namespace), strings.Join(ids, ",")}
	if r.Domain != "" {
		parts = append(parts, r.Domain)
	}
	parts = append(parts, string(r.Format))
	u := strings.Join(parts, "/")
	if len(r.Params) > 0 {
		u += "?" + r.Params.Encode()
	}
	return u, nil
}

// Get performs the request and returns the response body.
func (c *Client) Get(ctx context.Context, r Request) ([]byte, error) {
	u, err := r.URL(c.BaseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", r.Format.ContentType())

	c.logger().Debug("pubchem request", "url", u)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var f fault
	_ = json.Unmarshal(body, &f)

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{
			Identifier: strings.Join(r.Identifiers, ","),
			Message:    f.Fault.Message,
		}
	}
	return nil, &ResponseError{
		StatusCode: resp.StatusCode,
		Code:       f.Fault.Code,
		Message:    f.Fault.Message,
		Details:    f.Fault.Details,
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
