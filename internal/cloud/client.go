package cloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yukifiles/go/internal/types"
)

const defaultUserAgent = "yukifiles-go"

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for API calls
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithUploadClient overrides the HTTP client used for pre-signed uploads
func WithUploadClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.uploadClient = h
		}
	}
}

// Client talks to the YukiFiles REST API using a bearer token.
// A Client holds no mutable state after construction.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	headers      http.Header
}

// New creates a client from cfg. An empty API key is a ConfigurationError.
func New(cfg types.Config, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Field: "api key", Reason: "is required"}
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{Field: "base url", Reason: fmt.Sprintf("%q is not an absolute URL", baseURL)}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+apiKey)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", userAgent)

	c := &Client{
		baseURL:      strings.TrimRight(parsed.String(), "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		uploadClient: &http.Client{Timeout: cfg.Timeout},
		headers:      headers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends an authenticated API request. Any non-2xx response is turned
// into a RemoteError and the body is closed.
func (c *Client) do(method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := encodeJSON(body)
		if err != nil {
			return nil, fmt.Errorf("cloud: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.endpoint(path, query)
	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("cloud: build request: %w", err)
	}
	req.Header = c.headers.Clone()

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("API request failed")
		return nil, &NetworkError{Method: method, URL: endpoint, Err: err}
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("API request")

	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// doJSON sends a request and decodes the "data" field of the response into out
func (c *Client) doJSON(method, path string, query url.Values, body, out any) error {
	resp, err := c.do(method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: resp.Request.URL.String(), Err: err}
	}
	if err := decodeData(payload, out); err != nil {
		return fmt.Errorf("cloud: decode %s %s response: %w", method, path, err)
	}
	return nil
}

// checkResponse closes resp.Body and returns a RemoteError on non-2xx status
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	remote := &RemoteError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Message:    errorMessage(body),
	}
	if resp.Request != nil {
		remote.Method = resp.Request.Method
		remote.URL = resp.Request.URL.String()
	}
	return remote
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// decodeData unwraps the {"data": ...} envelope used by every JSON response
func decodeData(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty response body")
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return fmt.Errorf("missing data field")
	}
	return json.Unmarshal(env.Data, out)
}

// errorMessage extracts a human readable message from an error body
func errorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Error) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(payload.Error, &asString); err == nil {
		return asString
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}

func encodeJSON(payload any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func filePath(fileID string, suffix string) (string, error) {
	if strings.TrimSpace(fileID) == "" {
		return "", ErrEmptyFileID
	}
	return "/files/" + url.PathEscape(fileID) + suffix, nil
}
