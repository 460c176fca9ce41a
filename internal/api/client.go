package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/file-transfer/internal/logging"
)

// Endpoints relative to the base URL
const (
	EndpointUpload   = "/upload"
	EndpointDownload = "/download/"

	// FileFieldName is the multipart field carrying the file
	FileFieldName = "file"

	// maxErrorBody caps how much of an error response is decoded
	maxErrorBody = 1 << 20
)

// Client is the HTTP client for the transfer API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a client for baseURL, e.g. http://localhost:8080/api/v1.
// No timeout is set; callers bound requests with their context.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

type messageResponse struct {
	Message json.RawMessage `json:"message"`
}

// text returns the "message" field as display text. Strings are unquoted,
// other JSON values keep their literal form (413, true, {"a":1}). A missing
// or null message reports false.
func (r messageResponse) text() (string, bool) {
	raw := bytes.TrimSpace(r.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, true
	}

	compact := &bytes.Buffer{}
	if err := json.Compact(compact, raw); err != nil {
		return string(raw), true
	}
	return compact.String(), true
}

// Upload sends content as a multipart form under the "file" field and
// returns the "message" of the JSON response
func (c *Client) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(FileFieldName, name)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadContent, name, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := c.baseURL + EndpointUpload
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.WithFields(logrus.Fields{"url": url, "file": name, "bytes": body.Len()}).Debug("Uploading file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("Upload request failed")
		return "", fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", c.statusError(resp)
	}

	// A 2xx body that is not JSON leaves the message empty
	var payload messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.WithError(err).Debug("Upload response is not JSON")
		return "", nil
	}
	message, _ := payload.text()
	return message, nil
}

// Download fetches the named file. The name is appended to the path as-is.
func (c *Client) Download(ctx context.Context, name string) ([]byte, error) {
	url := c.baseURL + EndpointDownload + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	c.log.WithFields(logrus.Fields{"url": url, "file": name}).Debug("Downloading file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("Download request failed")
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, c.statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		// The connection dropped mid-body; treat it like a missing response
		return nil, fmt.Errorf("%w: reading body: %v", ErrNoResponse, err)
	}

	c.log.WithFields(logrus.Fields{"file": name, "bytes": len(data)}).Debug("Download finished")
	return data, nil
}

// statusError decodes the JSON error body best-effort
func (c *Client) statusError(resp *http.Response) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode}

	var payload messageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&payload); err == nil {
		se.Message, se.HasMessage = payload.text()
	}

	c.log.WithFields(logrus.Fields{"status": se.StatusCode, "message": se.Message}).Warn("Server returned an error")
	return se
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
