package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/parsers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var contentDispositionRe = regexp.MustCompile(`(?i)filename[^;=\n]*=([^;\n]*)`)

// Client is a thin facade over the workflow-automation webhook service
// that owns all persistence and file conversion. Every call is a single
// stateless round trip: no retries, no backoff, no client-side timeout.
// Failures propagate immediately to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// List fetches all records. The response body may be a bare array or an
// object carrying a "data" array; non-object elements are discarded and
// every surviving row is normalized.
func (c *Client) List(ctx context.Context) ([]models.SalesRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("get-list", nil), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	raw := decodeBodySafely(resp.Body)
	rows := extractRows(raw)

	records := make([]models.SalesRecord, 0, len(rows))
	for _, item := range rows {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		records = append(records, parsers.NormalizeSalesRow(obj, len(records)))
	}
	return records, nil
}

// Create adds a new record and returns the service's echo, normalized.
func (c *Client) Create(ctx context.Context, payload models.SalesPayload) (models.SalesRecord, error) {
	return c.submitForm(ctx, http.MethodPost, "add-data", nil, payload, ErrCreateFailed)
}

// Update edits the record identified by id; the form body may be partial.
func (c *Client) Update(ctx context.Context, id string, payload models.SalesPayload) (models.SalesRecord, error) {
	return c.submitForm(ctx, http.MethodPatch, "edit-data", url.Values{"id": {id}}, payload, ErrUpdateFailed)
}

func (c *Client) submitForm(ctx context.Context, method, path string, query url.Values, payload models.SalesPayload, actionErr error) (models.SalesRecord, error) {
	body := EncodePayload(payload).Encode()
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), strings.NewReader(body))
	if err != nil {
		return models.SalesRecord{}, fmt.Errorf("%w: %v", actionErr, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SalesRecord{}, fmt.Errorf("%w: %v", actionErr, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return models.SalesRecord{}, fmt.Errorf("%w: status %d", actionErr, resp.StatusCode)
	}

	obj, ok := decodeBodySafely(resp.Body).(map[string]interface{})
	if !ok {
		return models.SalesRecord{}, fmt.Errorf("%w: %v", actionErr, ErrInvalidResponse)
	}
	return parsers.NormalizeSalesRow(obj, 0), nil
}

// Delete removes the record identified by id. Only the status code is
// checked; the body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.endpoint("delete-row", url.Values{"id": {id}}), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return fmt.Errorf("%w: status %d", ErrDeleteFailed, resp.StatusCode)
	}
	return nil
}

// UploadFile sends a spreadsheet for bulk import as multipart form data.
// A response whose status field is present and not "success" is a failure
// carrying the service's message.
func (c *Client) UploadFile(ctx context.Context, filename string, file io.Reader) (models.UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := writer.Close(); err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("send-file", nil), &buf)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return models.UploadResult{}, fmt.Errorf("%w: status %d", ErrUploadFailed, resp.StatusCode)
	}

	obj, ok := decodeBodySafely(resp.Body).(map[string]interface{})
	if !ok {
		return models.UploadResult{}, fmt.Errorf("%w: %v", ErrUploadFailed, ErrInvalidResponse)
	}

	result := models.UploadResult{
		Status:  parsers.ParseString(obj["status"], ""),
		Message: parsers.ParseString(obj["message"], ""),
	}
	if result.Status != "" && result.Status != "success" {
		message := result.Message
		if message == "" {
			message = ErrUploadFailed.Error()
		}
		return result, fmt.Errorf("%w: %s", ErrUploadFailed, message)
	}
	return result, nil
}

// DownloadFile fetches a generated export in the given format. The
// filename comes from the Content-Disposition header, falling back to
// data-penjualan.{format} when absent or unparseable.
func (c *Client) DownloadFile(ctx context.Context, format string) (models.ExportFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("get-file", url.Values{"format": {format}}), nil)
	if err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return models.ExportFile{}, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ExportFile{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return models.ExportFile{
		Content:     content,
		Filename:    filenameFromContentDisposition(resp.Header.Get("Content-Disposition"), format),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func is2xx(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// decodeBodySafely reads and unmarshals a JSON body, returning nil for
// empty or unparseable content instead of an error. The webhook service
// occasionally answers 200 with an empty body.
func decodeBodySafely(body io.Reader) interface{} {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		if logger.L != nil {
			logger.L.Warn("Could not parse JSON response from webhook service", "error", err)
		}
		return nil
	}
	return raw
}

func extractRows(raw interface{}) []interface{} {
	switch v := raw.(type) {
	case []interface{}:
		return v
	case map[string]interface{}:
		if rows, ok := v["data"].([]interface{}); ok {
			return rows
		}
	}
	return nil
}

func filenameFromContentDisposition(header, format string) string {
	fallback := "data-penjualan." + format
	if header == "" {
		return fallback
	}
	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := strings.TrimSpace(params["filename"]); name != "" {
			return name
		}
	}
	if m := contentDispositionRe.FindStringSubmatch(header); m != nil {
		name := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), `"'`))
		if name != "" {
			return name
		}
	}
	return fallback
}
