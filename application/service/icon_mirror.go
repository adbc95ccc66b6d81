package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/nightowl-labs/homedash/domain/service"
)

// mirrorUserAgent is a realistic browser identifier. Some upstream image
// hosts reject requests with bot-looking user agents.
const mirrorUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// maxIconBytes bounds a single icon download.
const maxIconBytes = 10 << 20

var extByContentType = map[string]string{
	"image/png":    ".png",
	"image/jpeg":   ".jpg",
	"image/jpg":    ".jpg",
	"image/gif":    ".gif",
	"image/webp":   ".webp",
	"image/x-icon": ".ico",
	"image/bmp":    ".bmp",
	"image/tiff":   ".tiff",
}

// IconMirror copies an externally hosted image into owned object storage
// and returns a durable cache-busted URL. Every failure is soft: the caller
// gets an error to log and keeps whatever icon URL the row already has.
type IconMirror struct {
	httpClient *http.Client
	blobs      service.BlobStore
	logger     *slog.Logger
}

// NewIconMirror creates an IconMirror.
func NewIconMirror(blobs service.BlobStore, logger *slog.Logger) *IconMirror {
	return &IconMirror{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		blobs:      blobs,
		logger:     logger,
	}
}

// Mirror downloads sourceURL, validates it is image content, and uploads it
// under the deterministic key owner/internalId.ext in bucket. The returned
// URL carries a cache-busting parameter derived from lastEdited so browsers
// revalidate after a re-upload.
func (m *IconMirror) Mirror(ctx context.Context, bucket, ownerID string, internalID int64, sourceURL string, lastEdited time.Time) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("build icon request: %w", err)
	}
	req.Header.Set("User-Agent", mirrorUserAgent)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download icon: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download icon: status %d", resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	// An XML or plain-text body from the upstream blob host is an error
	// document (access denied, not found) served with a 200 status.
	if strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain") || strings.Contains(contentType, "text/html") {
		return "", fmt.Errorf("icon url returned %s instead of image content", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return "", fmt.Errorf("read icon body: %w", err)
	}

	ext := inferExtension(sourceURL, contentType)
	key := fmt.Sprintf("%s/%d%s", ownerID, internalID, ext)

	if err := m.blobs.Upload(ctx, bucket, key, contentType, data); err != nil {
		return "", fmt.Errorf("upload icon: %w", err)
	}

	if lastEdited.IsZero() {
		lastEdited = time.Now()
	}
	return fmt.Sprintf("%s?t=%d", m.blobs.PublicURL(bucket, key), lastEdited.Unix()), nil
}

// inferExtension picks a file extension from the URL path, then from the
// declared content type, defaulting to .png.
func inferExtension(sourceURL, contentType string) string {
	if u, err := url.Parse(sourceURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" && len(ext) <= 6 {
			return ext
		}
	}

	base, _, _ := strings.Cut(contentType, ";")
	if ext, ok := extByContentType[strings.TrimSpace(base)]; ok {
		return ext
	}
	return ".png"
}
