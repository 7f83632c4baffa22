// Package images talks to the external image-hosting service.
// The catalog only ever asks it to delete images that product
// mutations have orphaned; uploads happen client-side against the
// host directly.
package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Store deletes hosted images by their public URL.
type Store interface {
	Delete(ctx context.Context, imageURL string) error
}

// HTTPStore is a Store backed by the image host's REST API.
type HTTPStore struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPStore creates an HTTPStore. baseURL is the destroy endpoint of
// the image host; apiKey authenticates the request.
func NewHTTPStore(baseURL, apiKey string) *HTTPStore {
	return &HTTPStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// Delete removes the hosted image identified by imageURL.
func (s *HTTPStore) Delete(ctx context.Context, imageURL string) error {
	publicID := PublicIDFromURL(imageURL)
	if publicID == "" {
		return fmt.Errorf("cannot derive public id from %q", imageURL)
	}

	endpoint := s.baseURL + "/destroy?public_id=" + url.QueryEscape(publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image host returned status %d", resp.StatusCode)
	}
	return nil
}

// PublicIDFromURL extracts the host-side identifier from a hosted image
// URL: the last path segment with its file extension stripped. Returns
// an empty string when the URL has no usable path.
func PublicIDFromURL(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return ""
	}

	if dot := strings.LastIndex(last, "."); dot > 0 {
		last = last[:dot]
	}
	return last
}

// NoopStore is a Store that does nothing. Used when no image host is
// configured.
type NoopStore struct{}

// Delete implements Store.
func (NoopStore) Delete(ctx context.Context, imageURL string) error {
	return nil
}
