package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"resty.dev/v3"
)

// SupabaseStore talks to a Supabase-compatible storage REST API:
// objects are uploaded to /storage/v1/object/<bucket>/<path> and served
// publicly from /storage/v1/object/public/<bucket>/<path>.
type SupabaseStore struct {
	client   *resty.Client
	baseURL  string
	bucket   string
	sentinel string
}

// NewSupabaseStore builds a store for the given project URL and bucket.
// The service key authorizes uploads and deletions; public URL resolution
// needs no credentials.
func NewSupabaseStore(baseURL, serviceKey, bucket string) *SupabaseStore {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetAuthToken(serviceKey)

	sentinel := ""
	if u, err := url.Parse(baseURL); err == nil {
		sentinel = u.Host
	}

	return &SupabaseStore{
		client:   client,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		bucket:   bucket,
		sentinel: sentinel,
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post("/storage/v1/object/" + s.bucket + "/" + path)
	if err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage upload failed: %d %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *SupabaseStore) PublicURL(path string) string {
	return s.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + path
}

// Remove issues one batch delete for all paths. Callers treat failures as
// non-fatal; orphaned objects are an accepted outcome.
func (s *SupabaseStore) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string][]string{"prefixes": paths}).
		Delete("/storage/v1/object/" + s.bucket)
	if err != nil {
		return fmt.Errorf("storage remove failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage remove failed: %d %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *SupabaseStore) ObjectPath(rawURL string) (string, bool) {
	return objectPath(rawURL, s.sentinel, s.bucket)
}
