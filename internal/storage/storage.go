package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Prefixes for the two logical object groups inside the images bucket.
const (
	CategoryPrefix = "categories"
	ProductPrefix  = "products"
)

// Store is the object storage contract: durable binary uploads resolving to
// public URLs, plus best-effort batch removal.
type Store interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string) error
	PublicURL(path string) string
	Remove(ctx context.Context, paths []string) error
	// ObjectPath reports the storage-relative path of a public URL served by
	// this store, or false for external URLs that must be left alone.
	ObjectPath(url string) (string, bool)
}

// RandomObjectPath builds a randomized object path under the given prefix,
// preserving the original filename's extension.
func RandomObjectPath(prefix, filename string) string {
	ext := filepath.Ext(filename)
	return prefix + "/" + uuid.New().String() + ext
}

// objectPath extracts the bucket-relative path from a public URL by stripping
// everything up to and including the "/<bucket>/" segment. The sentinel is a
// substring of the storage host; URLs pointing anywhere else are external.
func objectPath(url, sentinel, bucket string) (string, bool) {
	if sentinel == "" || !strings.Contains(url, sentinel) {
		return "", false
	}
	_, after, found := strings.Cut(url, "/"+bucket+"/")
	if !found || after == "" {
		return "", false
	}
	return after, true
}
