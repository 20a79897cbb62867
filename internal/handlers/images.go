package handlers

import (
	"context"
	"fmt"
	"mime/multipart"

	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/storage"
)

// uploadImages pushes each attached file to object storage and returns the
// resolved public URLs in upload order (order determines the final image
// array, so files go up one at a time, never in parallel).
//
// The first failing upload aborts the whole submit; files uploaded before it
// stay in storage. Orphans are an accepted cost of keeping this path simple.
func (h *Handlers) uploadImages(ctx context.Context, prefix string, files []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, fh := range files {
		path := storage.RandomObjectPath(prefix, fh.Filename)

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %q: %w", fh.Filename, err)
		}

		err = h.Store.Upload(ctx, path, f, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			return nil, err
		}

		urls = append(urls, h.Store.PublicURL(path))
	}
	return urls, nil
}

// removeStoredImages strips the object-store URLs down to bucket-relative
// paths and issues one batch delete. External URLs are skipped; a storage
// failure is logged and swallowed because the caller still has to delete the
// database row (best-effort, non-transactional).
func (h *Handlers) removeStoredImages(ctx context.Context, urls []string) {
	var paths []string
	for _, u := range urls {
		if path, ok := h.Store.ObjectPath(u); ok {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return
	}

	if err := h.Store.Remove(ctx, paths); err != nil {
		log.WithError(err).Warn("Failed to delete images from storage")
	}
}
