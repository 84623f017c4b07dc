package service

import (
	"context"
	"log"
	"mime/multipart"

	ossHelper "gerejaku_backend/internals/helpers/oss"
)

// UploadAll pushes every attachment to object storage and returns the public
// URLs of the ones that made it. A failed file is logged and skipped: the
// announcement still goes out with whatever uploaded cleanly.
func UploadAll(ctx context.Context, blob ossHelper.BlobService, dir string, files []*multipart.FileHeader) []string {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh == nil {
			continue
		}
		url, _, err := blob.UploadRawToDir(ctx, dir, fh)
		if err != nil {
			log.Printf("[WARN] attachment upload failed (%s): %v", fh.Filename, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// DeleteAll removes stored attachments best-effort. Failures are logged, not
// surfaced: the row is already gone and a stray object is harmless.
func DeleteAll(ctx context.Context, blob ossHelper.BlobService, urls []string) {
	for _, u := range urls {
		if err := blob.DeleteByPublicURL(ctx, u); err != nil {
			log.Printf("[WARN] attachment delete failed (%s): %v", u, err)
		}
	}
}
