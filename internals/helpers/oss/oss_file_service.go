package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BlobService is the upload/delete facade controllers depend on, so tests can
// swap in the mock below.
type BlobService interface {
	UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, contentType string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Aliyun OSS implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object storage failed")
	}
	return b.svc.PublicURL(key), ct, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty URL")
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Delete object failed")
	}
	return nil
}

// IsMultipart reports whether the request carries multipart/form-data.
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockBlobService struct {
	UploadRawToDirFn    func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadRawToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if m.UploadRawToDirFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadRawToDirFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
