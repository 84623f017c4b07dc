package helper

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// OSSService wraps one bucket. Attachments are uploaded raw under a
// randomized object name; the bucket is assumed public-read so PublicURL
// is a plain concatenation.
type OSSService struct {
	Bucket     *oss.Bucket
	BucketName string
	PublicBase string
	Prefix     string
}

// NewOSSServiceFromEnv fails fast when the storage config is incomplete, so
// controllers can refuse the request instead of issuing doomed network calls.
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("object storage is not configured (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	publicBase := getEnv("OSS_PUBLIC_BASE_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}

	return &OSSService{
		Bucket:     bucket,
		BucketName: bucketName,
		PublicBase: strings.TrimRight(publicBase, "/"),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadFromFormFileToDir stores the multipart file under
// <prefix>/<dir>/<random>.<ext> and returns the object key + content type.
func (s *OSSService) UploadFromFormFileToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", errors.New("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := path.Join(s.Prefix, strings.Trim(dir, "/"), uuid.NewString()+ext)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := []oss.Option{oss.ContentType(contentType)}
	if err := s.Bucket.PutObject(key, src, opts...); err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return key, contentType, nil
}

func (s *OSSService) PublicURL(key string) string {
	return s.PublicBase + "/" + strings.TrimLeft(key, "/")
}

// KeyFromPublicURL is the inverse of PublicURL; returns "" for foreign URLs.
func (s *OSSService) KeyFromPublicURL(publicURL string) string {
	base := s.PublicBase + "/"
	if !strings.HasPrefix(publicURL, base) {
		return ""
	}
	return strings.TrimPrefix(publicURL, base)
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key := s.KeyFromPublicURL(publicURL)
	if key == "" {
		return errors.New("url does not belong to this bucket")
	}
	return s.Bucket.DeleteObject(key)
}
