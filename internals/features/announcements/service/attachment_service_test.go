package service

import (
	"context"
	"errors"
	"mime/multipart"
	"reflect"
	"testing"

	ossHelper "gerejaku_backend/internals/helpers/oss"
)

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestUploadAllSkipsFailedFiles(t *testing.T) {
	blob := &ossHelper.MockBlobService{
		UploadRawToDirFn: func(_ context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
			if fh.Filename == "broken.pdf" {
				return "", "", errors.New("storage unavailable")
			}
			return "https://cdn.example.com/" + dir + "/" + fh.Filename, "application/pdf", nil
		},
	}

	files := []*multipart.FileHeader{
		fileHeader("flyer.pdf"),
		fileHeader("broken.pdf"),
		nil,
		fileHeader("schedule.pdf"),
	}
	got := UploadAll(context.Background(), blob, "announcements", files)

	want := []string{
		"https://cdn.example.com/announcements/flyer.pdf",
		"https://cdn.example.com/announcements/schedule.pdf",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UploadAll = %v, want %v", got, want)
	}
}

func TestUploadAllAllFailuresYieldsEmptySlice(t *testing.T) {
	blob := &ossHelper.MockBlobService{
		UploadRawToDirFn: func(context.Context, string, *multipart.FileHeader) (string, string, error) {
			return "", "", errors.New("storage unavailable")
		},
	}

	got := UploadAll(context.Background(), blob, "announcements", []*multipart.FileHeader{fileHeader("a.png")})
	if len(got) != 0 {
		t.Fatalf("expected no URLs, got %v", got)
	}
}

func TestDeleteAllSwallowsErrors(t *testing.T) {
	var calls []string
	blob := &ossHelper.MockBlobService{
		DeleteByPublicURLFn: func(_ context.Context, url string) error {
			calls = append(calls, url)
			return errors.New("gone already")
		},
	}

	DeleteAll(context.Background(), blob, []string{"u1", "u2"})
	if len(calls) != 2 {
		t.Fatalf("expected delete attempted for every URL, got %d calls", len(calls))
	}
}
