package service

import (
	"context"
	"io"
)

// UploadResult is the (url, key) pair a form needs to reference an uploaded
// image and later remove it.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (UploadResult, error)
	Delete(ctx context.Context, key string) error
}
