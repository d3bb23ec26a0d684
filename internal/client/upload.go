package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload is the stored location of an uploaded image: the public URL plus
// the key needed to remove it later.
type Upload struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// ImageUploader is the narrow surface the profile edit flow needs for
// pictures. *Client implements it against the media endpoints.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (Upload, error)
	RemoveImage(ctx context.Context, key string) error
}

var _ ImageUploader = (*Client)(nil)

// UploadImage sends one image to the media endpoint. Requires a stored
// credential.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (Upload, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return Upload{}, err
	}
	if token == "" {
		return Upload{}, ErrUnauthenticated
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := w.Close(); err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads", &buf)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return Upload{}, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return Upload{}, fmt.Errorf("%w: %s", ErrUploadFailed, decodeMessage(data).Message)
	}

	var up Upload
	if err := json.Unmarshal(data, &up); err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return up, nil
}

// RemoveImage deletes a previously uploaded image by its key.
func (c *Client) RemoveImage(ctx context.Context, key string) error {
	status, data, err := c.do(ctx, http.MethodPost, "/uploads/remove", map[string]string{
		"key": key,
	}, credRequired)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthenticated
	}
	if status != http.StatusOK {
		return fmt.Errorf("remove image: %s", decodeMessage(data).Message)
	}
	return nil
}
