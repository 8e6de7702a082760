package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ObjectStorage is the subset of the S3 client used for images
type ObjectStorage interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader) error
	DeleteObject(ctx context.Context, key string) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// ImageService stores restaurant images in object storage.
// A nil storage disables uploads.
type ImageService struct {
	storage ObjectStorage
}

func NewImageService(storage ObjectStorage) *ImageService {
	return &ImageService{storage: storage}
}

var _ IImageService = (*ImageService)(nil)

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageKey builds the object key restaurants/<slug>-<uuid><ext>
func ImageKey(restaurantName, filename string) string {
	s := slug.Make(restaurantName)
	if s == "" {
		s = "restaurant"
	}
	return fmt.Sprintf("restaurants/%s-%s%s", s, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
}

// Upload stores fh under a fresh key and returns the key. It returns ""
// without error when storage is disabled or no file was sent.
func (s *ImageService) Upload(ctx context.Context, restaurantName string, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", nil
	}
	if s.storage == nil {
		log.Printf("Image storage not configured, dropping upload %s", fh.Filename)
		return "", nil
	}

	contentType, ok := allowedImageTypes[strings.ToLower(filepath.Ext(fh.Filename))]
	if !ok {
		return "", ErrUnsupportedImage
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	key := ImageKey(restaurantName, fh.Filename)
	if err := s.storage.PutObject(ctx, key, contentType, f); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return key, nil
}

// Delete removes the object; failures are only logged
func (s *ImageService) Delete(ctx context.Context, key string) {
	if s.storage == nil || key == "" {
		return
	}
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		log.Printf("Failed to delete image %s: %v", key, err)
	}
}

// URL returns a presigned download URL for key, or "" when unavailable
func (s *ImageService) URL(ctx context.Context, key string) string {
	if s.storage == nil || key == "" {
		return ""
	}
	u, err := s.storage.GeneratePresignedURL(ctx, key, time.Hour)
	if err != nil {
		log.Printf("Failed to presign image %s: %v", key, err)
		return ""
	}
	return u
}
