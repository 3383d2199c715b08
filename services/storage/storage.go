package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Upload folders.
const (
	DoctorImagesFolder = "medibook/doctors"
	UserImagesFolder   = "medibook/users"
)

// ImageStore uploads profile images and hands back a public URL. Only the URL is
// persisted.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadedImage is what the profile documents keep from an upload.
type UploadedImage struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// CloudinaryStore implements ImageStore on Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore wraps a configured client (see utils.Cloudinary).
func NewCloudinaryStore(cld *cloudinary.Cloudinary) *CloudinaryStore {
	return &CloudinaryStore{cld: cld}
}

func (s *CloudinaryStore) UploadImage(ctx context.Context, file io.Reader, folder string) (*UploadedImage, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("CloudinaryStore: failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("CloudinaryStore: upload rejected: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("CloudinaryStore: no URL returned")
	}
	return &UploadedImage{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

func (s *CloudinaryStore) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStore: failed to delete image: %w", err)
	}
	return nil
}

// UnavailableStore is wired when Cloudinary credentials are missing; uploads fail
// and everything else keeps working.
type UnavailableStore struct{}

func (UnavailableStore) UploadImage(ctx context.Context, file io.Reader, folder string) (*UploadedImage, error) {
	return nil, fmt.Errorf("image uploads are not configured")
}

func (UnavailableStore) DeleteImage(ctx context.Context, publicID string) error {
	return fmt.Errorf("image uploads are not configured")
}
