package mediastore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads files to Cloudinary. The client is safe for
// concurrent use and is created once at startup.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a store from a cloudinary:// URL
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

// Upload stores the file under folder and returns its secure URL
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}
	return resp.SecureURL, nil
}
