package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMirror rehosts provider imagery in Cloudinary. Provider URLs
// embed API keys and expire; the mirrored URL is safe to hand to clients.
type CloudinaryMirror struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryMirror(cloudName, apiKey, apiSecret string) (*CloudinaryMirror, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("media: cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("media: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryMirror{cld: cld}, nil
}

// MirrorImage uploads the remote image into the given folder and returns its
// hosted URL.
func (m *CloudinaryMirror) MirrorImage(ctx context.Context, sourceURL, folder string) (string, error) {
	result, err := m.cld.Upload.Upload(ctx, sourceURL, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("media: failed to mirror image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("media: no URL returned for mirrored image")
	}
	return result.SecureURL, nil
}
