// Package upload provides the Cloudinary-backed implementation of the
// image upload service.
package upload

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"empdir/config"
	"empdir/internal/domain/service"
	"empdir/internal/errors"
)

// cloudinaryService is a concrete implementation of the UploadService
// interface using the Cloudinary SDK.
type cloudinaryService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryService is the constructor for cloudinaryService.
func NewCloudinaryService(cfg *config.Config) (service.UploadService, error) {
	if cfg.Cloudinary == nil {
		return nil, errors.New("cloudinary configuration must be provided")
	}

	client, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}

	return &cloudinaryService{client: client}, nil
}

// Upload stores a base64 data URI on the image host and returns its URL.
func (s *cloudinaryService) Upload(ctx context.Context, dataURI, folder string) (*service.UploadResult, error) {
	resp, err := s.client.Upload.Upload(ctx, dataURI, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary upload failed")
	}
	if resp.Error.Message != "" {
		return nil, errors.New(resp.Error.Message)
	}

	return &service.UploadResult{
		SecureURL: resp.SecureURL,
		PublicID:  resp.PublicID,
	}, nil
}
