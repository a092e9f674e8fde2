package service

import "context"

// UploadResult is what the image host returns for a stored file.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// UploadService abstracts the third-party image host: store bytes, get back
// a URL. The payload is a base64 data URI as accepted by the host.
type UploadService interface {
	Upload(ctx context.Context, dataURI, folder string) (*UploadResult, error)
}
