package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService uploads profile images and returns their public URLs.
type StorageService interface {
	// UploadImage stores one image under the account's folder and returns
	// the public URL. Index keeps per-account upload paths distinct.
	UploadImage(ctx context.Context, accountID string, index int, contentType string, data []byte) (string, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld        *cloudinary.Cloudinary
	baseFolder string
}

// NewStorageService creates a CloudinaryStorageService rooted at baseFolder.
func NewStorageService(cld *cloudinary.Cloudinary, baseFolder string) StorageService {
	return &CloudinaryStorageService{
		cld:        cld,
		baseFolder: baseFolder,
	}
}
