package storage

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage uploads one image as a base64 data URI into the account's folder
// and returns the secure delivery URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, accountID string, index int, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("CloudinaryStorageService: empty image data")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	uploadParams := uploader.UploadParams{
		Folder:   fmt.Sprintf("%s/%s", s.baseFolder, accountID),
		PublicID: fmt.Sprintf("photo_%d", index),
	}
	result, err := s.cld.Upload.Upload(ctx, dataURI, uploadParams)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned for upload")
	}
	return result.SecureURL, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete image: %w", err)
	}
	return nil
}
