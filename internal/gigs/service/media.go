package service

import (
	"context"
	"fmt"
	"strings"

	"gigportal_backend/internal/adapters/storage"
	"gigportal_backend/internal/gigs/repository"
	"gigportal_backend/platform/apperr"
	"gigportal_backend/platform/i18n"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	// MaxImages is the most images a listing can hold.
	MaxImages = 8
	// QRSize is the edge length in pixels of share QR codes.
	QRSize = 256

	msgStorageDisabled = "image uploads are not configured"
	msgTooManyImages   = "a listing can have at most 8 images"
	msgForeignFileKey  = "file key does not belong to this listing"
)

// ImageUpload describes a file the client wants to upload or has uploaded.
type ImageUpload struct {
	FileName    string
	FileKey     string
	ContentType string
	SizeBytes   int64
}

func imageFolder(gigID uuid.UUID) string {
	return "gigs/" + gigID.String()
}

// PresignImageUpload returns a presigned PUT URL for a new listing image.
func (s *Service) PresignImageUpload(ctx context.Context, gigID, userID uuid.UUID, upload ImageUpload) (*storage.PresignedURL, error) {
	if s.storage == nil {
		return nil, apperr.Internal(msgStorageDisabled)
	}
	if _, err := s.ownedGig(ctx, gigID, userID); err != nil {
		return nil, err
	}
	if err := s.checkImageCount(ctx, gigID); err != nil {
		return nil, err
	}

	presigned, err := s.storage.GenerateUploadURL(ctx, s.bucket, imageFolder(gigID), upload.FileName, upload.ContentType, upload.SizeBytes)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}
	return presigned, nil
}

// RegisterImage records an uploaded image against the listing.
func (s *Service) RegisterImage(ctx context.Context, gigID, userID uuid.UUID, upload ImageUpload) (repository.Image, error) {
	if s.storage == nil {
		return repository.Image{}, apperr.Internal(msgStorageDisabled)
	}
	if _, err := s.ownedGig(ctx, gigID, userID); err != nil {
		return repository.Image{}, err
	}
	if !strings.HasPrefix(upload.FileKey, imageFolder(gigID)+"/") || strings.Contains(upload.FileKey, "..") {
		return repository.Image{}, apperr.Validation(msgForeignFileKey)
	}
	if err := s.storage.ValidateContentType(upload.ContentType); err != nil {
		return repository.Image{}, apperr.Validation(err.Error())
	}
	if err := s.storage.ValidateFileSize(upload.SizeBytes); err != nil {
		return repository.Image{}, apperr.Validation(err.Error())
	}
	if err := s.checkImageCount(ctx, gigID); err != nil {
		return repository.Image{}, err
	}

	img, err := s.repo.CreateImage(ctx, repository.CreateImageParams{
		GigID:       gigID,
		FileKey:     upload.FileKey,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
	})
	if err != nil {
		return repository.Image{}, err
	}
	s.log.Info("gig image registered", "gigId", gigID, "imageId", img.ID)
	return img, nil
}

// ImageURL returns a presigned download URL for an image, or "" when storage is off.
func (s *Service) ImageURL(ctx context.Context, img repository.Image) string {
	if s.storage == nil {
		return ""
	}
	presigned, err := s.storage.GenerateDownloadURL(ctx, s.bucket, img.FileKey)
	if err != nil {
		s.log.Warn("failed to presign image download", "imageId", img.ID, "error", err)
		return ""
	}
	return presigned.URL
}

func (s *Service) checkImageCount(ctx context.Context, gigID uuid.UUID) error {
	images, err := s.repo.ListImages(ctx, gigID)
	if err != nil {
		return err
	}
	if len(images) >= MaxImages {
		return apperr.Validation(msgTooManyImages)
	}
	return nil
}

// ShareURL is the public page of a listing for the locale.
func (s *Service) ShareURL(gigSlug, locale string) string {
	return fmt.Sprintf("%s/%s/gigs/%s", s.baseURL, i18n.Normalize(locale), gigSlug)
}

// ShareQR renders a PNG QR code that links to the listing's public page.
func (s *Service) ShareQR(ctx context.Context, gigSlug, locale string) ([]byte, error) {
	if _, err := s.repo.GetGigBySlug(ctx, gigSlug, i18n.Normalize(locale)); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.ShareURL(gigSlug, locale), qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("encode share qr: %w", err)
	}
	return png, nil
}
