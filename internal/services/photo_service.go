package services

import (
	"context"
	"strings"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository"
)

type PhotoService struct {
	photos repository.PhotoRepository
}

func NewPhotoService(photos repository.PhotoRepository) *PhotoService {
	return &PhotoService{photos: photos}
}

// List returns every photo in insertion order, without owner expansion.
func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	return s.photos.List(ctx)
}

// GetByID returns one photo with its owner embedded.
func (s *PhotoService) GetByID(ctx context.Context, id int) (*models.PhotoDetail, error) {
	return s.photos.GetWithOwner(ctx, id)
}

// Create validates the input and stores a photo owned by userID. The caption
// is always derived from the title and image URL; a caller-supplied caption
// is discarded. Ownership comes from the authenticated caller, never the body.
func (s *PhotoService) Create(ctx context.Context, userID int, req models.CreatePhotoRequest) (*models.Photo, error) {
	if err := validatePhoto(req); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		Title:    req.Title,
		Caption:  strings.ToUpper(req.Title) + " " + req.ImageURL,
		ImageURL: req.ImageURL,
		UserID:   userID,
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// validatePhoto collects every violated field rule before failing.
func validatePhoto(req models.CreatePhotoRequest) error {
	var msgs []string
	if req.Title == "" {
		msgs = append(msgs, "Title cannot be omitted")
	}
	if req.ImageURL == "" {
		msgs = append(msgs, "Image URL cannot be omitted")
	}
	if len(msgs) > 0 {
		return &models.ValidationError{Messages: msgs}
	}
	return nil
}
