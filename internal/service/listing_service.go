package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/dedup"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/model"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/repository"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/storage"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidDate   = errors.New("invalid created_at, expected YYYY-MM-DD")
	// ErrStore marks row read/write/delete failures; ErrImage marks image
	// decode/upload/delete failures. Kept separate so callers can report
	// them distinctly.
	ErrStore = errors.New("store error")
	ErrImage = errors.New("image error")
	// ErrNotFound mirrors the repository's for callers of Get.
	ErrNotFound = repository.ErrNotFound
)

// DuplicateError aborts a creation and carries every matching listing in full.
type DuplicateError struct {
	Matches []*model.Listing
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%d potential duplicate(s) found", len(e.Matches))
}

const dataURLPrefix = "data:image/png;base64,"

// CreateInput is a creation request before validation. CreatedAt is the
// caller-supplied calendar date, never server time.
type CreateInput struct {
	Type         string
	CreatedAt    string // YYYY-MM-DD
	Title        string
	Description  string
	Room         string
	Category     string
	ContactEmail *string
	B64Image     string // optional data URL
	Force        bool   // bypass duplicate detection
}

type ListingService interface {
	// Create validates input, scans all existing listings for duplicates
	// (unless Force), persists the row and uploads the image if present.
	// A persisted row is never rolled back on image failure.
	Create(ctx context.Context, in CreateInput) (*model.Listing, error)
	List(ctx context.Context) ([]*model.ListingWithImage, error)
	Get(ctx context.Context, id string) (*model.ListingWithImage, error)
	// Delete removes the row, then the image. A missing image is not an
	// error; a failing image delete is reported but the row stays deleted.
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	repo       repository.ListingRepository
	images     storage.ImageStore
	classifier *dedup.Classifier
}

func NewListingService(repo repository.ListingRepository, images storage.ImageStore, classifier *dedup.Classifier) ListingService {
	return &listingService{repo: repo, images: images, classifier: classifier}
}

// Create is not serialized against concurrent creations: two requests can
// both pass the duplicate scan and both insert.
func (s *listingService) Create(ctx context.Context, in CreateInput) (*model.Listing, error) {
	if in.Type == "" || in.CreatedAt == "" || in.Title == "" || in.Description == "" || in.Room == "" || in.Category == "" {
		return nil, ErrMissingFields
	}
	createdAt, err := time.Parse("2006-01-02", in.CreatedAt)
	if err != nil {
		return nil, ErrInvalidDate
	}

	listing := &model.Listing{
		Type:         in.Type,
		CreatedAt:    createdAt,
		Title:        in.Title,
		Description:  in.Description,
		Room:         in.Room,
		Category:     in.Category,
		ContactEmail: in.ContactEmail,
	}

	if !in.Force {
		existing, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		if matches := s.classifier.FindDuplicates(listing, existing); len(matches) > 0 {
			return nil, &DuplicateError{Matches: matches}
		}
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if in.B64Image != "" {
		png, err := decodeDataURL(in.B64Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImage, err)
		}
		if err := s.images.Upload(ctx, listing.ID, png); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImage, err)
		}
	}
	return listing, nil
}

func (s *listingService) List(ctx context.Context) ([]*model.ListingWithImage, error) {
	listings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	res := make([]*model.ListingWithImage, len(listings))
	for i, l := range listings {
		res[i] = s.attachImage(ctx, l)
	}
	return res, nil
}

func (s *listingService) Get(ctx context.Context, id string) (*model.ListingWithImage, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return s.attachImage(ctx, listing), nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrImage, err)
	}
	return nil
}

// attachImage downloads the listing's PNG and attaches it as a data URL.
// Every download failure, missing key included, yields a null image field.
func (s *listingService) attachImage(ctx context.Context, listing *model.Listing) *model.ListingWithImage {
	res := &model.ListingWithImage{Listing: *listing}
	png, err := s.images.Download(ctx, listing.ID)
	if err != nil {
		return res
	}
	dataURL := dataURLPrefix + base64.StdEncoding.EncodeToString(png)
	res.B64Image = &dataURL
	return res
}

func decodeDataURL(s string) ([]byte, error) {
	_, payload, found := strings.Cut(s, "base64,")
	if !found {
		return nil, errors.New("not a base64 data URL")
	}
	return base64.StdEncoding.DecodeString(payload)
}
