package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/model"
)

// ErrNotFound is returned by GetByID when no row matches.
var ErrNotFound = errors.New("listing not found")

type ListingRepository interface {
	// Create inserts the listing and assigns its ID.
	Create(ctx context.Context, listing *model.Listing) error

	// GetAll returns every listing.
	GetAll(ctx context.Context) ([]*model.Listing, error)

	// GetByID returns one listing or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Listing, error)

	// Delete removes a listing row. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteCreatedBefore removes every row with created_at strictly before
	// cutoff and returns the number of rows removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository { return &listingRepository{db: db} }

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	listing.ID = uuid.New().String()
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetAll(ctx context.Context) ([]*model.Listing, error) {
	var res []*model.Listing
	err := r.db.WithContext(ctx).Find(&res).Error
	return res, err
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Listing{}).Error
}

func (r *listingRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.Listing{})
	return res.RowsAffected, res.Error
}

// InitSchema creates the listings table.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Listing{}); err != nil {
		return fmt.Errorf("failed to migrate listings table: %w", err)
	}
	return nil
}
