package listing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/dbmysql"
)

// Repository is the listings table access layer
type Repository interface {
	Create(ctx context.Context, listing *dbmysql.Listing) error
	List(ctx context.Context, category string) ([]*dbmysql.Listing, error)
	ByID(ctx context.Context, id string) (*dbmysql.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *dbmysql.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

// List returns listings newest first, optionally narrowed to one
// category by exact match. An empty category means no filter.
func (r *listingRepository) List(ctx context.Context, category string) ([]*dbmysql.Listing, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var listings []*dbmysql.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ByID(ctx context.Context, id string) (*dbmysql.Listing, error) {
	var listing dbmysql.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
