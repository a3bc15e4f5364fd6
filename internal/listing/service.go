package listing

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/common"
	"github.com/Kukaas/marketplace/internal/dbmysql"
)

var (
	// ErrMissingFields matches the composer validation message shown to users
	ErrMissingFields = errors.New("Please fill in all required fields.")
	// ErrUnknownCategory covers both bad browse routes and bad form values
	ErrUnknownCategory = errors.New("Unknown category")
	// ErrNotFound is returned for a detail fetch of a nonexistent id
	ErrNotFound = errors.New("Listing not found")
)

// DefaultLocation is prefilled by the composer when the user leaves
// location empty.
const DefaultLocation = "Palo Alto, CA"

// CreateListingInput carries the composer form fields. Price arrives as
// form text and is parsed here; Image is an optional base64 data URI.
type CreateListingInput struct {
	Title       string
	Category    string
	Price       string
	Location    string
	SellerEmail string
	Description string
	Image       string
}

type Service interface {
	CreateListing(ctx context.Context, input CreateListingInput) (*dbmysql.Listing, error)
	Browse(ctx context.Context, category, search string) ([]*dbmysql.Listing, error)
	GetListing(ctx context.Context, id string) (*dbmysql.Listing, error)
}

type listingService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &listingService{repo: repo}
}

func (s *listingService) CreateListing(ctx context.Context, input CreateListingInput) (*dbmysql.Listing, error) {
	// Presence of the four required fields is the only form validation,
	// email format is deliberately not checked
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.Price) == "" ||
		strings.TrimSpace(input.SellerEmail) == "" {
		return nil, ErrMissingFields
	}

	if !common.IsValidCategory(input.Category) {
		return nil, ErrUnknownCategory
	}

	price, err := common.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	var imageURL *string
	if input.Image != "" {
		if err := common.ValidateDataURI(input.Image); err != nil {
			return nil, err
		}
		if mime := common.DataURIMimeType(input.Image); !strings.HasPrefix(mime, "image/") {
			return nil, common.NewValidationError("photo must be an image")
		}
		image := input.Image
		imageURL = &image
	}

	location := input.Location
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}

	listing := &dbmysql.Listing{
		Title:       input.Title,
		Category:    input.Category,
		Price:       price,
		Location:    location,
		SellerEmail: input.SellerEmail,
		Description: input.Description,
		ImageURL:    imageURL,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Browse fetches listings for a category and applies the free-text
// search over title and location. A datastore read failure degrades to
// an empty result rather than an error, matching how the browser views
// treat a failed fetch.
func (s *listingService) Browse(ctx context.Context, category, search string) ([]*dbmysql.Listing, error) {
	if category != "" && !common.IsBrowsableCategory(category) {
		return nil, ErrUnknownCategory
	}

	listings, err := s.repo.List(ctx, common.CategoryFilter(category))
	if err != nil {
		log.Printf("Listing fetch failed, returning empty set: %v", err)
		return []*dbmysql.Listing{}, nil
	}

	return filterBySearch(listings, search), nil
}

func (s *listingService) GetListing(ctx context.Context, id string) (*dbmysql.Listing, error) {
	listing, err := s.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// filterBySearch keeps listings whose title or location contains the
// search text, case-insensitively. Empty search keeps everything.
func filterBySearch(listings []*dbmysql.Listing, search string) []*dbmysql.Listing {
	if search == "" {
		return listings
	}

	needle := strings.ToLower(search)
	matched := make([]*dbmysql.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), needle) ||
			strings.Contains(strings.ToLower(l.Location), needle) {
			matched = append(matched, l)
		}
	}
	return matched
}

// FormatPostedOn renders the card timestamp, e.g.
// "Posted on June 5 2024, 3:04 PM".
func FormatPostedOn(t time.Time) string {
	return "Posted on " + t.Format("January 2 2006, 3:04 PM")
}
