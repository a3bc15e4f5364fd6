package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/dbmysql"
)

func TestListingService_CreateListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name        string
		input       CreateListingInput
		setup       func()
		wantErr     bool
		errContains string
		check       func(t *testing.T, l *dbmysql.Listing)
	}{
		{
			name: "success without photo",
			input: CreateListingInput{
				Title:       "Bike",
				Category:    "Vehicles",
				Price:       "150",
				SellerEmail: "a@b.com",
			},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, l *dbmysql.Listing) error {
						l.ID = "generated-id"
						return nil
					})
			},
			check: func(t *testing.T, l *dbmysql.Listing) {
				assert.Equal(t, 150.0, l.Price)
				assert.Nil(t, l.ImageURL)
				assert.Equal(t, DefaultLocation, l.Location)
			},
		},
		{
			name: "success with photo",
			input: CreateListingInput{
				Title:       "Lamp",
				Category:    "Home Goods",
				Price:       "19.99",
				Location:    "Menlo Park, CA",
				SellerEmail: "a@b.com",
				Image:       "data:image/png;base64,iVBORw0KGgo=",
			},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, l *dbmysql.Listing) {
				require.NotNil(t, l.ImageURL)
				assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", *l.ImageURL)
				assert.Equal(t, "Menlo Park, CA", l.Location)
			},
		},
		{
			name:        "missing title",
			input:       CreateListingInput{Category: "Vehicles", Price: "150", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "required fields",
		},
		{
			name:        "missing category",
			input:       CreateListingInput{Title: "Bike", Price: "150", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "required fields",
		},
		{
			name:        "missing price",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "required fields",
		},
		{
			name:        "missing email",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", Price: "150"},
			setup:       func() {},
			wantErr:     true,
			errContains: "required fields",
		},
		{
			name:        "category outside taxonomy",
			input:       CreateListingInput{Title: "Boat", Category: "Boats", Price: "150", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "Unknown category",
		},
		{
			name:        "unparseable price",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", Price: "cheap", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "number",
		},
		{
			name:        "negative price",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", Price: "-1", SellerEmail: "a@b.com"},
			setup:       func() {},
			wantErr:     true,
			errContains: "negative",
		},
		{
			name:        "malformed photo",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", Price: "150", SellerEmail: "a@b.com", Image: "http://not-a-data-uri"},
			setup:       func() {},
			wantErr:     true,
			errContains: "data URI",
		},
		{
			name:        "photo with non-image media type",
			input:       CreateListingInput{Title: "Bike", Category: "Vehicles", Price: "150", SellerEmail: "a@b.com", Image: "data:text/plain;base64,aGVsbG8="},
			setup:       func() {},
			wantErr:     true,
			errContains: "must be an image",
		},
		{
			name: "repo error surfaces verbatim",
			input: CreateListingInput{
				Title:       "Bike",
				Category:    "Vehicles",
				Price:       "150",
				SellerEmail: "a@b.com",
			},
			setup: func() {
				mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("duplicate entry"))
			},
			wantErr:     true,
			errContains: "duplicate entry",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			listing, err := svc.CreateListing(ctx, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errContains)
				require.Nil(t, listing)
			} else {
				require.NoError(t, err)
				require.NotNil(t, listing)
				if tc.check != nil {
					tc.check(t, listing)
				}
			}
		})
	}
}

func TestListingService_Browse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	all := []*dbmysql.Listing{
		{ID: "1", Title: "Road Bike", Location: "Palo Alto, CA", Category: "Vehicles"},
		{ID: "2", Title: "Desk Lamp", Location: "Menlo Park, CA", Category: "Home Goods"},
		{ID: "3", Title: "Guitar", Location: "palo alto, ca", Category: "Musical Instruments"},
	}

	tests := []struct {
		name     string
		category string
		search   string
		setup    func()
		wantIDs  []string
		wantErr  bool
	}{
		{
			name:     "All category passes no filter to the store",
			category: "All",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(all, nil)
			},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:     "empty category behaves like All",
			category: "",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(all, nil)
			},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:     "specific category is pushed to the store",
			category: "Vehicles",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "Vehicles").Return(all[:1], nil)
			},
			wantIDs: []string{"1"},
		},
		{
			name:     "search matches title case-insensitively",
			category: "All",
			search:   "bIkE",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(all, nil)
			},
			wantIDs: []string{"1"},
		},
		{
			name:     "search matches location case-insensitively",
			category: "All",
			search:   "Palo Alto",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(all, nil)
			},
			wantIDs: []string{"1", "3"},
		},
		{
			name:     "no search matches",
			category: "All",
			search:   "zzz",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(all, nil)
			},
			wantIDs: []string{},
		},
		{
			name:     "read failure degrades to empty set",
			category: "All",
			setup: func() {
				mockRepo.EXPECT().List(ctx, "").Return(nil, errors.New("connection refused"))
			},
			wantIDs: []string{},
		},
		{
			name:     "unknown category is rejected",
			category: "Boats",
			setup:    func() {},
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			listings, err := svc.Browse(ctx, tc.category, tc.search)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(listings))
			for _, l := range listings {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestListingService_GetListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().ByID(ctx, "id-1").Return(&dbmysql.Listing{ID: "id-1", Title: "Bike"}, nil)

		listing, err := svc.GetListing(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "Bike", listing.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().ByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		listing, err := svc.GetListing(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, listing)
	})

	t.Run("other error passes through", func(t *testing.T) {
		mockRepo.EXPECT().ByID(ctx, "id-1").Return(nil, errors.New("timeout"))

		_, err := svc.GetListing(ctx, "id-1")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestFormatPostedOn(t *testing.T) {
	ts := time.Date(2024, time.June, 5, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Posted on June 5 2024, 3:04 PM", FormatPostedOn(ts))
}
