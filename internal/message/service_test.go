package message

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/common"
	"github.com/Kukaas/marketplace/internal/dbmysql"
	"github.com/Kukaas/marketplace/internal/listing"
)

func TestMessageService_SendMessage(t *testing.T) {
	bike := &dbmysql.Listing{ID: "listing-1", Title: "Bike", SellerEmail: "seller@example.com"}

	tests := []struct {
		name        string
		input       SendMessageInput
		setup       func(repo *MockRepository, listings *listing.MockRepository, notifier *MockMessageNotifier)
		wantOutcome common.MessageOutcome
		wantWarning string
		wantErr     error
	}{
		{
			name:  "full success",
			input: SendMessageInput{ListingID: "listing-1", BuyerEmail: "buyer@example.com", Body: "Is this available?"},
			setup: func(repo *MockRepository, listings *listing.MockRepository, notifier *MockMessageNotifier) {
				listings.EXPECT().ByID(gomock.Any(), "listing-1").Return(bike, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *dbmysql.Message) error {
						// seller address always comes from the listing
						assert.Equal(t, "listing-1", msg.ListingID)
						assert.Equal(t, "seller@example.com", msg.SellerEmail)
						assert.Equal(t, "buyer@example.com", msg.BuyerEmail)
						return nil
					})
				notifier.EXPECT().NotifyMessage(gomock.Any(), common.MessageEmailPayload{
					ListingID:   "listing-1",
					BuyerEmail:  "buyer@example.com",
					SellerEmail: "seller@example.com",
					Message:     "Is this available?",
				}).Return(nil)
			},
			wantOutcome: common.OutcomeSucceeded,
		},
		{
			name:  "email failure after insert is partial success",
			input: SendMessageInput{ListingID: "listing-1", BuyerEmail: "buyer@example.com", Body: "Still there?"},
			setup: func(repo *MockRepository, listings *listing.MockRepository, notifier *MockMessageNotifier) {
				listings.EXPECT().ByID(gomock.Any(), "listing-1").Return(bike, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				notifier.EXPECT().NotifyMessage(gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))
			},
			wantOutcome: common.OutcomePartiallySucceeded,
			wantWarning: PartialFailureWarning,
		},
		{
			name:  "insert failure aborts before any email",
			input: SendMessageInput{ListingID: "listing-1", BuyerEmail: "buyer@example.com", Body: "Hello"},
			setup: func(repo *MockRepository, listings *listing.MockRepository, notifier *MockMessageNotifier) {
				listings.EXPECT().ByID(gomock.Any(), "listing-1").Return(bike, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert denied"))
				// no NotifyMessage expectation: gomock fails the test if it is called
			},
			wantOutcome: common.OutcomeFailed,
			wantErr:     errors.New("insert denied"),
		},
		{
			name:    "empty buyer email",
			input:   SendMessageInput{ListingID: "listing-1", BuyerEmail: "", Body: "Hello"},
			setup:   func(*MockRepository, *listing.MockRepository, *MockMessageNotifier) {},
			wantErr: ErrMissingFields,
		},
		{
			name:    "empty message body",
			input:   SendMessageInput{ListingID: "listing-1", BuyerEmail: "buyer@example.com", Body: "  "},
			setup:   func(*MockRepository, *listing.MockRepository, *MockMessageNotifier) {},
			wantErr: ErrMissingFields,
		},
		{
			name:  "listing gone",
			input: SendMessageInput{ListingID: "missing", BuyerEmail: "buyer@example.com", Body: "Hello"},
			setup: func(repo *MockRepository, listings *listing.MockRepository, notifier *MockMessageNotifier) {
				listings.EXPECT().ByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrListingNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepository(ctrl)
			listings := listing.NewMockRepository(ctrl)
			notifier := NewMockMessageNotifier(ctrl)
			tc.setup(repo, listings, notifier)

			svc := NewService(repo, listings, notifier)
			result, err := svc.SendMessage(context.Background(), tc.input)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				if tc.wantOutcome != "" {
					require.NotNil(t, result)
					assert.Equal(t, tc.wantOutcome, result.Outcome)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tc.wantOutcome, result.Outcome)
			assert.Equal(t, tc.wantWarning, result.Warning)
			require.NotNil(t, result.Message)
			assert.Equal(t, "seller@example.com", result.Message.SellerEmail)
		})
	}
}
