package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/common"
	"github.com/Kukaas/marketplace/internal/dbmysql"
	"github.com/Kukaas/marketplace/internal/listing"
)

var (
	// ErrMissingFields matches the contact form validation message
	ErrMissingFields = errors.New("Please fill in all fields.")
	// ErrListingNotFound - the listing being contacted no longer exists
	ErrListingNotFound = errors.New("Listing not found")
)

// PartialFailureWarning is shown when the message row persisted but the
// notification emails could not be delivered. There is no retry; the
// row is kept either way.
const PartialFailureWarning = "Message saved, but failed to send email notification."

// SendMessageInput carries the contact form fields. The seller address
// is never part of the input; it is copied from the listing.
type SendMessageInput struct {
	ListingID  string
	BuyerEmail string
	Body       string
}

// Result reports how far the send got. Outcome is always set when the
// error is nil.
type Result struct {
	Outcome common.MessageOutcome
	Message *dbmysql.Message
	Warning string
}

type Service interface {
	SendMessage(ctx context.Context, input SendMessageInput) (*Result, error)
}

type messageService struct {
	repo     Repository
	listings listing.Repository
	notifier common.MessageNotifier
}

func NewService(repo Repository, listings listing.Repository, notifier common.MessageNotifier) Service {
	return &messageService{repo: repo, listings: listings, notifier: notifier}
}

// SendMessage runs the contact saga: persist the message row, then
// dispatch the notification emails. The two steps are not transactional
// and the email step is never allowed to undo the insert, so a mail
// failure yields PartiallySucceeded rather than an error.
func (s *messageService) SendMessage(ctx context.Context, input SendMessageInput) (*Result, error) {
	if strings.TrimSpace(input.BuyerEmail) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, ErrMissingFields
	}

	target, err := s.listings.ByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	msg := &dbmysql.Message{
		ListingID:   target.ID,
		BuyerEmail:  input.BuyerEmail,
		SellerEmail: target.SellerEmail,
		Body:        input.Body,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return &Result{Outcome: common.OutcomeFailed}, err
	}

	payload := common.MessageEmailPayload{
		ListingID:   target.ID,
		BuyerEmail:  input.BuyerEmail,
		SellerEmail: target.SellerEmail,
		Message:     input.Body,
	}
	if err := s.notifier.NotifyMessage(ctx, payload); err != nil {
		log.Printf("Email notification failed for listing %s: %v", target.ID, err)
		return &Result{
			Outcome: common.OutcomePartiallySucceeded,
			Message: msg,
			Warning: PartialFailureWarning,
		}, nil
	}

	return &Result{Outcome: common.OutcomeSucceeded, Message: msg}, nil
}
