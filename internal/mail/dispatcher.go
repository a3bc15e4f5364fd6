package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/Kukaas/marketplace/internal/common"
)

// Dispatcher sends the two notification emails for one message event:
// first the seller notification, then the buyer confirmation. The sends
// are sequential and there is no retry; the first failure aborts.
type Dispatcher struct {
	email common.EmailService
}

func NewDispatcher(email common.EmailService) *Dispatcher {
	return &Dispatcher{email: email}
}

var _ common.MessageNotifier = (*Dispatcher)(nil)

func (d *Dispatcher) NotifyMessage(ctx context.Context, payload common.MessageEmailPayload) error {
	sellerBody, err := SellerNotification(payload)
	if err != nil {
		return err
	}
	if err := d.email.SendEmail(payload.SellerEmail, SellerSubject, sellerBody); err != nil {
		return fmt.Errorf("seller notification: %w", err)
	}

	buyerBody, err := BuyerConfirmation(payload)
	if err != nil {
		return err
	}
	if err := d.email.SendEmail(payload.BuyerEmail, BuyerSubject, buyerBody); err != nil {
		return fmt.Errorf("buyer confirmation: %w", err)
	}

	log.Printf("Message emails dispatched for listing %s", payload.ListingID)
	return nil
}
