package common

// MessageOutcome names the terminal state of a contact-form submission.
// The message insert and the email dispatch are not transactional, so a
// submission can land in three distinct states.
type MessageOutcome string

const (
	// OutcomeFailed - the message row was not persisted, nothing was sent
	OutcomeFailed MessageOutcome = "failed"
	// OutcomePartiallySucceeded - the row is persisted but the email
	// notification could not be delivered
	OutcomePartiallySucceeded MessageOutcome = "partially_succeeded"
	// OutcomeSucceeded - row persisted and both emails dispatched
	OutcomeSucceeded MessageOutcome = "succeeded"
)

// String returns the string representation
func (o MessageOutcome) String() string {
	return string(o)
}

// IsValid checks if the outcome is one of the named states
func (o MessageOutcome) IsValid() bool {
	return o == OutcomeFailed || o == OutcomePartiallySucceeded || o == OutcomeSucceeded
}

// MessageEmailPayload is the wire body of the mail dispatcher endpoint
// and the input to the notifier. Field names match the messages table.
type MessageEmailPayload struct {
	ListingID   string `json:"listing_id"`
	BuyerEmail  string `json:"buyer_email"`
	SellerEmail string `json:"seller_email"`
	Message     string `json:"message"`
}
