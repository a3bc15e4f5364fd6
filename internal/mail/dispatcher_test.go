package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func TestDispatcher_NotifyMessage_SendsBothEmails(t *testing.T) {
	emailService := new(MockEmailService)
	emailService.On("SendEmail", "seller@example.com", SellerSubject, mock.Anything).Return(nil).Once()
	emailService.On("SendEmail", "buyer@example.com", BuyerSubject, mock.Anything).Return(nil).Once()

	dispatcher := NewDispatcher(emailService)
	err := dispatcher.NotifyMessage(context.Background(), samplePayload())

	require.NoError(t, err)
	emailService.AssertExpectations(t)
}

func TestDispatcher_NotifyMessage_SellerSendFailureAborts(t *testing.T) {
	emailService := new(MockEmailService)
	emailService.On("SendEmail", "seller@example.com", SellerSubject, mock.Anything).Return(assert.AnError).Once()

	dispatcher := NewDispatcher(emailService)
	err := dispatcher.NotifyMessage(context.Background(), samplePayload())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seller notification")
	// buyer confirmation must not go out when the seller send failed
	emailService.AssertNumberOfCalls(t, "SendEmail", 1)
}

func TestDispatcher_NotifyMessage_BuyerSendFailure(t *testing.T) {
	emailService := new(MockEmailService)
	emailService.On("SendEmail", "seller@example.com", SellerSubject, mock.Anything).Return(nil).Once()
	emailService.On("SendEmail", "buyer@example.com", BuyerSubject, mock.Anything).Return(assert.AnError).Once()

	dispatcher := NewDispatcher(emailService)
	err := dispatcher.NotifyMessage(context.Background(), samplePayload())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "buyer confirmation")
	emailService.AssertExpectations(t)
}
