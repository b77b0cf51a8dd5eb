package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tokenbay/pkg/accounts"
	"tokenbay/pkg/trade"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	args := m.Called(subject, toEmail, plainTextContent, htmlContent)
	return args.Error(0)
}

type mockAccountDirectory struct {
	mock.Mock
}

func (m *mockAccountDirectory) GetAccountByUUID(ctx context.Context, uuid string) (accounts.Account, error) {
	args := m.Called(ctx, uuid)
	return args.Get(0).(accounts.Account), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testReceipt() trade.Receipt {
	return trade.Receipt{
		ID:         7,
		TokenID:    3,
		ListingID:  5,
		SellerUUID: "seller-uuid",
		BuyerUUID:  "buyer-uuid",
		Price:      decimal.NewFromInt(10),
	}
}

func TestPurchaseNotifier_EmailsBothParties(t *testing.T) {
	emails := new(mockEmailService)
	directory := new(mockAccountDirectory)
	notifier := NewPurchaseNotifier(emails, directory, discardLogger())

	directory.On("GetAccountByUUID", mock.Anything, "buyer-uuid").
		Return(accounts.Account{UUID: "buyer-uuid", Email: "buyer@example.com"}, nil)
	directory.On("GetAccountByUUID", mock.Anything, "seller-uuid").
		Return(accounts.Account{UUID: "seller-uuid", Email: "seller@example.com"}, nil)

	emails.On("SendEmail", "Purchase confirmed", "buyer@example.com", mock.Anything, mock.Anything).Return(nil)
	emails.On("SendEmail", "Token sold", "seller@example.com", mock.Anything, mock.Anything).Return(nil)

	notifier.PurchaseCompleted(context.Background(), testReceipt())

	emails.AssertExpectations(t)
}

func TestPurchaseNotifier_LookupFailureSkipsEmail(t *testing.T) {
	emails := new(mockEmailService)
	directory := new(mockAccountDirectory)
	notifier := NewPurchaseNotifier(emails, directory, discardLogger())

	directory.On("GetAccountByUUID", mock.Anything, "buyer-uuid").
		Return(accounts.Account{}, errors.New("connection refused"))
	directory.On("GetAccountByUUID", mock.Anything, "seller-uuid").
		Return(accounts.Account{UUID: "seller-uuid", Email: "seller@example.com"}, nil)

	emails.On("SendEmail", "Token sold", "seller@example.com", mock.Anything, mock.Anything).Return(nil)

	// Must not panic and must still notify the other party
	notifier.PurchaseCompleted(context.Background(), testReceipt())

	emails.AssertNumberOfCalls(t, "SendEmail", 1)
}

func TestPurchaseNotifier_DeliveryFailureIsSwallowed(t *testing.T) {
	emails := new(mockEmailService)
	directory := new(mockAccountDirectory)
	notifier := NewPurchaseNotifier(emails, directory, discardLogger())

	directory.On("GetAccountByUUID", mock.Anything, mock.Anything).
		Return(accounts.Account{Email: "someone@example.com"}, nil)
	emails.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("sendgrid is down"))

	notifier.PurchaseCompleted(context.Background(), testReceipt())

	emails.AssertNumberOfCalls(t, "SendEmail", 2)
}

func TestPurchaseNotifier_NoEmailOnRecord(t *testing.T) {
	emails := new(mockEmailService)
	directory := new(mockAccountDirectory)
	notifier := NewPurchaseNotifier(emails, directory, discardLogger())

	directory.On("GetAccountByUUID", mock.Anything, mock.Anything).
		Return(accounts.Account{}, nil)

	notifier.PurchaseCompleted(context.Background(), testReceipt())

	emails.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
