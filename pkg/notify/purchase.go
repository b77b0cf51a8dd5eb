package notify

import (
	"context"
	"fmt"
	"log/slog"

	"tokenbay/pkg/accounts"
	"tokenbay/pkg/trade"
)

// AccountDirectory resolves account UUIDs to contact details.
// Satisfied by accounts.AccountRepository.
type AccountDirectory interface {
	GetAccountByUUID(ctx context.Context, uuid string) (accounts.Account, error)
}

// PurchaseNotifier emails both parties after a settlement commits.
// Delivery failures are logged and swallowed; the settlement stands.
type PurchaseNotifier struct {
	emails    EmailService
	directory AccountDirectory
	logger    *slog.Logger
}

func NewPurchaseNotifier(emails EmailService, directory AccountDirectory, logger *slog.Logger) *PurchaseNotifier {
	return &PurchaseNotifier{emails: emails, directory: directory, logger: logger}
}

func (n *PurchaseNotifier) PurchaseCompleted(ctx context.Context, receipt trade.Receipt) {
	n.sendConfirmation(ctx, receipt.BuyerUUID, receipt,
		"Purchase confirmed",
		fmt.Sprintf("You bought token #%d for %s.", receipt.TokenID, receipt.Price.String()))

	n.sendConfirmation(ctx, receipt.SellerUUID, receipt,
		"Token sold",
		fmt.Sprintf("Your token #%d sold for %s.", receipt.TokenID, receipt.Price.String()))
}

func (n *PurchaseNotifier) sendConfirmation(ctx context.Context, accountUUID string, receipt trade.Receipt, subject, body string) {
	account, err := n.directory.GetAccountByUUID(ctx, accountUUID)
	if err != nil {
		n.logger.Warn("confirmation skipped, account lookup failed",
			"account", accountUUID, "receipt", receipt.ID, "err", err)
		return
	}
	if account.Email == "" {
		return
	}

	if err := n.emails.SendEmail(subject, account.Email, body, "<p>"+body+"</p>"); err != nil {
		n.logger.Warn("confirmation email failed",
			"account", accountUUID, "receipt", receipt.ID, "err", err)
	}
}
