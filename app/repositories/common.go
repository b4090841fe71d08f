package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"rantbox/app/apperrors"
	"rantbox/app/config"
	"rantbox/app/ledger"
)

// Tag names and values shared by every transaction this application writes.
// App-Name and App-Version are the sole mechanism separating this
// application's data from everything else on the shared ledger.
const (
	TagContentType = "Content-Type"
	TagAppName     = "App-Name"
	TagAppVersion  = "App-Version"
	TagKind        = "Tag"
	TagType        = "Type"
	TagParent      = "TID"

	KindRant    = "rant"
	TypeComment = "comment"

	contentTypePlain = "text/plain"
)

// identityTags returns the tag pair scoping a query or write to this
// application's dataset.
func identityTags(cfg *config.Config) []ledger.Tag {
	return []ledger.Tag{
		{Name: TagAppName, Value: cfg.AppName},
		{Name: TagAppVersion, Value: cfg.AppVersion},
	}
}

// writeTransaction runs the write pipeline shared by rants and comments, in
// strict sequence: balance gate, serialize, price, anchor, build, sign,
// submit, then a single status poll. It returns the transaction id and
// whether confirmation is still pending.
//
// Errors before Submit leave no ledger-visible trace. An error at or after
// Submit may still have produced a pending transaction; that ambiguity is
// inherent to asynchronous confirmation.
func writeTransaction(ctx context.Context, client ledger.Client, wallet *ledger.Wallet,
	cfg *config.Config, logger *slog.Logger, payload any, tags []ledger.Tag,
) (string, bool, error) {
	winston, err := client.Balance(ctx, cfg.WalletID)
	if err != nil {
		return "", false, err
	}

	// Crude funds-availability gate, not a pricing model: the wallet must
	// hold a positive balance below one whole AR.
	amount := float64(winston) / float64(ledger.WinstonPerAR)
	if amount <= 0 || amount >= 1 {
		return "", false, apperrors.InsufficientFunds("Action Invalid, No Available Token anymore, Send Help!!")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", false, fmt.Errorf("serialize payload: %w", err)
	}

	reward, err := client.Price(ctx, len(data))
	if err != nil {
		return "", false, err
	}

	anchor, err := client.Anchor(ctx)
	if err != nil {
		return "", false, err
	}

	tx := ledger.NewTransaction(data, tags, anchor, reward, wallet.Owner())
	if err := tx.Sign(wallet); err != nil {
		return "", false, err
	}

	if err := client.Submit(ctx, tx); err != nil {
		return "", false, err
	}

	status, err := client.Status(ctx, tx.ID)
	if err != nil {
		// The transaction was accepted; report it as pending rather than
		// failing the whole request over a status lookup.
		logger.Warn("status lookup after submit failed", "id", tx.ID, "error", err)
		return tx.ID, true, nil
	}

	return tx.ID, !status.Confirmed, nil
}
