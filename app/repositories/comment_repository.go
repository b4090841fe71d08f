package repositories

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"rantbox/app/config"
	"rantbox/app/ledger"
	"rantbox/app/models"
)

// ArweaveCommentRepository reads and writes comments as ledger transactions
// tagged with their parent rant's transaction id.
type ArweaveCommentRepository struct {
	client ledger.Client
	wallet *ledger.Wallet
	cfg    *config.Config
	logger *slog.Logger
}

// NewArweaveCommentRepository creates a comment repository over the given
// ledger client and signing wallet.
func NewArweaveCommentRepository(client ledger.Client, wallet *ledger.Wallet,
	cfg *config.Config, logger *slog.Logger,
) *ArweaveCommentRepository {
	return &ArweaveCommentRepository{
		client: client,
		wallet: wallet,
		cfg:    cfg,
		logger: logger,
	}
}

// ListByRant assembles all comments tagged with the parent id. Malformed
// items are dropped, same policy as rant listings.
func (r *ArweaveCommentRepository) ListByRant(ctx context.Context, rantID string) ([]*models.Comment, error) {
	refs, err := r.client.Search(ctx, ledger.Query{
		Tags: append(identityTags(r.cfg),
			ledger.Tag{Name: TagType, Value: TypeComment},
			ledger.Tag{Name: TagParent, Value: rantID},
		),
		Owner: r.cfg.WalletID,
	})
	if err != nil {
		return nil, err
	}

	comments := assemble[models.Comment](ctx, r.client, refs, r.logger)
	for i, comment := range comments {
		if comment != nil {
			comment.ID = refs[i].ID
		}
	}

	return lo.Filter(comments, func(comment *models.Comment, _ int) bool {
		return comment != nil
	}), nil
}

// Create runs the write pipeline for a comment transaction. The parent id
// travels both in the payload and in the TID tag; the tag is what makes the
// comment discoverable.
func (r *ArweaveCommentRepository) Create(ctx context.Context, comment *models.Comment) (string, bool, error) {
	tags := append([]ledger.Tag{{Name: TagContentType, Value: contentTypePlain}}, identityTags(r.cfg)...)
	tags = append(tags,
		ledger.Tag{Name: TagType, Value: TypeComment},
		ledger.Tag{Name: TagParent, Value: comment.TransactionID},
	)

	return writeTransaction(ctx, r.client, r.wallet, r.cfg, r.logger, comment, tags)
}
