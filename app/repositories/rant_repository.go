package repositories

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/samber/lo"

	"rantbox/app/apperrors"
	"rantbox/app/config"
	"rantbox/app/ledger"
	"rantbox/app/models"
)

// ArweaveRantRepository reads and writes rants as tagged ledger
// transactions. Every query is scoped to the configured wallet owner.
type ArweaveRantRepository struct {
	client ledger.Client
	wallet *ledger.Wallet
	cfg    *config.Config
	logger *slog.Logger
}

// NewArweaveRantRepository creates a rant repository over the given ledger
// client and signing wallet.
func NewArweaveRantRepository(client ledger.Client, wallet *ledger.Wallet,
	cfg *config.Config, logger *slog.Logger,
) *ArweaveRantRepository {
	return &ArweaveRantRepository{
		client: client,
		wallet: wallet,
		cfg:    cfg,
		logger: logger,
	}
}

// List assembles the full ordered rant set from the ledger. Items whose
// payload cannot be fetched or decoded are dropped from the listing.
func (r *ArweaveRantRepository) List(ctx context.Context) ([]*models.Rant, error) {
	refs, err := r.client.Search(ctx, ledger.Query{
		Tags:  append(identityTags(r.cfg), ledger.Tag{Name: TagKind, Value: KindRant}),
		Owner: r.cfg.WalletID,
	})
	if err != nil {
		return nil, err
	}

	rants := assemble[models.Rant](ctx, r.client, refs, r.logger)
	for i, rant := range rants {
		if rant != nil {
			rant.ID = refs[i].ID
		}
	}

	return lo.Filter(rants, func(rant *models.Rant, _ int) bool {
		return rant != nil
	}), nil
}

// GetByID fetches one rant. Unlike listings, a malformed payload here is an
// error: the caller asked for this very item.
func (r *ArweaveRantRepository) GetByID(ctx context.Context, id string) (*models.Rant, error) {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("Rant doesnt exist, Please try again later")
	}

	data, err := r.client.Data(ctx, id)
	if err != nil {
		return nil, err
	}

	var rant models.Rant
	if err := json.Unmarshal(data, &rant); err != nil {
		return nil, apperrors.Deserialization("rant payload is not valid JSON", err)
	}
	rant.ID = id

	return &rant, nil
}

// Exists checks whether the id matches a transaction carrying this
// application's identity tags under the configured owner.
func (r *ArweaveRantRepository) Exists(ctx context.Context, id string) (bool, error) {
	ref, err := r.client.SearchOne(ctx, ledger.Query{
		ID:    id,
		Tags:  identityTags(r.cfg),
		Owner: r.cfg.WalletID,
	})
	if err != nil {
		return false, err
	}
	return ref != nil, nil
}

// Create runs the write pipeline for a rant transaction.
func (r *ArweaveRantRepository) Create(ctx context.Context, rant *models.Rant) (string, bool, error) {
	tags := append([]ledger.Tag{{Name: TagContentType, Value: contentTypePlain}}, identityTags(r.cfg)...)
	tags = append(tags, ledger.Tag{Name: TagKind, Value: KindRant})

	return writeTransaction(ctx, r.client, r.wallet, r.cfg, r.logger, rant, tags)
}
