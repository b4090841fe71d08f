package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rantbox/app/apperrors"
	"rantbox/app/config"
	"rantbox/app/ledger"
	"rantbox/app/models"
	"rantbox/app/repositories/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:    "rantbox",
		AppVersion: "1.0.0",
		WalletID:   "owner",
	}
}

func rantTags(cfg *config.Config) []ledger.Tag {
	return append(identityTags(cfg), ledger.Tag{Name: TagKind, Value: KindRant})
}

func TestRantRepositoryCreateAndList(t *testing.T) {
	cfg := testConfig()
	ml := mock.NewLedger(cfg.WalletID)
	wallet, err := mock.NewWallet()
	require.NoError(t, err)

	repo := NewArweaveRantRepository(ml, wallet, cfg, testLogger())

	rant := &models.Rant{
		Rant:      "this is a rant long enough to matter",
		Category:  "general",
		TOC:       true,
		CreatedAt: "2026-08-29T12:00:00Z",
	}
	id, pending, err := repo.Create(context.Background(), rant)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, pending, "mock ledger reports unconfirmed by default")

	rants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rants, 1)
	assert.Equal(t, id, rants[0].ID)
	assert.Equal(t, rant.Rant, rants[0].Rant)
	assert.Equal(t, rant.Category, rants[0].Category)
}

func TestRantRepositoryListIgnoresForeignData(t *testing.T) {
	cfg := testConfig()
	ml := mock.NewLedger(cfg.WalletID)
	repo := NewArweaveRantRepository(ml, nil, cfg, testLogger())

	ours, _ := json.Marshal(models.Rant{Rant: "a rant that belongs to this app"})
	ml.Seed("ours", ours, rantTags(cfg))

	// Same ledger, different application identity.
	theirs, _ := json.Marshal(models.Rant{Rant: "someone else's data"})
	ml.Seed("theirs", theirs, []ledger.Tag{
		{Name: TagAppName, Value: "other-app"},
		{Name: TagAppVersion, Value: "2.0"},
		{Name: TagKind, Value: KindRant},
	})

	rants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rants, 1)
	assert.Equal(t, "ours", rants[0].ID)
}

func TestRantRepositoryListDropsMalformed(t *testing.T) {
	cfg := testConfig()
	ml := mock.NewLedger(cfg.WalletID)
	repo := NewArweaveRantRepository(ml, nil, cfg, testLogger())

	good, _ := json.Marshal(models.Rant{Rant: "still standing"})
	ml.Seed("good", good, rantTags(cfg))
	ml.Seed("bad", []byte("<<garbage>>"), rantTags(cfg))

	rants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rants, 1)
	assert.Equal(t, "good", rants[0].ID)
}

func TestRantRepositoryGetByID(t *testing.T) {
	cfg := testConfig()
	ml := mock.NewLedger(cfg.WalletID)
	repo := NewArweaveRantRepository(ml, nil, cfg, testLogger())

	payload, _ := json.Marshal(models.Rant{Rant: "fetched by id", Category: "general"})
	ml.Seed("tx-42", payload, rantTags(cfg))

	t.Run("found", func(t *testing.T) {
		rant, err := repo.GetByID(context.Background(), "tx-42")
		require.NoError(t, err)
		assert.Equal(t, "tx-42", rant.ID)
		assert.Equal(t, "fetched by id", rant.Rant)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "nope")
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("malformed payload is an error on detail fetch", func(t *testing.T) {
		ml.Seed("tx-bad", []byte("not json"), rantTags(cfg))
		_, err := repo.GetByID(context.Background(), "tx-bad")
		assert.Equal(t, apperrors.KindDeserialization, apperrors.KindOf(err))
	})
}

func TestRantRepositoryFundsGate(t *testing.T) {
	cfg := testConfig()
	wallet, err := mock.NewWallet()
	require.NoError(t, err)

	rant := &models.Rant{Rant: "gated", Category: "general"}

	t.Run("empty wallet", func(t *testing.T) {
		ml := mock.NewLedger(cfg.WalletID)
		ml.Winston = 0
		repo := NewArweaveRantRepository(ml, wallet, cfg, testLogger())

		_, _, err := repo.Create(context.Background(), rant)
		assert.Equal(t, apperrors.KindInsufficientFunds, apperrors.KindOf(err))
		assert.Equal(t, 0, ml.Calls("Submit"), "nothing submitted past the gate")
	})

	t.Run("one AR or more", func(t *testing.T) {
		ml := mock.NewLedger(cfg.WalletID)
		ml.Winston = ledger.WinstonPerAR
		repo := NewArweaveRantRepository(ml, wallet, cfg, testLogger())

		_, _, err := repo.Create(context.Background(), rant)
		assert.Equal(t, apperrors.KindInsufficientFunds, apperrors.KindOf(err))
	})
}

func TestCommentRepositoryRoundTrip(t *testing.T) {
	cfg := testConfig()
	ml := mock.NewLedger(cfg.WalletID)
	wallet, err := mock.NewWallet()
	require.NoError(t, err)

	repo := NewArweaveCommentRepository(ml, wallet, cfg, testLogger())

	comment := &models.Comment{
		TransactionID: "parent-tx",
		Comment:       "a thoughtful reply",
		CreatedAt:     "2026-08-29T12:00:00Z",
	}
	id, _, err := repo.Create(context.Background(), comment)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	comments, err := repo.ListByRant(context.Background(), "parent-tx")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, id, comments[0].ID)
	assert.Equal(t, "a thoughtful reply", comments[0].Comment)

	// Comments are discoverable only under their own parent.
	comments, err = repo.ListByRant(context.Background(), "other-tx")
	require.NoError(t, err)
	assert.Empty(t, comments)
}
