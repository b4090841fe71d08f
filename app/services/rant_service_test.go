package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rantbox/app/apperrors"
	"rantbox/app/config"
	"rantbox/app/ledger"
	"rantbox/app/models"
	"rantbox/app/repositories"
	"rantbox/app/repositories/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	ledger         *mock.Ledger
	rantService    *RantService
	commentService *CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		AppName:    "rantbox",
		AppVersion: "1.0.0",
		WalletID:   "owner",
	}
	ml := mock.NewLedger(cfg.WalletID)
	wallet, err := mock.NewWallet()
	require.NoError(t, err)

	logger := testLogger()
	rantRepo := repositories.NewArweaveRantRepository(ml, wallet, cfg, logger)
	commentRepo := repositories.NewArweaveCommentRepository(ml, wallet, cfg, logger)

	return &fixture{
		ledger:         ml,
		rantService:    NewRantService(rantRepo, commentRepo, logger),
		commentService: NewCommentService(commentRepo, rantRepo, logger),
	}
}

func (f *fixture) seedRants(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		data, err := json.Marshal(models.Rant{Rant: fmt.Sprintf("seeded rant number %d", i)})
		require.NoError(t, err)
		f.ledger.Seed(fmt.Sprintf("tx-%d", i), data, []ledger.Tag{
			{Name: repositories.TagAppName, Value: "rantbox"},
			{Name: repositories.TagAppVersion, Value: "1.0.0"},
			{Name: repositories.TagKind, Value: repositories.KindRant},
		})
	}
}

func TestListRants(t *testing.T) {
	f := newFixture(t)
	f.seedRants(t, 25)

	t.Run("first page", func(t *testing.T) {
		listing, err := f.rantService.ListRants(context.Background(), 1, 10)
		require.NoError(t, err)

		assert.Len(t, listing.Rants, 10)
		assert.Equal(t, 3, listing.TotalPages)
		assert.True(t, listing.HasNextPage)
		assert.False(t, listing.HasPrevPage)
	})

	t.Run("last page is partial", func(t *testing.T) {
		listing, err := f.rantService.ListRants(context.Background(), 3, 10)
		require.NoError(t, err)

		assert.Len(t, listing.Rants, 5)
		assert.False(t, listing.HasNextPage)
		assert.True(t, listing.HasPrevPage)
	})

	t.Run("page past the end is empty, totals unchanged", func(t *testing.T) {
		listing, err := f.rantService.ListRants(context.Background(), 9, 10)
		require.NoError(t, err)

		assert.Empty(t, listing.Rants)
		assert.Equal(t, 3, listing.TotalPages)
	})

	t.Run("newest first", func(t *testing.T) {
		listing, err := f.rantService.ListRants(context.Background(), 1, 5)
		require.NoError(t, err)
		require.NotEmpty(t, listing.Rants)
		assert.Equal(t, "tx-24", listing.Rants[0].ID)
	})

	t.Run("zero or negative paging is rejected", func(t *testing.T) {
		_, err := f.rantService.ListRants(context.Background(), 1, 0)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		_, err = f.rantService.ListRants(context.Background(), 0, 10)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		_, err = f.rantService.ListRants(context.Background(), -1, -5)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestListRantsIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.seedRants(t, 7)

	first, err := f.rantService.ListRants(context.Background(), 1, 5)
	require.NoError(t, err)
	second, err := f.rantService.ListRants(context.Background(), 1, 5)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b), "same ledger state, same listing")
}

func TestCreateRant(t *testing.T) {
	f := newFixture(t)

	t.Run("valid rant is submitted", func(t *testing.T) {
		receipt, err := f.rantService.CreateRant(context.Background(), &models.RantInput{
			Rant:     strings.Repeat("A", 30),
			Category: "general",
			TOC:      true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, receipt.ID)
		assert.True(t, receipt.Pending)

		details, err := f.rantService.GetRant(context.Background(), receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("A", 30), details.Rant.Rant)

		// The timestamp is server-assigned.
		_, err = time.Parse(time.RFC3339, details.CreatedAt)
		assert.NoError(t, err)
	})

	t.Run("rejected without terms acceptance, before any ledger call", func(t *testing.T) {
		fresh := newFixture(t)

		_, err := fresh.rantService.CreateRant(context.Background(), &models.RantInput{
			Rant:     strings.Repeat("A", 30),
			Category: "general",
			TOC:      false,
		})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Equal(t, 0, fresh.ledger.TotalCalls(), "validation failures must not reach the ledger")
	})

	t.Run("rejected when too short, before any ledger call", func(t *testing.T) {
		fresh := newFixture(t)

		_, err := fresh.rantService.CreateRant(context.Background(), &models.RantInput{
			Rant:     "too short",
			Category: "general",
			TOC:      true,
		})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Equal(t, 0, fresh.ledger.TotalCalls())
	})
}

func TestGetRantNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.rantService.GetRant(context.Background(), "does-not-exist")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
