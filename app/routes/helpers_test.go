package routes

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"rantbox/app/config"
	"rantbox/app/metrics"
	"rantbox/app/repositories/mock"
)

// setupTestRouter wires the full router over an in-memory ledger.
func setupTestRouter(t *testing.T) (*mux.Router, *mock.Ledger) {
	t.Helper()

	cfg := &config.Config{
		Port:       8000,
		AppName:    "rantbox",
		AppVersion: "1.0.0",
		WalletID:   "owner",
	}
	ml := mock.NewLedger(cfg.WalletID)
	wallet, err := mock.NewWallet()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := SetupRoutes(cfg, ml, wallet, metrics.NewCollector(), logger)

	return router, ml
}
