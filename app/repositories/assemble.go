package repositories

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"rantbox/app/ledger"
)

// assemble fetches every referenced transaction's payload concurrently and
// decodes each one into T. Results are gathered into a slice pre-sized and
// keyed by input index, so output order matches input order regardless of
// fetch completion order.
//
// A per-item fetch or decode failure is not pipeline-fatal: the slot is left
// nil and logged, and callers drop nil entries from listings.
func assemble[T any](ctx context.Context, client ledger.Client, refs []ledger.TxRef,
	logger *slog.Logger,
) []*T {
	items := make([]*T, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref ledger.TxRef) {
			defer wg.Done()

			data, err := client.Data(ctx, ref.ID)
			if err != nil {
				logger.Warn("skipping transaction: data fetch failed", "id", ref.ID, "error", err)
				return
			}

			item := new(T)
			if err := json.Unmarshal(data, item); err != nil {
				logger.Warn("skipping transaction: payload is not valid JSON", "id", ref.ID, "error", err)
				return
			}
			items[i] = item
		}(i, ref)
	}
	wg.Wait()

	return items
}
