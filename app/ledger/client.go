// Package ledger talks to an Arweave gateway: tag-scoped transaction search,
// data retrieval, and signed transaction submission. The gateway owns all
// data; this package holds no state beyond the signing wallet.
package ledger

import "context"

// Tag is a single name/value pair attached to a transaction at submission.
type Tag struct {
	Name  string
	Value string
}

// TxRef identifies a matched transaction in a tag search result.
type TxRef struct {
	ID string
}

// Query describes a tag search. Owner is mandatory: querying the shared
// ledger without an owner scope would return unrelated accounts' data.
type Query struct {
	// ID restricts the search to a single transaction id when set.
	ID string

	// Tags are matched conjunctively.
	Tags []Tag

	// Owner is the wallet address the query is scoped to.
	Owner string
}

// TxStatus is the confirmation state of a submitted transaction.
type TxStatus struct {
	Confirmed bool
}

// Client is the gateway capability surface the rest of the service consumes.
// All calls are network operations bounded by the configured timeout and the
// request context.
type Client interface {
	// Search returns all matching transaction refs in gateway order
	// (newest-first block order).
	Search(ctx context.Context, q Query) ([]TxRef, error)

	// SearchOne returns the first match, or nil when nothing matches.
	// An empty result is not an error.
	SearchOne(ctx context.Context, q Query) (*TxRef, error)

	// Data fetches and decodes a transaction's raw payload bytes.
	Data(ctx context.Context, id string) ([]byte, error)

	// Balance returns the wallet balance in winston.
	Balance(ctx context.Context, address string) (int64, error)

	// Price returns the submission reward in winston for a payload of the
	// given byte size.
	Price(ctx context.Context, size int) (string, error)

	// Anchor returns the current transaction anchor (last_tx).
	Anchor(ctx context.Context) (string, error)

	// Submit posts a signed transaction to the gateway.
	Submit(ctx context.Context, tx *Transaction) error

	// Status performs a single confirmation-status lookup.
	Status(ctx context.Context, id string) (*TxStatus, error)
}

// WinstonPerAR is the winston/AR conversion factor.
const WinstonPerAR = 1_000_000_000_000
