// Package mock provides an in-memory ledger client for tests. It records
// call counts per method so tests can assert that a rejected request never
// reached the ledger.
package mock

import (
	"context"
	"sync"

	"rantbox/app/apperrors"
	"rantbox/app/ledger"
)

type storedTx struct {
	id   string
	data []byte
	tags []ledger.Tag
}

// Ledger is an in-memory ledger.Client. Submitted transactions become
// searchable under the configured owner; searches return newest-first.
type Ledger struct {
	mu sync.Mutex

	// Owner is the wallet address submitted transactions belong to.
	Owner string

	// Winston is the balance returned by Balance.
	Winston int64

	// Confirmed is the status returned for every transaction.
	Confirmed bool

	// Err, when set, is returned by every call.
	Err error

	// DataHook, when set, runs inside Data before the payload is returned.
	// Tests use it to control fetch completion order.
	DataHook func(id string)

	txs   []storedTx
	calls map[string]int
}

// NewLedger creates a mock ledger with a half-AR balance, which passes the
// funds gate.
func NewLedger(owner string) *Ledger {
	return &Ledger{
		Owner:   owner,
		Winston: ledger.WinstonPerAR / 2,
		calls:   make(map[string]int),
	}
}

// Calls returns how many times the named method was invoked.
func (m *Ledger) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// TotalCalls returns the total number of ledger calls across all methods.
func (m *Ledger) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// Seed stores a transaction directly, bypassing the write pipeline.
func (m *Ledger) Seed(id string, data []byte, tags []ledger.Tag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, storedTx{id: id, data: data, tags: tags})
}

func (m *Ledger) record(method string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
	return m.Err
}

func (m *Ledger) match(q ledger.Query) []ledger.TxRef {
	m.mu.Lock()
	defer m.mu.Unlock()

	var refs []ledger.TxRef
	// Newest first, matching gateway block ordering.
	for i := len(m.txs) - 1; i >= 0; i-- {
		tx := m.txs[i]
		if q.ID != "" && tx.id != q.ID {
			continue
		}
		if !hasTags(tx.tags, q.Tags) {
			continue
		}
		refs = append(refs, ledger.TxRef{ID: tx.id})
	}
	return refs
}

func hasTags(have, want []ledger.Tag) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h.Name == w.Name && h.Value == w.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *Ledger) Search(_ context.Context, q ledger.Query) ([]ledger.TxRef, error) {
	if err := m.record("Search"); err != nil {
		return nil, err
	}
	if q.Owner == "" {
		return nil, apperrors.Configuration("tag query has no owner scope")
	}
	if q.Owner != m.Owner {
		return nil, nil
	}
	return m.match(q), nil
}

func (m *Ledger) SearchOne(_ context.Context, q ledger.Query) (*ledger.TxRef, error) {
	if err := m.record("SearchOne"); err != nil {
		return nil, err
	}
	if q.Owner == "" {
		return nil, apperrors.Configuration("tag query has no owner scope")
	}
	refs := m.match(q)
	if q.Owner != m.Owner || len(refs) == 0 {
		return nil, nil
	}
	return &refs[0], nil
}

func (m *Ledger) Data(_ context.Context, id string) ([]byte, error) {
	if err := m.record("Data"); err != nil {
		return nil, err
	}
	if m.DataHook != nil {
		m.DataHook(id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.txs {
		if tx.id == id {
			return tx.data, nil
		}
	}
	return nil, apperrors.NotFound("transaction not found")
}

func (m *Ledger) Balance(_ context.Context, _ string) (int64, error) {
	if err := m.record("Balance"); err != nil {
		return 0, err
	}
	return m.Winston, nil
}

func (m *Ledger) Price(_ context.Context, _ int) (string, error) {
	if err := m.record("Price"); err != nil {
		return "", err
	}
	return "65596", nil
}

func (m *Ledger) Anchor(_ context.Context) (string, error) {
	if err := m.record("Anchor"); err != nil {
		return "", err
	}
	return "bU56dGdoM2ZOd2F0ZXJmYWxs", nil
}

func (m *Ledger) Submit(_ context.Context, tx *ledger.Transaction) error {
	if err := m.record("Submit"); err != nil {
		return err
	}
	m.Seed(tx.ID, tx.Data, tx.Tags)
	return nil
}

func (m *Ledger) Status(_ context.Context, _ string) (*ledger.TxStatus, error) {
	if err := m.record("Status"); err != nil {
		return nil, err
	}
	return &ledger.TxStatus{Confirmed: m.Confirmed}, nil
}
