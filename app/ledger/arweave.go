package ledger

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"rantbox/app/apperrors"
)

const searchBatchSize = 100

// Arweave is the gateway-backed Client implementation. Searches go through
// the gateway GraphQL endpoint; everything else uses the plain HTTP API.
type Arweave struct {
	client *resty.Client
	logger *slog.Logger
}

// NewArweave builds a gateway client. Every call is bounded by the given
// timeout on top of the caller's context.
func NewArweave(gatewayURL string, timeout time.Duration, logger *slog.Logger) *Arweave {
	client := resty.New().
		SetBaseURL(strings.TrimRight(gatewayURL, "/")).
		SetTimeout(timeout)

	return &Arweave{
		client: client,
		logger: logger,
	}
}

// Close releases the underlying transport.
func (a *Arweave) Close() error {
	return a.client.Close()
}

func (a *Arweave) r(ctx context.Context) *resty.Request {
	return a.client.R().WithContext(ctx)
}

type gqlTagFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type gqlVariables struct {
	Owners []string       `json:"owners"`
	IDs    []string       `json:"ids,omitempty"`
	Tags   []gqlTagFilter `json:"tags,omitempty"`
	First  int            `json:"first"`
	After  string         `json:"after,omitempty"`
}

type gqlResponse struct {
	Data struct {
		Transactions struct {
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
			} `json:"pageInfo"`
			Edges []struct {
				Cursor string `json:"cursor"`
				Node   struct {
					ID string `json:"id"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"transactions"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

const searchQuery = `query($owners: [String!], $ids: [ID!], $tags: [TagFilter!], $first: Int!, $after: String) {
  transactions(owners: $owners, ids: $ids, tags: $tags, first: $first, after: $after, sort: HEIGHT_DESC) {
    pageInfo { hasNextPage }
    edges { cursor node { id } }
  }
}`

// Search pages through the gateway until the result set is exhausted,
// preserving gateway ordering.
func (a *Arweave) Search(ctx context.Context, q Query) ([]TxRef, error) {
	if q.Owner == "" {
		return nil, apperrors.Configuration("tag query has no owner scope")
	}

	var (
		refs  []TxRef
		after string
	)
	for {
		page, cursor, hasNext, err := a.searchPage(ctx, q, after)
		if err != nil {
			return nil, err
		}
		refs = append(refs, page...)
		if !hasNext || cursor == "" {
			return refs, nil
		}
		after = cursor
	}
}

// SearchOne returns the first match, or nil when there is none.
func (a *Arweave) SearchOne(ctx context.Context, q Query) (*TxRef, error) {
	if q.Owner == "" {
		return nil, apperrors.Configuration("tag query has no owner scope")
	}

	page, _, _, err := a.searchPage(ctx, q, "")
	if err != nil {
		return nil, err
	}
	if len(page) == 0 {
		return nil, nil
	}
	return &page[0], nil
}

func (a *Arweave) searchPage(ctx context.Context, q Query, after string) ([]TxRef, string, bool, error) {
	vars := gqlVariables{
		Owners: []string{q.Owner},
		First:  searchBatchSize,
		After:  after,
	}
	if q.ID != "" {
		vars.IDs = []string{q.ID}
	}
	for _, tag := range q.Tags {
		vars.Tags = append(vars.Tags, gqlTagFilter{Name: tag.Name, Values: []string{tag.Value}})
	}

	var out gqlResponse
	res, err := a.r(ctx).
		SetBody(map[string]any{"query": searchQuery, "variables": vars}).
		SetResult(&out).
		Post("/graphql")
	if err != nil {
		return nil, "", false, apperrors.LedgerUnavailable("transaction search failed", err)
	}
	if res.IsError() {
		return nil, "", false, apperrors.LedgerUnavailable(
			fmt.Sprintf("transaction search returned %d", res.StatusCode()), nil)
	}
	if len(out.Errors) > 0 {
		return nil, "", false, apperrors.LedgerUnavailable(
			"transaction search rejected: "+out.Errors[0].Message, nil)
	}

	tx := out.Data.Transactions
	refs := make([]TxRef, 0, len(tx.Edges))
	cursor := ""
	for _, edge := range tx.Edges {
		refs = append(refs, TxRef{ID: edge.Node.ID})
		cursor = edge.Cursor
	}
	return refs, cursor, tx.PageInfo.HasNextPage, nil
}

// Data fetches a transaction's payload. The gateway serves it base64url
// encoded; the decoded bytes are returned.
func (a *Arweave) Data(ctx context.Context, id string) ([]byte, error) {
	res, err := a.r(ctx).Get("/tx/" + id + "/data")
	if err != nil {
		return nil, apperrors.LedgerUnavailable("data fetch failed", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, apperrors.NotFound("transaction not found")
	}
	if res.IsError() {
		return nil, apperrors.LedgerUnavailable(
			fmt.Sprintf("data fetch returned %d", res.StatusCode()), nil)
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(res.String()))
	if err != nil {
		return nil, apperrors.Deserialization("transaction data is not base64url", err)
	}
	return data, nil
}

// Balance returns the wallet balance in winston.
func (a *Arweave) Balance(ctx context.Context, address string) (int64, error) {
	res, err := a.r(ctx).Get("/wallet/" + address + "/balance")
	if err != nil {
		return 0, apperrors.LedgerUnavailable("balance lookup failed", err)
	}
	if res.IsError() {
		return 0, apperrors.LedgerUnavailable(
			fmt.Sprintf("balance lookup returned %d", res.StatusCode()), nil)
	}

	winston, err := strconv.ParseInt(strings.TrimSpace(res.String()), 10, 64)
	if err != nil {
		return 0, apperrors.LedgerUnavailable("balance response is not a number", err)
	}
	return winston, nil
}

// Price returns the reward in winston for a payload of the given size.
func (a *Arweave) Price(ctx context.Context, size int) (string, error) {
	res, err := a.r(ctx).Get("/price/" + strconv.Itoa(size))
	if err != nil {
		return "", apperrors.LedgerUnavailable("price lookup failed", err)
	}
	if res.IsError() {
		return "", apperrors.LedgerUnavailable(
			fmt.Sprintf("price lookup returned %d", res.StatusCode()), nil)
	}
	return strings.TrimSpace(res.String()), nil
}

// Anchor returns the current transaction anchor.
func (a *Arweave) Anchor(ctx context.Context) (string, error) {
	res, err := a.r(ctx).Get("/tx_anchor")
	if err != nil {
		return "", apperrors.LedgerUnavailable("anchor fetch failed", err)
	}
	if res.IsError() {
		return "", apperrors.LedgerUnavailable(
			fmt.Sprintf("anchor fetch returned %d", res.StatusCode()), nil)
	}
	return strings.TrimSpace(res.String()), nil
}

// Submit posts a signed transaction. Submission is not retried; the ledger's
// eventual-inclusion semantics are relied upon.
func (a *Arweave) Submit(ctx context.Context, tx *Transaction) error {
	res, err := a.r(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tx).
		Post("/tx")
	if err != nil {
		return apperrors.LedgerUnavailable("transaction submission failed", err)
	}
	if res.IsError() {
		return apperrors.LedgerUnavailable(
			fmt.Sprintf("transaction submission returned %d: %s", res.StatusCode(), res.String()), nil)
	}

	a.logger.Info("transaction submitted", "id", tx.ID)
	return nil
}

// Status performs one confirmation lookup. A 202 or 404 means the
// transaction is still pending; both are valid non-error outcomes right
// after submission.
func (a *Arweave) Status(ctx context.Context, id string) (*TxStatus, error) {
	res, err := a.r(ctx).Get("/tx/" + id + "/status")
	if err != nil {
		return nil, apperrors.LedgerUnavailable("status lookup failed", err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
		return &TxStatus{Confirmed: true}, nil
	case http.StatusAccepted, http.StatusNotFound:
		return &TxStatus{Confirmed: false}, nil
	default:
		return nil, apperrors.LedgerUnavailable(
			fmt.Sprintf("status lookup returned %d", res.StatusCode()), nil)
	}
}
