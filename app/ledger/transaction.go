package ledger

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// txID derives the transaction id: base64url(SHA-256(signature)).
func txID(sig []byte) string {
	h := sha256.Sum256(sig)
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// Transaction is a legacy format-1 Arweave transaction. Format 1 signs the
// concatenated field bytes directly, which keeps signing self-contained (no
// chunked data root is needed for payloads this small).
type Transaction struct {
	Format    int
	ID        string
	LastTx    string
	Owner     []byte
	Tags      []Tag
	Target    string
	Quantity  string
	Data      []byte
	Reward    string
	Signature []byte
}

// NewTransaction builds an unsigned transaction carrying the given payload
// and tag set.
func NewTransaction(data []byte, tags []Tag, anchor, reward string, owner []byte) *Transaction {
	return &Transaction{
		Format:   1,
		LastTx:   anchor,
		Owner:    owner,
		Tags:     tags,
		Quantity: "0",
		Data:     data,
		Reward:   reward,
	}
}

// signaturePayload concatenates the fields covered by a format-1 signature:
// owner, target, data, quantity, reward, last_tx, then each tag's name and
// value in order.
func (t *Transaction) signaturePayload() []byte {
	lastTx, _ := base64.RawURLEncoding.DecodeString(t.LastTx)

	var buf []byte
	buf = append(buf, t.Owner...)
	buf = append(buf, []byte(t.Target)...)
	buf = append(buf, t.Data...)
	buf = append(buf, []byte(t.Quantity)...)
	buf = append(buf, []byte(t.Reward)...)
	buf = append(buf, lastTx...)
	for _, tag := range t.Tags {
		buf = append(buf, []byte(tag.Name)...)
		buf = append(buf, []byte(tag.Value)...)
	}
	return buf
}

// Sign signs the transaction with the wallet and derives its id from the
// signature. The id is only valid after signing.
func (t *Transaction) Sign(w *Wallet) error {
	sig, err := w.Sign(t.signaturePayload())
	if err != nil {
		return err
	}

	t.Signature = sig
	t.ID = txID(sig)
	return nil
}

// MarshalJSON encodes the transaction in the gateway wire format, with all
// binary fields base64url encoded.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	type wireTag struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	tags := make([]wireTag, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = wireTag{
			Name:  base64.RawURLEncoding.EncodeToString([]byte(tag.Name)),
			Value: base64.RawURLEncoding.EncodeToString([]byte(tag.Value)),
		}
	}

	return json.Marshal(map[string]any{
		"format":    t.Format,
		"id":        t.ID,
		"last_tx":   t.LastTx,
		"owner":     base64.RawURLEncoding.EncodeToString(t.Owner),
		"tags":      tags,
		"target":    t.Target,
		"quantity":  t.Quantity,
		"data":      base64.RawURLEncoding.EncodeToString(t.Data),
		"reward":    t.Reward,
		"signature": base64.RawURLEncoding.EncodeToString(t.Signature),
	})
}
