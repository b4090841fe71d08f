package ledger

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"rantbox/app/apperrors"
)

// Wallet is an Arweave RSA keypair loaded from a JWK file. It signs
// transactions with RSA-PSS over SHA-256.
type Wallet struct {
	key *rsa.PrivateKey

	// owner is the raw public modulus, which Arweave uses as the tx owner.
	owner []byte
}

type jwk struct {
	KTY string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d"`
	P   string `json:"p"`
	Q   string `json:"q"`
}

// LoadWallet reads and parses an RSA JWK wallet file.
func LoadWallet(path string) (*Wallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, "cannot read wallet file", err)
	}
	return ParseWallet(raw)
}

// ParseWallet parses JWK bytes into a signing wallet.
func ParseWallet(raw []byte) (*Wallet, error) {
	var k jwk
	if err := json.Unmarshal(raw, &k); err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, "wallet file is not valid JWK", err)
	}
	if k.KTY != "RSA" {
		return nil, apperrors.Configuration(fmt.Sprintf("unsupported wallet key type %q", k.KTY))
	}

	n, err := b64Field(k.N)
	if err != nil {
		return nil, err
	}
	e, err := b64Field(k.E)
	if err != nil {
		return nil, err
	}
	d, err := b64Field(k.D)
	if err != nil {
		return nil, err
	}
	p, err := b64Field(k.P)
	if err != nil {
		return nil, err
	}
	q, err := b64Field(k.Q)
	if err != nil {
		return nil, err
	}

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(n),
			E: int(new(big.Int).SetBytes(e).Int64()),
		},
		D:      new(big.Int).SetBytes(d),
		Primes: []*big.Int{new(big.Int).SetBytes(p), new(big.Int).SetBytes(q)},
	}
	if err := key.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, "wallet key is invalid", err)
	}
	key.Precompute()

	return &Wallet{key: key, owner: n}, nil
}

func b64Field(s string) ([]byte, error) {
	if s == "" {
		return nil, apperrors.Configuration("wallet JWK is missing a required field")
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindConfiguration, "wallet JWK field is not base64url", err)
	}
	return b, nil
}

// Owner returns the raw public modulus bytes.
func (w *Wallet) Owner() []byte {
	return w.owner
}

// Address derives the wallet address: base64url(SHA-256(modulus)).
func (w *Wallet) Address() string {
	h := sha256.Sum256(w.owner)
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// Sign produces an RSA-PSS signature over SHA-256(message).
func (w *Wallet) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPSS(rand.Reader, w.key, crypto.SHA256, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return sig, nil
}
