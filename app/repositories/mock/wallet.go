package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"rantbox/app/ledger"
)

// NewWallet generates a throwaway RSA keypair and returns it as a signing
// wallet, for tests that exercise the write pipeline.
func NewWallet() (*ledger.Wallet, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate test key: %w", err)
	}

	enc := base64.RawURLEncoding.EncodeToString
	jwk, err := json.Marshal(map[string]string{
		"kty": "RSA",
		"n":   enc(key.N.Bytes()),
		"e":   enc([]byte{1, 0, 1}),
		"d":   enc(key.D.Bytes()),
		"p":   enc(key.Primes[0].Bytes()),
		"q":   enc(key.Primes[1].Bytes()),
	})
	if err != nil {
		return nil, err
	}

	return ledger.ParseWallet(jwk)
}
