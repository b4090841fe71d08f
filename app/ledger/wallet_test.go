package ledger

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rantbox/app/apperrors"
)

func testJWK(t *testing.T) ([]byte, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	enc := base64.RawURLEncoding.EncodeToString
	raw, err := json.Marshal(map[string]string{
		"kty": "RSA",
		"n":   enc(key.N.Bytes()),
		"e":   enc([]byte{1, 0, 1}),
		"d":   enc(key.D.Bytes()),
		"p":   enc(key.Primes[0].Bytes()),
		"q":   enc(key.Primes[1].Bytes()),
	})
	require.NoError(t, err)

	return raw, key
}

func TestParseWallet(t *testing.T) {
	raw, key := testJWK(t)

	w, err := ParseWallet(raw)
	require.NoError(t, err)

	assert.Equal(t, key.N.Bytes(), w.Owner())

	wantAddr := sha256.Sum256(key.N.Bytes())
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(wantAddr[:]), w.Address())
}

func TestParseWalletRejectsGarbage(t *testing.T) {
	_, err := ParseWallet([]byte("not json"))
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))

	_, err = ParseWallet([]byte(`{"kty":"EC"}`))
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))

	_, err = ParseWallet([]byte(`{"kty":"RSA","n":"","e":"AQAB"}`))
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
}

func TestWalletSign(t *testing.T) {
	raw, key := testJWK(t)
	w, err := ParseWallet(raw)
	require.NoError(t, err)

	message := []byte("let it all out")
	sig, err := w.Sign(message)
	require.NoError(t, err)

	digest := sha256.Sum256(message)
	err = rsa.VerifyPSS(&key.PublicKey, crypto.SHA256, digest[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
		Hash:       crypto.SHA256,
	})
	assert.NoError(t, err)
}
