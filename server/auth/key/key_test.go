package key

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyPair(t *testing.T) {
	keyPair, err := NewKeyPair(GenerateTestPem())
	assert.Nil(t, err)
	assert.Equal(t, KEY_ID, keyPair.Kid)
	assert.Equal(t, &keyPair.PrivateKey.PublicKey, keyPair.PublicKey)

	_, err = NewKeyPair([]byte("not a pem"))
	assert.NotNil(t, err)
}

func TestJWKRoundTrip(t *testing.T) {
	keyPair, err := NewKeyPair(GenerateTestPem())
	assert.Nil(t, err)

	keyPairJWK, err := keyPair.JWK()
	assert.Nil(t, err)
	assert.Equal(t, KEY_ID, keyPairJWK.KeyID())

	publicKey, err := PublicKeyFromJWK(keyPairJWK)
	assert.Nil(t, err)
	assert.True(t, keyPair.PublicKey.Equal(publicKey))

	body, err := json.Marshal(ExportJWKAsJWKS(keyPairJWK))
	assert.Nil(t, err)
	assert.Contains(t, string(body), `"kid":"aidline-key-id"`)
	assert.Contains(t, string(body), `"kty":"RSA"`)
}
