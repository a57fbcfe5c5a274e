package auth

import (
	"testing"
	"time"

	"github.com/Daskott/aidline/server/auth/key"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("open-sesame")
	assert.Nil(t, err)

	assert.True(t, CheckPasswordHash("open-sesame", hash))
	assert.False(t, CheckPasswordHash("open sesame", hash))
	assert.False(t, CheckPasswordHash("open-sesame", ""))
}

func TestEncodeAndDecodeJWT(t *testing.T) {
	keyPair, err := key.NewKeyPair(key.GenerateTestPem())
	assert.Nil(t, err)

	tokenString, err := EncodeJWT(OwnerClaims(time.Now()), keyPair)
	assert.Nil(t, err)

	claims, err := DecodeJWT(tokenString, keyPair)
	assert.Nil(t, err)
	assert.Equal(t, OWNER_SUBJECT, claims.Subject)
	assert.Equal(t, TOKEN_ISSUER, claims.Issuer)
}

func TestDecodeJWTRejects(t *testing.T) {
	keyPair, _ := key.NewKeyPair(key.GenerateTestPem())
	otherKeyPair, _ := key.NewKeyPair(key.GenerateTestPem())

	expired, err := EncodeJWT(OwnerClaims(time.Now().Add(-2*TOKEN_LIFETIME)), keyPair)
	assert.Nil(t, err)

	signedByOther, err := EncodeJWT(OwnerClaims(time.Now()), otherKeyPair)
	assert.Nil(t, err)

	cases := []struct {
		description string
		token       string
	}{
		{"expired token", expired},
		{"token signed with another key", signedByOther},
		{"garbage", "not.a.jwt"},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := DecodeJWT(c.token, keyPair)
			assert.NotNil(t, err)
		})
	}
}
