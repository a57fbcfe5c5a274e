package auth

import (
	"fmt"
	"time"

	"github.com/Daskott/aidline/server/auth/key"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	OWNER_SUBJECT  = "owner"
	TOKEN_ISSUER   = "aidline"
	TOKEN_LIFETIME = 24 * time.Hour
)

type AidlineTokenClaims struct {
	Scope string `json:"scope"`
	jwt.StandardClaims
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// OwnerClaims returns claims for the device owner, valid from 'now' for TOKEN_LIFETIME
func OwnerClaims(now time.Time) AidlineTokenClaims {
	return AidlineTokenClaims{
		Scope: "owner",
		StandardClaims: jwt.StandardClaims{
			Subject:   OWNER_SUBJECT,
			Issuer:    TOKEN_ISSUER,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TOKEN_LIFETIME).Unix(),
		},
	}
}

func EncodeJWT(claims AidlineTokenClaims, keyPair *key.KeyPair) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod("RS256"), claims)
	token.Header["kid"] = keyPair.Kid

	tokenString, err := token.SignedString(keyPair.PrivateKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func DecodeJWT(tokenString string, keyPair *key.KeyPair) (*AidlineTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AidlineTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return keyPair.PublicKey, nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid jwt: %v", err)
	}

	tokenClaims, ok := token.Claims.(*AidlineTokenClaims)
	if !ok {
		return nil, fmt.Errorf("unable to assert token.Claims to AidlineTokenClaims")
	}

	return tokenClaims, nil
}
