package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed access tokens.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier checks token signatures and returns the embedded claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

var ErrInvalidToken = errors.New("jwtx: invalid token")

// EdDSAKeypair signs and verifies tokens with a single Ed25519 key. Keys are
// generated at process start; tokens do not survive a restart.
type EdDSAKeypair struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewEphemeralKeypair generates a fresh Ed25519 keypair.
func NewEphemeralKeypair() (*EdDSAKeypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	return &EdDSAKeypair{priv: priv, pub: pub}, nil
}

func (k *EdDSAKeypair) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(k.priv)
}

func (k *EdDSAKeypair) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Header["alg"])
		}
		return k.pub, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
