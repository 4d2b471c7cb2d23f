package service

import (
	"context"
	"errors"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/pkg/cryptox"
	"github.com/arcanajournal/arcana/pkg/jwtx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenService exchanges credentials for access tokens. Soft-deleted
// accounts can still log in; they need a session to cancel the deletion.
type TokenService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration

	Now func() time.Time
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.TTL
}

// Login verifies the password and mints an access token.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, time.Duration, error) {
	a, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		// Burn time anyway so missing users are indistinguishable from
		// wrong passwords.
		_ = cryptox.VerifyPassword(password, "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
		return "", 0, ErrInvalidCredentials
	}
	if err != nil {
		return "", 0, err
	}

	if err := cryptox.VerifyPassword(password, a.PasswordHash); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	ttl := s.ttl()
	claims := jwtx.NewAccessClaims(a.ID, a.Username, a.Admin, s.Issuer, ttl, s.now())
	raw, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return raw, ttl, nil
}
