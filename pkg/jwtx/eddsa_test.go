package jwtx_test

import (
	"testing"
	"time"

	"github.com/arcanajournal/arcana/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	kp, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("acct-1", "rowan", true, "arcana", time.Hour, time.Now())
	raw, err := kp.Sign(claims)
	require.NoError(t, err)

	got, err := kp.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "acct-1", got.Subject)
	require.Equal(t, "rowan", got.Username)
	require.True(t, got.Admin)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	a, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)
	b, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)

	raw, err := a.Sign(jwtx.NewAccessClaims("acct-1", "rowan", false, "arcana", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	kp, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("acct-1", "rowan", false, "arcana", -time.Minute, time.Now().Add(-time.Hour))
	raw, err := kp.Sign(claims)
	require.NoError(t, err)

	_, err = kp.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}
