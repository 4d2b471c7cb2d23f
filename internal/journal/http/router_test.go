package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/internal/journal/store/drivers/sqlite"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
	"github.com/arcanajournal/arcana/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	keys, err := jwtx.NewEphemeralKeypair()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	purger := &service.AccountPurger{Store: st}
	tags := &service.TagService{Store: st}
	querents := &service.QuerentService{Store: st}
	decks := &service.DeckService{Store: st}
	spreads := &service.SpreadService{Store: st}

	r := NewRouter(keys, "test", st, logger)
	r.AccountService = &service.AccountService{Store: st, Purger: purger}
	r.TokenService = &service.TokenService{Store: st, Signer: keys, Issuer: "arcana-test"}
	r.TagService = tags
	r.QuerentService = querents
	r.DeckService = decks
	r.SpreadService = spreads
	r.ReadingService = &service.ReadingService{
		Store:    st,
		Tags:     tags,
		Querents: querents,
		Decks:    decks,
		Spreads:  spreads,
	}
	r.ApplyRoutes()

	return r, st
}

func doJSON(t *testing.T, r *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// registerAndLogin creates an account over the API and returns its id and an
// access token.
func registerAndLogin(t *testing.T, r *Router, username string) (string, string) {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/v1/accounts", "", journalsdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var account journalsdk.AccountResponse
	decodeInto(t, rec, &account)

	rec = doJSON(t, r, http.MethodPost, "/v1/auth/login", "", journalsdk.LoginRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var tok journalsdk.TokenResponse
	decodeInto(t, rec, &tok)
	require.NotEmpty(t, tok.AccessToken)
	require.Equal(t, "Bearer", tok.TokenType)

	return account.ID, tok.AccessToken
}

func TestRegisterLoginMe(t *testing.T) {
	r, _ := newTestRouter(t)

	id, token := registerAndLogin(t, r, "rowan")

	rec := doJSON(t, r, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me journalsdk.AccountResponse
	decodeInto(t, rec, &me)
	require.Equal(t, id, me.ID)
	require.Equal(t, "rowan", me.Username)
	require.False(t, me.PendingDeletion)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAndLogin(t, r, "rowan")

	rec := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", journalsdk.LoginRequest{
		Username: "rowan",
		Password: "not the password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr journalsdk.ErrorResponse
	decodeInto(t, rec, &apiErr)
	require.Equal(t, journalsdk.ErrCodeUnauthorized, apiErr.Error)
}

func TestDeletionLifecycleOverAPI(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := registerAndLogin(t, r, "rowan")

	// Request deletion.
	rec := doJSON(t, r, http.MethodDelete, "/v1/me", token, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var me journalsdk.AccountResponse
	decodeInto(t, rec, &me)
	require.True(t, me.PendingDeletion)
	require.NotEmpty(t, me.PurgeDate)

	// CRUD is gated while the deletion is pending.
	rec = doJSON(t, r, http.MethodPost, "/v1/decks", token, journalsdk.DeckRequest{Name: "Marseille"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	var apiErr journalsdk.ErrorResponse
	decodeInto(t, rec, &apiErr)
	require.Equal(t, journalsdk.ErrCodeAccountDeleted, apiErr.Error)

	// The lifecycle endpoints are not.
	rec = doJSON(t, r, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/v1/me/restore", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	// Reset: the deletion fields are omitempty, so decoding would otherwise
	// keep the stale values from the previous response.
	me = journalsdk.AccountResponse{}
	decodeInto(t, rec, &me)
	require.False(t, me.PendingDeletion)
	require.Empty(t, me.PurgeDate)

	// Restored accounts get their CRUD back.
	rec = doJSON(t, r, http.MethodPost, "/v1/decks", token, journalsdk.DeckRequest{Name: "Marseille"})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminRestoreRequiresAdmin(t *testing.T) {
	r, _ := newTestRouter(t)
	targetID, targetToken := registerAndLogin(t, r, "rowan")
	_, otherToken := registerAndLogin(t, r, "meddler")

	rec := doJSON(t, r, http.MethodDelete, "/v1/me", targetToken, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/v1/accounts/"+targetID+"/restore", otherToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHardDeleteRemovesAccount(t *testing.T) {
	r, st := newTestRouter(t)
	id, token := registerAndLogin(t, r, "rowan")

	rec := doJSON(t, r, http.MethodPost, "/v1/decks", token, journalsdk.DeckRequest{Name: "Marseille"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/v1/me/hard", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := st.Accounts().GetAccountByID(t.Context(), id)
	require.ErrorIs(t, err, store.ErrNotFound)

	// The token outlives the account but no longer authenticates.
	rec = doJSON(t, r, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReadingRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)
	_, token := registerAndLogin(t, r, "rowan")

	rec := doJSON(t, r, http.MethodPost, "/v1/decks", token, journalsdk.DeckRequest{Name: "Rider-Waite", CardCount: 78})
	require.Equal(t, http.StatusCreated, rec.Code)
	var deck journalsdk.DeckResponse
	decodeInto(t, rec, &deck)

	rec = doJSON(t, r, http.MethodPost, "/v1/readings", token, journalsdk.ReadingRequest{
		Title:   "Morning pull",
		Querent: "self",
		DeckID:  deck.ID,
		Cards:   []journalsdk.CardDraw{{Card: "The Star"}},
		Tags:    []string{"focus"},
		ReadAt:  "2026-08-30T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reading journalsdk.ReadingResponse
	decodeInto(t, rec, &reading)
	require.Equal(t, deck.ID, reading.DeckID)
	require.NotEmpty(t, reading.QuerentID)
	require.Len(t, reading.Tags, 1)
	require.Equal(t, "focus", reading.Tags[0].Name)

	rec = doJSON(t, r, http.MethodGet, "/v1/readings/"+reading.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched journalsdk.ReadingResponse
	decodeInto(t, rec, &fetched)
	require.Equal(t, reading.ID, fetched.ID)
	require.Equal(t, "Morning pull", fetched.Title)
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health journalsdk.HealthResponse
	decodeInto(t, rec, &health)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
