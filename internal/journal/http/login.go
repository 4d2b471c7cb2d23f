package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/pkg/httpx"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
	"github.com/arcanajournal/arcana/pkg/slogx"
)

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges username and password for a bearer access token.
//	@Description	Accounts pending deletion can still log in; they need a
//	@Description	session to cancel the deletion.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.LoginRequest		true	"username, password"
//	@Success		200		{object}	journalsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	journalsdk.ErrorResponse	"invalid credentials"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		journalsdk.ErrInvalidRequest.WithDescription("username and password are required").WriteError(w)
		return
	}

	token, ttl, err := h.TokenService.Login(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		journalsdk.ErrUnauthorized.WithDescription("invalid credentials").WriteError(w)
		return
	case err != nil:
		log.Error("login failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, journalsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	})
}
