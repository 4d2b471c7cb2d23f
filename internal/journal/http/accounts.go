package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/pkg/httpx"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
	"github.com/arcanajournal/arcana/pkg/slogx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
	Policy         domain.RetentionPolicy
}

// HandleRegister godoc
//
//	@Summary		Register a new account
//	@Description	Creates an active journal account. Usernames are unique.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	journalsdk.AccountResponse	"the created account"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	journalsdk.ErrorResponse	"username already taken"
//	@Router			/v1/accounts [post].
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	a, err := h.AccountService.Register(ctx, req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidRegistration):
		journalsdk.ErrInvalidRequest.WithDescription("username and password are required").WriteError(w)
		return
	case errors.Is(err, service.ErrUsernameTaken):
		journalsdk.ErrConflict.WithDescription("username already taken").WriteError(w)
		return
	case err != nil:
		log.Error("registration failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("account registered", "account_id", a.ID, "username", a.Username)
	httpx.WriteJSON(w, http.StatusCreated, accountResponse(a, h.Policy.PurgeDate(a)))
}

// HandleMe godoc
//
//	@Summary		Get the caller's account
//	@Description	Returns the authenticated account, including its deletion
//	@Description	status and scheduled purge date when a deletion is pending.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	journalsdk.AccountResponse	"the account"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/me [get].
func (h *AccountsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.AccountService.GetByID(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		journalsdk.ErrUnauthorized.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountResponse(a, h.Policy.PurgeDate(a)))
}

// HandleRequestDeletion godoc
//
//	@Summary		Request account deletion
//	@Description	Soft-deletes the caller's account. The account and its data
//	@Description	are kept for the retention period and can be restored until
//	@Description	the purge date returned in the response.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		202	{object}	journalsdk.AccountResponse	"the account with its purge date"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		409	{object}	journalsdk.ErrorResponse	"deletion already requested"
//	@Router			/v1/me [delete].
func (h *AccountsHandler) HandleRequestDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	a, err := h.AccountService.RequestDeletion(ctx, httpx.AccountIDFromCtx(ctx))
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		journalsdk.ErrUnauthorized.WriteError(w)
		return
	case errors.Is(err, service.ErrDeletionAlreadyAsked):
		journalsdk.ErrConflict.WithDescription("deletion already requested").WriteError(w)
		return
	case err != nil:
		log.Error("deletion request failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("deletion requested", "account_id", a.ID, "purge_date", h.Policy.PurgeDate(a))
	httpx.WriteJSON(w, http.StatusAccepted, accountResponse(a, h.Policy.PurgeDate(a)))
}

// HandleCancelDeletion godoc
//
//	@Summary		Cancel a pending deletion
//	@Description	Restores the caller's account to the active state and resets
//	@Description	the reminder cycle.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	journalsdk.AccountResponse	"the restored account"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		409	{object}	journalsdk.ErrorResponse	"no deletion pending"
//	@Router			/v1/me/restore [post].
func (h *AccountsHandler) HandleCancelDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	a, err := h.AccountService.CancelDeletion(ctx, httpx.AccountIDFromCtx(ctx))
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		journalsdk.ErrUnauthorized.WriteError(w)
		return
	case errors.Is(err, service.ErrNoDeletionRequested):
		journalsdk.ErrConflict.WithDescription("no deletion pending").WriteError(w)
		return
	case err != nil:
		log.Error("deletion cancel failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("deletion cancelled", "account_id", a.ID)
	httpx.WriteJSON(w, http.StatusOK, accountResponse(a, h.Policy.PurgeDate(a)))
}

// HandleHardDelete godoc
//
//	@Summary		Delete the account immediately
//	@Description	Removes the caller's account and everything it owns without
//	@Description	the retention grace period. This cannot be undone.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Success		204	"account removed"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		500	{object}	journalsdk.ErrorResponse	"removal incomplete, safe to retry"
//	@Router			/v1/me/hard [delete].
func (h *AccountsHandler) HandleHardDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	accountID := httpx.AccountIDFromCtx(ctx)

	err := h.AccountService.HardDelete(ctx, accountID)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		journalsdk.ErrUnauthorized.WriteError(w)
		return
	case err != nil:
		log.Error("hard delete failed", "account_id", accountID, "err", err)
		journalsdk.ErrServerError.WithDescription("removal incomplete, retry the request").WriteError(w)
		return
	}

	log.Info("account hard-deleted", "account_id", accountID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleAdminRestore godoc
//
//	@Summary		Restore any account (admin)
//	@Description	Restores a soft-deleted account on behalf of its owner.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Account ID"
//	@Success		200	{object}	journalsdk.AccountResponse	"the restored account"
//	@Failure		403	{object}	journalsdk.ErrorResponse	"caller is not an admin"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such account"
//	@Failure		409	{object}	journalsdk.ErrorResponse	"no deletion pending"
//	@Router			/v1/accounts/{id}/restore [post].
func (h *AccountsHandler) HandleAdminRestore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	targetID := r.PathValue("id")

	a, err := h.AccountService.Restore(ctx, httpx.AccountIDFromCtx(ctx), targetID)
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		journalsdk.ErrForbidden.WriteError(w)
		return
	case errors.Is(err, service.ErrAccountNotFound):
		journalsdk.ErrNotFound.WithDescription("no such account").WriteError(w)
		return
	case errors.Is(err, service.ErrNoDeletionRequested):
		journalsdk.ErrConflict.WithDescription("no deletion pending").WriteError(w)
		return
	case err != nil:
		log.Error("admin restore failed", "target_id", targetID, "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("account restored by admin", "account_id", a.ID)
	httpx.WriteJSON(w, http.StatusOK, accountResponse(a, h.Policy.PurgeDate(a)))
}
