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

type QuerentsHandler struct {
	QuerentService *service.QuerentService
}

func writeQuerentError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrQuerentNotFound):
		journalsdk.ErrNotFound.WithDescription("no such querent").WriteError(w)
	case errors.Is(err, service.ErrInvalidQuerentName):
		journalsdk.ErrInvalidRequest.WithDescription("name must not be blank").WriteError(w)
	case errors.Is(err, service.ErrGlobalQuerentLocked):
		journalsdk.ErrForbidden.WithDescription("global querents cannot be modified").WriteError(w)
	case errors.Is(err, service.ErrQuerentNotOwned):
		journalsdk.ErrForbidden.WriteError(w)
	default:
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Create a querent
//	@Description	Adds a person readings can be performed for. Creating a
//	@Description	querent with an existing name resolves to the existing
//	@Description	record.
//	@Tags			Querents
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.QuerentRequest	true	"name, description"
//	@Success		201		{object}	journalsdk.QuerentResponse	"the querent"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/querents [post].
func (h *QuerentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.QuerentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	q, err := h.QuerentService.Create(ctx, req.Name, req.Description, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeQuerentError(w, err) {
			log.Error("querent create failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, querentResponse(q))
}

// HandleGet godoc
//
//	@Summary		Get a querent
//	@Tags			Querents
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Querent ID"
//	@Success		200	{object}	journalsdk.QuerentResponse	"the querent"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such querent"
//	@Router			/v1/querents/{id} [get].
func (h *QuerentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := h.QuerentService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeQuerentError(w, err) {
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, querentResponse(q))
}

// HandleList godoc
//
//	@Summary		List querents
//	@Description	Returns the caller's querents plus the shared ones, Self
//	@Description	included once any reading has referenced it.
//	@Tags			Querents
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		journalsdk.QuerentResponse	"the visible querents"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/querents [get].
func (h *QuerentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	querents, err := h.QuerentService.List(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		log.Error("querent list failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]journalsdk.QuerentResponse, 0, len(querents))
	for _, q := range querents {
		out = append(out, querentResponse(q))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Update a querent
//	@Tags			Querents
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Querent ID"
//	@Param			body	body		journalsdk.QuerentRequest	true	"name, description"
//	@Success		200		{object}	journalsdk.QuerentResponse	"the updated querent"
//	@Failure		403		{object}	journalsdk.ErrorResponse	"global querents cannot be modified"
//	@Failure		404		{object}	journalsdk.ErrorResponse	"no such querent"
//	@Router			/v1/querents/{id} [put].
func (h *QuerentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.QuerentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	q, err := h.QuerentService.Update(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), req.Name, req.Description)
	if err != nil {
		if !writeQuerentError(w, err) {
			log.Error("querent update failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, querentResponse(q))
}

// HandleDelete godoc
//
//	@Summary		Delete a querent
//	@Tags			Querents
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Querent ID"
//	@Success		204	"querent removed"
//	@Failure		403	{object}	journalsdk.ErrorResponse	"global querents cannot be modified"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such querent"
//	@Router			/v1/querents/{id} [delete].
func (h *QuerentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.QuerentService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeQuerentError(w, err) {
			log.Error("querent delete failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
