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

type SpreadsHandler struct {
	SpreadService *service.SpreadService
}

func writeSpreadError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrSpreadNotFound):
		journalsdk.ErrNotFound.WithDescription("no such spread").WriteError(w)
	case errors.Is(err, service.ErrInvalidSpreadName):
		journalsdk.ErrInvalidRequest.WithDescription("name must not be blank").WriteError(w)
	default:
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Create a spread
//	@Description	Records a card layout: a named, ordered list of positions.
//	@Tags			Spreads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.SpreadRequest	true	"name, description, positions"
//	@Success		201		{object}	journalsdk.SpreadResponse	"the spread"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/spreads [post].
func (h *SpreadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.SpreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	sp, err := h.SpreadService.Create(ctx, httpx.AccountIDFromCtx(ctx), req.Name, req.Description, req.Positions)
	if err != nil {
		if !writeSpreadError(w, err) {
			log.Error("spread create failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, spreadResponse(sp))
}

// HandleGet godoc
//
//	@Summary		Get a spread
//	@Tags			Spreads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Spread ID"
//	@Success		200	{object}	journalsdk.SpreadResponse	"the spread"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such spread"
//	@Router			/v1/spreads/{id} [get].
func (h *SpreadsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sp, err := h.SpreadService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeSpreadError(w, err) {
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, spreadResponse(sp))
}

// HandleList godoc
//
//	@Summary		List the caller's spreads
//	@Tags			Spreads
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		journalsdk.SpreadResponse	"the spreads"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/spreads [get].
func (h *SpreadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	spreads, err := h.SpreadService.List(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		log.Error("spread list failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]journalsdk.SpreadResponse, 0, len(spreads))
	for _, sp := range spreads {
		out = append(out, spreadResponse(sp))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Update a spread
//	@Tags			Spreads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Spread ID"
//	@Param			body	body		journalsdk.SpreadRequest	true	"name, description, positions"
//	@Success		200		{object}	journalsdk.SpreadResponse	"the updated spread"
//	@Failure		404		{object}	journalsdk.ErrorResponse	"no such spread"
//	@Router			/v1/spreads/{id} [put].
func (h *SpreadsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.SpreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	sp, err := h.SpreadService.Update(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), req.Name, req.Description, req.Positions)
	if err != nil {
		if !writeSpreadError(w, err) {
			log.Error("spread update failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, spreadResponse(sp))
}

// HandleDelete godoc
//
//	@Summary		Delete a spread
//	@Tags			Spreads
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Spread ID"
//	@Success		204	"spread removed"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such spread"
//	@Router			/v1/spreads/{id} [delete].
func (h *SpreadsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.SpreadService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeSpreadError(w, err) {
			log.Error("spread delete failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
