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

type DecksHandler struct {
	DeckService *service.DeckService
}

func writeDeckError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrDeckNotFound):
		journalsdk.ErrNotFound.WithDescription("no such deck").WriteError(w)
	case errors.Is(err, service.ErrInvalidDeckName):
		journalsdk.ErrInvalidRequest.WithDescription("name must not be blank").WriteError(w)
	default:
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Create a deck
//	@Tags			Decks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.DeckRequest		true	"name, description, card_count"
//	@Success		201		{object}	journalsdk.DeckResponse		"the deck"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/decks [post].
func (h *DecksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	d, err := h.DeckService.Create(ctx, httpx.AccountIDFromCtx(ctx), req.Name, req.Description, req.CardCount)
	if err != nil {
		if !writeDeckError(w, err) {
			log.Error("deck create failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, deckResponse(d))
}

// HandleGet godoc
//
//	@Summary		Get a deck
//	@Tags			Decks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Deck ID"
//	@Success		200	{object}	journalsdk.DeckResponse		"the deck"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such deck"
//	@Router			/v1/decks/{id} [get].
func (h *DecksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := h.DeckService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeDeckError(w, err) {
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, deckResponse(d))
}

// HandleList godoc
//
//	@Summary		List the caller's decks
//	@Tags			Decks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		journalsdk.DeckResponse		"the decks"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/decks [get].
func (h *DecksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	decks, err := h.DeckService.List(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		log.Error("deck list failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]journalsdk.DeckResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, deckResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Update a deck
//	@Tags			Decks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Deck ID"
//	@Param			body	body		journalsdk.DeckRequest		true	"name, description, card_count"
//	@Success		200		{object}	journalsdk.DeckResponse		"the updated deck"
//	@Failure		404		{object}	journalsdk.ErrorResponse	"no such deck"
//	@Router			/v1/decks/{id} [put].
func (h *DecksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	d, err := h.DeckService.Update(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), req.Name, req.Description, req.CardCount)
	if err != nil {
		if !writeDeckError(w, err) {
			log.Error("deck update failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, deckResponse(d))
}

// HandleDelete godoc
//
//	@Summary		Delete a deck
//	@Description	Removes the deck. Existing readings keep their deck_id; it
//	@Description	simply no longer resolves.
//	@Tags			Decks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Deck ID"
//	@Success		204	"deck removed"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such deck"
//	@Router			/v1/decks/{id} [delete].
func (h *DecksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.DeckService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeDeckError(w, err) {
			log.Error("deck delete failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
