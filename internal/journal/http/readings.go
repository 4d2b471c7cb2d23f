package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/pkg/httpx"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
	"github.com/arcanajournal/arcana/pkg/slogx"
)

type ReadingsHandler struct {
	ReadingService *service.ReadingService
}

func readingInput(req journalsdk.ReadingRequest) (service.ReadingInput, error) {
	in := service.ReadingInput{
		Title:          req.Title,
		Question:       req.Question,
		Interpretation: req.Interpretation,
		Querent:        req.Querent,
		DeckID:         req.DeckID,
		SpreadID:       req.SpreadID,
		Tags:           req.Tags,
	}
	for _, c := range req.Cards {
		in.Cards = append(in.Cards, domain.CardDraw{
			Position: c.Position,
			Card:     c.Card,
			Reversed: c.Reversed,
		})
	}
	if req.ReadAt != "" {
		at, err := time.Parse(time.RFC3339, req.ReadAt)
		if err != nil {
			return service.ReadingInput{}, err
		}
		in.ReadAt = at
	}
	return in, nil
}

// writeReadingError maps reference-resolution failures onto API errors.
func writeReadingError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, service.ErrReadingNotFound):
		journalsdk.ErrNotFound.WithDescription("no such reading").WriteError(w)
	case errors.Is(err, service.ErrDeckNotFound):
		journalsdk.ErrInvalidRequest.WithDescription("deck_id does not reference one of your decks").WriteError(w)
	case errors.Is(err, service.ErrSpreadNotFound):
		journalsdk.ErrInvalidRequest.WithDescription("spread_id does not reference one of your spreads").WriteError(w)
	case errors.Is(err, service.ErrQuerentNotFound):
		journalsdk.ErrInvalidRequest.WithDescription("querent does not reference one of your querents").WriteError(w)
	case errors.Is(err, service.ErrInvalidTagName):
		journalsdk.ErrInvalidRequest.WithDescription("tags must not be blank").WriteError(w)
	default:
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Create a reading
//	@Description	Records a journal entry. Tag names are resolved to existing
//	@Description	tags or created on the fly; the querent may be a querent id
//	@Description	or the literal "self".
//	@Tags			Readings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.ReadingRequest	true	"the reading"
//	@Success		201		{object}	journalsdk.ReadingResponse	"the created reading"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/readings [post].
func (h *ReadingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	in, err := readingInput(req)
	if err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("read_at must be RFC 3339").WriteError(w)
		return
	}

	rd, tags, err := h.ReadingService.Create(ctx, httpx.AccountIDFromCtx(ctx), in)
	if err != nil {
		if !writeReadingError(w, err) {
			log.Error("reading create failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, readingResponse(rd, tags))
}

// HandleGet godoc
//
//	@Summary		Get a reading
//	@Tags			Readings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Reading ID"
//	@Success		200	{object}	journalsdk.ReadingResponse	"the reading with its tags"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such reading"
//	@Router			/v1/readings/{id} [get].
func (h *ReadingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rd, tags, err := h.ReadingService.Get(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeReadingError(w, err) {
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, readingResponse(rd, tags))
}

// HandleList godoc
//
//	@Summary		List the caller's readings
//	@Tags			Readings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		journalsdk.ReadingResponse	"the readings, newest first"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/readings [get].
func (h *ReadingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	readings, err := h.ReadingService.List(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		log.Error("reading list failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]journalsdk.ReadingResponse, 0, len(readings))
	for _, rd := range readings {
		out = append(out, readingResponse(rd, nil))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate godoc
//
//	@Summary		Update a reading
//	@Description	Replaces the reading's content and tag set.
//	@Tags			Readings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Reading ID"
//	@Param			body	body		journalsdk.ReadingRequest	true	"the new content"
//	@Success		200		{object}	journalsdk.ReadingResponse	"the updated reading"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	journalsdk.ErrorResponse	"no such reading"
//	@Router			/v1/readings/{id} [put].
func (h *ReadingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	in, err := readingInput(req)
	if err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("read_at must be RFC 3339").WriteError(w)
		return
	}

	rd, tags, err := h.ReadingService.Update(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), in)
	if err != nil {
		if !writeReadingError(w, err) {
			log.Error("reading update failed", "err", err)
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, readingResponse(rd, tags))
}

// HandleDelete godoc
//
//	@Summary		Delete a reading
//	@Tags			Readings
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Reading ID"
//	@Success		204	"reading removed"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such reading"
//	@Router			/v1/readings/{id} [delete].
func (h *ReadingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.ReadingService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx))
	if err != nil {
		if !writeReadingError(w, err) {
			journalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
