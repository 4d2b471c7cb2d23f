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

type TagsHandler struct {
	TagService *service.TagService
}

// HandleCreate godoc
//
//	@Summary		Create a tag
//	@Description	Creates (or resolves to) a tag in the caller's namespace.
//	@Description	Setting global requires admin rights and places the tag in
//	@Description	the shared namespace. A personal tag whose name collides
//	@Description	with a global one is rejected.
//	@Tags			Tags
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		journalsdk.TagRequest		true	"name, global"
//	@Success		201		{object}	journalsdk.TagResponse		"the tag"
//	@Failure		400		{object}	journalsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	journalsdk.ErrorResponse	"global tags are admin-only"
//	@Failure		409		{object}	journalsdk.ErrorResponse	"name reserved by a global tag"
//	@Router			/v1/tags [post].
func (h *TagsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req journalsdk.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		journalsdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	ownerID := httpx.AccountIDFromCtx(ctx)
	if req.Global {
		if !httpx.IsAdminFromCtx(ctx) {
			journalsdk.ErrForbidden.WithDescription("global tags are admin-only").WriteError(w)
			return
		}
		ownerID = domain.GlobalOwner
	}

	tag, err := h.TagService.ResolveOrCreate(ctx, req.Name, ownerID)
	switch {
	case errors.Is(err, service.ErrInvalidTagName):
		journalsdk.ErrInvalidRequest.WithDescription("name must not be blank").WriteError(w)
		return
	case errors.Is(err, service.ErrTagReservedGlobally):
		journalsdk.ErrTagReserved.WriteError(w)
		return
	case err != nil:
		log.Error("tag create failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tagResponse(tag))
}

// HandleList godoc
//
//	@Summary		List tags
//	@Description	Returns the caller's personal tags plus all global tags.
//	@Tags			Tags
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		journalsdk.TagResponse		"the visible tags"
//	@Failure		401	{object}	journalsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/tags [get].
func (h *TagsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tags, err := h.TagService.List(ctx, httpx.AccountIDFromCtx(ctx))
	if err != nil {
		log.Error("tag list failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]journalsdk.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete godoc
//
//	@Summary		Delete a tag
//	@Description	Personal tags may be deleted by their owner, global tags
//	@Description	only by admins. Readings keep working; they simply lose
//	@Description	the label.
//	@Tags			Tags
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Tag ID"
//	@Success		204	"tag removed"
//	@Failure		403	{object}	journalsdk.ErrorResponse	"not allowed to delete this tag"
//	@Failure		404	{object}	journalsdk.ErrorResponse	"no such tag"
//	@Router			/v1/tags/{id} [delete].
func (h *TagsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.TagService.Delete(ctx, r.PathValue("id"), httpx.AccountIDFromCtx(ctx), httpx.IsAdminFromCtx(ctx))
	switch {
	case errors.Is(err, service.ErrTagNotFound):
		journalsdk.ErrNotFound.WithDescription("no such tag").WriteError(w)
		return
	case errors.Is(err, service.ErrGlobalTagAdminOnly), errors.Is(err, service.ErrTagDeleteNotAllowed):
		journalsdk.ErrForbidden.WriteError(w)
		return
	case err != nil:
		log.Error("tag delete failed", "err", err)
		journalsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
