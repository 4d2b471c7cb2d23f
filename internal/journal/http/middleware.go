package http

import (
	"net/http"

	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/pkg/httpx"
	"github.com/arcanajournal/arcana/pkg/journalsdk"
	"github.com/arcanajournal/arcana/pkg/slogx"
)

// ActiveAccountMiddleware rejects requests from accounts pending deletion.
// Must run after AuthnMiddleware. The lifecycle endpoints (profile, restore,
// hard delete) are wired without it so a soft-deleted account can still act
// on its own deletion.
func ActiveAccountMiddleware(accounts *service.AccountService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			accountID := httpx.AccountIDFromCtx(ctx)
			if accountID == "" {
				journalsdk.ErrUnauthorized.WriteError(w)
				return
			}

			a, err := accounts.GetByID(ctx, accountID)
			if err != nil {
				// The account behind a valid token is gone: purged.
				slogx.FromContext(ctx).Warn("token for missing account",
					"account_id", accountID, "err", err)
				journalsdk.ErrUnauthorized.WriteError(w)
				return
			}
			if a.Deleted {
				journalsdk.ErrAccountDeleted.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
