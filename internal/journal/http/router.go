package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/arcanajournal/arcana/internal/journal/domain"
	"github.com/arcanajournal/arcana/internal/journal/service"
	"github.com/arcanajournal/arcana/internal/journal/store"
	"github.com/arcanajournal/arcana/pkg/httpx"
	"github.com/arcanajournal/arcana/pkg/jwtx"
	"github.com/arcanajournal/arcana/pkg/slogx"

	_ "github.com/arcanajournal/arcana/api/journal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	RetentionPolicy domain.RetentionPolicy
	AccountService  *service.AccountService
	TokenService    *service.TokenService
	ReadingService  *service.ReadingService
	TagService      *service.TagService
	QuerentService  *service.QuerentService
	DeckService     *service.DeckService
	SpreadService   *service.SpreadService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerAuth()
	r.registerReadings()
	r.registerTags()
	r.registerQuerents()
	r.registerDecks()
	r.registerSpreads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Arcana Journal API
//	@version		0.1.0
//	@description	Backend for a personal tarot journal: accounts, readings, decks,
//	@description	spreads, querents and tags. All endpoints except registration,
//	@description	login and the health checks require a bearer access token.
//
//	@contact.name				Arcana Journal Team
//	@contact.url				https://github.com/arcanajournal/arcana
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, the soft-delete gate and a
// per-account rate limit. Handlers behind it can assume an active account.
func (r *Router) secured(h http.Handler, cfg httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		ActiveAccountMiddleware(r.AccountService),
		httpx.RateLimitByAccount(cfg),
	)
}

// authedOnly wraps h with token verification only. Used by the lifecycle
// endpoints that must stay reachable for soft-deleted accounts.
func (r *Router) authedOnly(h http.Handler, cfg httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByAccount(cfg),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{
		AccountService: r.AccountService,
		Policy:         r.RetentionPolicy,
	}

	// POST /v1/accounts - public signup, strict rate limit by IP
	r.Mux.Handle("POST /v1/accounts",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// The lifecycle endpoints stay reachable while the account is pending
	// deletion; that is the whole point of the grace period.
	r.Mux.Handle("GET /v1/me", r.authedOnly(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/me", r.authedOnly(http.HandlerFunc(h.HandleRequestDeletion), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/me/restore", r.authedOnly(http.HandlerFunc(h.HandleCancelDeletion), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/me/hard", r.authedOnly(http.HandlerFunc(h.HandleHardDelete), httpx.StrictLimit))

	// POST /v1/accounts/{id}/restore - admin restore of any account
	r.Mux.Handle("POST /v1/accounts/{id}/restore",
		httpx.Chain(http.HandlerFunc(h.HandleAdminRestore),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAdmin(),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuth() {
	h := &LoginHandler{TokenService: r.TokenService}

	// POST /v1/auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerReadings() {
	h := &ReadingsHandler{ReadingService: r.ReadingService}

	r.Mux.Handle("POST /v1/readings", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/readings", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/readings/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/readings/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/readings/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerTags() {
	h := &TagsHandler{TagService: r.TagService}

	r.Mux.Handle("POST /v1/tags", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tags", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/tags/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerQuerents() {
	h := &QuerentsHandler{QuerentService: r.QuerentService}

	r.Mux.Handle("POST /v1/querents", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/querents", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/querents/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/querents/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/querents/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerDecks() {
	h := &DecksHandler{DeckService: r.DeckService}

	r.Mux.Handle("POST /v1/decks", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/decks", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/decks/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/decks/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/decks/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSpreads() {
	h := &SpreadsHandler{SpreadService: r.SpreadService}

	r.Mux.Handle("POST /v1/spreads", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/spreads", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/spreads/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/spreads/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/spreads/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
