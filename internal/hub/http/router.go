package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/internal/hub/storage"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/slogx"

	_ "github.com/Chickencurry27/artisthub/api" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	uploads *storage.LocalStorage

	SessionService       *service.SessionService
	AuthService          *service.AuthService
	PasswordResetService *service.PasswordResetService
	ClientService        *service.ClientService
	ProjectService       *service.ProjectService
	SongService          *service.SongService
	ShareService         *service.ShareService
	CommentService       *service.CommentService
	UsageService         *service.UsageService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	uploads *storage.LocalStorage,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		uploads:      uploads,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccount()
	r.registerClients()
	r.registerProjects()
	r.registerSongs()
	r.registerUploads()
	r.registerShares()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ArtistHub API
//	@version		0.1.0
//	@description	Client and project management for creative professionals: session-cookie
//	@description	authentication, tiered usage limits, and shareable read-only project pages.
//
//	@contact.name				ArtistHub
//	@contact.url				https://github.com/Chickencurry27/artisthub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						hub_session
//	@description				Opaque session token issued at login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	authHandler := &AuthHandler{
		AuthService: r.AuthService,
		Sessions:    r.SessionService,
	}
	passwordHandler := &PasswordHandler{Resets: r.PasswordResetService}

	// Credential endpoints get the strict limit; they are what brute force
	// and enumeration probes hit.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(authHandler.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(authHandler.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout", r.authed(authHandler.HandleLogout, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleForgot),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/reset-password/{token}",
		httpx.Chain(http.HandlerFunc(passwordHandler.HandleReset),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	accountHandler := &AccountHandler{AuthService: r.AuthService}
	usageHandler := &UsageHandler{Usage: r.UsageService}

	r.Mux.Handle("GET /v1/me", r.authed(accountHandler.HandleMe, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/me", r.authed(accountHandler.HandleUpdateName, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/usage", r.authed(usageHandler.HandleUsage, httpx.LenientLimit))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{Clients: r.ClientService}

	r.Mux.Handle("GET /v1/clients", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/clients", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/clients/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/clients/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/clients/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{Projects: r.ProjectService, Comments: r.CommentService}

	r.Mux.Handle("GET /v1/projects", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/projects", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/projects/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/projects/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/projects/{id}/comments", r.authed(h.HandleComments, httpx.LenientLimit))
}

func (r *Router) registerSongs() {
	h := &SongsHandler{Songs: r.SongService}

	r.Mux.Handle("GET /v1/projects/{id}/songs", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/projects/{id}/songs", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/songs/{id}", r.authed(h.HandleRename, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/songs/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/songs/{id}/versions", r.authed(h.HandleAddVersion, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/versions/{id}", r.authed(h.HandleDeleteVersion, httpx.ModerateLimit))
}

func (r *Router) registerUploads() {
	h := &UploadsHandler{Storage: r.uploads, Usage: r.UsageService}

	r.Mux.Handle("POST /v1/uploads", r.authed(h.HandleUpload, httpx.ModerateLimit))

	// Downloads are public: the share page plays audio for visitors who
	// have no session. File IDs are unguessable ULIDs.
	r.Mux.Handle("GET /v1/uploads/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDownload),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerShares() {
	h := &SharesHandler{Shares: r.ShareService, Comments: r.CommentService}

	r.Mux.Handle("POST /v1/projects/{id}/shares", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/shares/{id}", r.authed(h.HandleRevoke, httpx.ModerateLimit))

	// Public surface: the token authorizes, not a session.
	r.Mux.Handle("GET /v1/share/{projectID}/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleSharedProject),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/share/{projectID}/{token}/comments",
		httpx.Chain(http.HandlerFunc(h.HandleShareComment),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
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
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}

// authed wraps a handler with session validation and a per-user rate limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		RequireSession(r.SessionService),
		httpx.RateLimitByUser(limit),
	)
}
