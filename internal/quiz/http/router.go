package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/internal/quiz/store"
	"github.com/quizden/quizden/pkg/httpx"
	"github.com/quizden/quizden/pkg/jwtx"
	"github.com/quizden/quizden/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	clientOrigin string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	AuthService        *service.AuthService
	TokenService       *service.TokenService
	OAuthService       *service.OAuthService
	QuizService        *service.QuizService
	ScoreService       *service.ScoreService
	AchievementService *service.AchievementService
}

func NewRouter(
	verifier jwtx.Verifier,
	clientOrigin, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		clientOrigin: clientOrigin,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(clientOrigin),
		httpx.SecurityHeaders(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTokens()
	r.registerQuiz()
	r.registerScores()
	r.registerAchievements()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// Credential endpoints carry strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Federation routes are absent entirely when the provider is not configured.
	if r.OAuthService == nil {
		return
	}

	oauthHandler := &OAuthHandler{
		OAuthService: r.OAuthService,
		ClientOrigin: r.clientOrigin,
	}
	r.Mux.Handle("GET /auth/google",
		httpx.Chain(http.HandlerFunc(oauthHandler.HandleBegin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /auth/google/callback",
		httpx.Chain(http.HandlerFunc(oauthHandler.HandleCallback),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTokens() {
	h := &RefreshHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /api/refresh-token",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerQuiz() {
	h := &QuizHandler{QuizService: r.QuizService}
	r.Mux.Handle("GET /quiz",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerScores() {
	h := &ScoresHandler{ScoreService: r.ScoreService}

	r.Mux.Handle("POST /user/submit_quiz",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /user/recent_quiz_score",
		httpx.Chain(http.HandlerFunc(h.HandleRecent),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /user/quiz_scores",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAchievements() {
	h := &AchievementsHandler{AchievementService: r.AchievementService}

	r.Mux.Handle("PUT /user/achievement_unlocked",
		httpx.Chain(http.HandlerFunc(h.HandleProgress),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /achievement/new_achievement",
		httpx.Chain(http.HandlerFunc(h.HandleUnlock),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /achievement/games",
		httpx.Chain(http.HandlerFunc(h.HandleGameCount),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /achievement/quizzes",
		httpx.Chain(http.HandlerFunc(h.HandleQuizCount),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /achievement/total",
		httpx.Chain(http.HandlerFunc(h.HandleTotalCount),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
