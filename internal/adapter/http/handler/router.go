package handler

import (
	"habit-agent/internal/adapter/http/middleware"
	redisStore "habit-agent/internal/adapter/storage/redis"
	"habit-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies; reading notes are the only payload.
const maxBodyBytes = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckInSvc     ports.CheckInService
	Connections    ports.ConnectionRepository
	Journal        ports.ReconciliationJournal // nil = reconciliation endpoint disabled
	TokenSvc       ports.TokenService          // nil = admin routes disabled
	RateLimitStore *redisStore.RateLimitStore  // nil = in-process limits
	AuditSvc       ports.AuditService          // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte
	Mode           string // gin mode; defaults to release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: Redis-backed limiter when the store is available, else per-process buckets.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		if deps.RateLimitStore == nil {
			return middleware.NewLocalRateLimiter(rule).Handler(group)
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes, keyed by wallet address ---
	checkIns := NewCheckInHandler(deps.CheckInSvc)
	ci := v1.Group("/checkins")
	{
		ci.GET("", rl("query"), checkIns.History)
		ci.GET("/github", rl("checkin"), checkIns.GitHub)
		ci.GET("/strava", rl("checkin"), checkIns.Strava)
		ci.POST("/reading", rl("reading"), checkIns.Reading)
		ci.GET("/reading/status", rl("query"), checkIns.ReadingStatus)
	}

	if deps.Connections != nil {
		conns := NewConnectionHandler(deps.Connections)
		v1.GET("/connections/github/status", rl("query"), conns.GitHubStatus)
	}

	// --- JWT-authenticated operator routes ---
	if deps.TokenSvc != nil && deps.Journal != nil {
		jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
		recon := NewReconciliationHandler(deps.Journal)
		admin := v1.Group("/admin", jwtAuth)
		{
			admin.GET("/reconciliation", rl("admin"), recon.List)
		}
	}

	return r
}
