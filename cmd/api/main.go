package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habit-agent/config"
	"habit-agent/internal/adapter/chain"
	httpHandler "habit-agent/internal/adapter/http/handler"
	"habit-agent/internal/adapter/provider"
	pgStorage "habit-agent/internal/adapter/storage/postgres"
	redisStorage "habit-agent/internal/adapter/storage/redis"
	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"
	"habit-agent/internal/service"
	"habit-agent/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Local development keeps secrets in .env; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HABIT_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config:\n%v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.Verify.Timezone).
		Msg("Starting habit-agent")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis backs the fast path and the locks; without it the service still
	// runs on singleflight plus the ledger constraint.
	var (
		cache          ports.CheckInCache
		lock           ports.DistributedLock
		journal        ports.ReconciliationJournal
		rateLimitStore *redisStorage.RateLimitStore
	)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache, distributed locks or reconciliation journal")
	} else {
		defer rdb.Close()
		log.Info().Msg("Redis connected")
		cache = redisStorage.NewCheckInCache(rdb)
		lock = redisStorage.NewLock(rdb)
		journal = redisStorage.NewReconciliationJournal(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Ledger node and signer
	chainClient, err := chain.Dial(ctx, cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to dial ledger node")
	}
	defer chainClient.Close()
	healthCheckers = append(healthCheckers, chain.NewHealthCheck(chainClient))

	signer, err := service.NewTransactionSigner(chainClient, lock, service.SignerConfig{
		PrivateKeyHex:   cfg.Chain.AgentPrivateKey,
		ContractAddress: cfg.Chain.ContractAddress,
		GasLimit:        cfg.Chain.GasLimit,
		LockTTL:         cfg.Lock.TTL,
		LockWait:        cfg.Lock.Wait,
	}, logger.Component(log, "signer"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize transaction signer")
	}
	log.Info().Str("agent", signer.AgentAddress()).Str("contract", cfg.Chain.ContractAddress).Msg("Transaction signer ready")

	clock, err := domain.NewClock(cfg.Verify.Timezone, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load verification timezone")
	}

	// Provider tokens are stored encrypted when an AES key is configured.
	var encSvc ports.EncryptionService
	if cfg.AES.Key != "" {
		aes, err := service.NewAESEncryptionService(cfg.AES.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize encryption service")
		}
		encSvc = aes
	}

	// Verification sources
	connRepo := pgStorage.NewConnectionRepo(pool)
	providerHTTP := provider.WithHTTPClient(&http.Client{Timeout: cfg.Grader.Timeout})
	srcLog := logger.Component(log, "verification")
	sources := []ports.VerificationSource{
		service.NewCommitActivitySource(connRepo, provider.NewGitHubClient(cfg.GitHub.APIURL, providerHTTP), encSvc, clock, srcLog),
		service.NewRunActivitySource(connRepo, provider.NewStravaClient(cfg.Strava.APIURL, providerHTTP), encSvc, clock, srcLog),
		service.NewGradedNoteSource(provider.NewChatGrader(provider.GraderConfig{
			APIURL:      cfg.Grader.APIURL,
			APIKey:      cfg.Grader.APIKey,
			Model:       cfg.Grader.Model,
			Temperature: cfg.Grader.Temperature,
		}, providerHTTP), srcLog),
	}

	checkInSvc := service.NewCheckInService(service.CheckInDeps{
		Sources:  sources,
		Ledger:   pgStorage.NewCheckInRepo(pool),
		Signer:   signer,
		Cache:    cache,
		Lock:     lock,
		Journal:  journal,
		Clock:    clock,
		LockTTL:  cfg.Lock.TTL,
		LockWait: cfg.Lock.Wait,
	}, logger.Component(log, "checkin"))

	auditSvc := service.NewAuditService(pgStorage.NewAuditRepo(pool), logger.Component(log, "audit"))

	var tokenSvc ports.TokenService
	if cfg.JWT.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	} else {
		log.Warn().Msg("jwt.secret not set, operator endpoints disabled")
	}

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err == nil {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckInSvc:     checkInSvc,
		Connections:    connRepo,
		Journal:        journal,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		OpenAPISpec:    specBytes,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown. No write timeout: a check-in may
	// wait on the signer lock and a slow node.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight check-ins run detached from the request; give them time to reach the ledger.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
