package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/passvault/docs"
	"github.com/sbilibin2017/passvault/internal/db"
	"github.com/sbilibin2017/passvault/internal/jwt"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/middlewares"
	"github.com/sbilibin2017/passvault/internal/repositories"
	"github.com/sbilibin2017/passvault/internal/routes"
	"github.com/sbilibin2017/passvault/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const defaultJWTSecret = "my_super_secret_key"

// config is the full runtime configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// RedisHost empty disables the auth rate limiter.
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisPoolSize int

	JWTSecretKey string
	JWTExpSecond int
	BcryptCost   int

	AuthRateLimit int
	CORSOrigins   []string
	MaxBodyBytes  int64
	TrustedProxy  bool
}

// @title passvault API
// @version 1.0.0
// @description Personal password vault: account registration, login and owner-scoped credential storage
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	if v, ok := os.LookupEnv("REDIS_HOST"); ok {
		cfg.RedisHost = v
	} else {
		cfg.RedisHost = "localhost"
	}
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}

	// JWT and hashing config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", defaultJWTSecret)
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", strconv.Itoa(services.DefaultBcryptCost)); err != nil {
		return
	}

	// HTTP hardening
	if cfg.AuthRateLimit, err = getInt("AUTH_RATE_LIMIT", "10"); err != nil {
		return
	}
	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", ""), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	maxBody, err := getInt("MAX_BODY_BYTES", strconv.Itoa(middlewares.DefaultMaxBodyBytes))
	if err != nil {
		return
	}
	cfg.MaxBodyBytes = int64(maxBody)
	if cfg.TrustedProxy, err = strconv.ParseBool(getEnv("TRUSTED_PROXY", "false")); err != nil {
		err = fmt.Errorf("TRUSTED_PROXY: %w", err)
		return
	}

	return
}

// run initializes the logger, database, Redis, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY is not set, using the built-in development secret")
	}

	// Connect to PostgreSQL
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	conn, err := db.Connect(ctx, db.DSN(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDB),
		cfg.PGMaxOpenConns, cfg.PGMaxIdleConns)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("Database migrations applied")

	// Connect to Redis; an unreachable Redis only disables rate limiting per request
	var limiter middlewares.HitCounter
	if cfg.RedisHost != "" && cfg.AuthRateLimit > 0 {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("Redis ping failed, rate limiter fails open", "err", err)
		}
		limiter = repositories.NewRateLimitRepository(rdb, "passvault:ratelimit:auth")
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn)
	passwordReadRepo := repositories.NewPasswordReadRepository(conn)
	passwordWriteRepo := repositories.NewPasswordWriteRepository(conn)

	// Initialize services
	authService, err := services.NewAuthService(userReadRepo, userWriteRepo, tokens, cfg.BcryptCost)
	if err != nil {
		return err
	}
	passwordService := services.NewPasswordService(passwordReadRepo, passwordWriteRepo)

	// Setup router
	r := routes.NewRouter(routes.Config{
		AuthRateLimit:  int64(cfg.AuthRateLimit),
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AllowedOrigins: cfg.CORSOrigins,
		TrustedProxy:   cfg.TrustedProxy,
	}, authService, passwordService, tokens, limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
