package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-todo-list/docs"
	"github.com/sbilibin2017/gw-todo-list/internal/authz"
	"github.com/sbilibin2017/gw-todo-list/internal/facades"
	"github.com/sbilibin2017/gw-todo-list/internal/handlers"
	"github.com/sbilibin2017/gw-todo-list/internal/healthcheck"
	"github.com/sbilibin2017/gw-todo-list/internal/jwt"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-list/internal/repositories"
	"github.com/sbilibin2017/gw-todo-list/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	authModeField = "field"
	authModeJWT   = "jwt"
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost, appPort, logLevel string

	pgHost                         string
	pgPort                         int
	pgUser, pgPassword, pgDB       string
	pgMaxOpenConns, pgMaxIdleConns int
	pgMigrate                      bool

	// Redis is disabled when redisHost is empty.
	redisHost                        string
	redisPort, redisDB               int
	redisPassword                    string
	redisPoolSize, redisMinIdleConns int
	redisExpSecond                   int

	// Kafka is disabled when kafkaBrokers is empty.
	kafkaBrokers []string
	kafkaTopic   string

	todosDir string

	authMode     string
	jwtSecretKey string
	jwtExpSecond int

	// The gRPC health server is disabled when grpcHealthPort is empty.
	grpcHealthPort string
}

// @title gw-todo-list API
// @version 1.0.0
// @description Todo list service with per-user daily snapshots
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, snapshot, auth and health configuration.
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
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.pgMigrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "true")); err != nil {
		err = fmt.Errorf("POSTGRES_MIGRATE: %w", err)
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisExpSecond, err = getInt("REDIS_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "todo-snapshots")

	// Snapshot files
	cfg.todosDir = getEnv("TODOS_DIR", "todos")

	// Auth config
	cfg.authMode = getEnv("AUTH_MODE", authModeField)
	if cfg.authMode != authModeField && cfg.authMode != authModeJWT {
		err = fmt.Errorf("AUTH_MODE: unknown mode %q", cfg.authMode)
		return
	}
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// gRPC health config
	cfg.grpcHealthPort = getEnv("GRPC_HEALTH_PORT", "")

	return
}

// routeHandlers groups the HTTP handlers mounted by newRouter.
type routeHandlers struct {
	login      http.HandlerFunc
	addUser    http.HandlerFunc
	listTodos  http.HandlerFunc
	createTodo http.HandlerFunc
	getTodo    http.HandlerFunc
	updateTodo http.HandlerFunc
	deleteTodo http.HandlerFunc
}

// newRouter mounts the API routes. auth, when not nil, guards every todo route
// except user creation.
func newRouter(h routeHandlers, auth func(http.Handler) http.Handler, swaggerURL string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/login", h.login)
	r.Post("/todo/useradd", h.addUser)

	r.Group(func(r chi.Router) {
		if auth != nil {
			r.Use(auth)
		}
		r.Get("/todo", h.listTodos)
		r.Post("/todo", h.createTodo)
		r.Get("/todo/{id}", h.getTodo)
		r.Patch("/todo/{id}", h.updateTodo)
		r.Delete("/todo/{id}", h.deleteTodo)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	return r
}

// run initializes the logger, database, optional Redis, Kafka and health server,
// and the HTTP server. It blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if cfg.pgMigrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Info("Database schema is up to date")
	}

	// Connect to Redis
	var userCache services.UserIDCache
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		userCache = repositories.NewUserCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)
		log.Infof("User id cache enabled at %s:%d", cfg.redisHost, cfg.redisPort)
	}

	// Snapshot sinks
	sinks := []facades.SnapshotWriter{facades.NewSnapshotFileWriter(cfg.todosDir)}
	if len(cfg.kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(cfg.kafkaBrokers...),
			Topic:        cfg.kafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Errorw("failed to publish todo snapshots", "count", len(messages), "error", err)
				}
			},
		}
		publisher := facades.NewSnapshotKafkaPublisher(writer)
		defer publisher.Close()
		sinks = append(sinks, publisher)
		log.Infof("Publishing todo snapshots to Kafka topic %s", cfg.kafkaTopic)
	}
	snapshots := facades.NewMultiSnapshotWriter(sinks...)

	// Authorization
	var (
		tokens     services.TokenGenerator
		authorizer handlers.Authorizer = authz.NewFieldAuthorizer()
		authMW     func(http.Handler) http.Handler
	)
	if cfg.authMode == authModeJWT {
		j := jwt.New(
			jwt.WithSecretKey(cfg.jwtSecretKey),
			jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
		)
		tokens = j
		authorizer = authz.NewTokenAuthorizer()
		authMW = middlewares.AuthMiddleware(j)
	}
	log.Infof("Authorization mode: %s", cfg.authMode)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	todoReadRepo := repositories.NewTodoReadRepository(db)
	todoWriteRepo := repositories.NewTodoWriteRepository(db)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, tokens)
	todoService := services.NewTodoService(todoReadRepo, todoWriteRepo, userReadRepo, userCache, snapshots)

	// Initialize handlers
	routes := routeHandlers{
		login:      handlers.NewLoginHandler(userService),
		addUser:    handlers.NewAddUserHandler(userService),
		listTodos:  handlers.NewListTodosHandler(todoService, authorizer),
		createTodo: handlers.NewCreateTodoHandler(todoService, authorizer),
		getTodo:    handlers.NewGetTodoHandler(todoService, authorizer),
		updateTodo: handlers.NewUpdateTodoHandler(todoService, authorizer),
		deleteTodo: handlers.NewDeleteTodoHandler(todoService, authorizer),
	}
	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler:           newRouter(routes, authMW, swaggerURL),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.grpcHealthPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.appHost, cfg.grpcHealthPort))
		if err != nil {
			return fmt.Errorf("health listener failed: %w", err)
		}
		health := healthcheck.New()
		defer health.Shutdown()

		go health.Watch(ctxShutdown, 10*time.Second, db)
		go func() {
			log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := health.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
