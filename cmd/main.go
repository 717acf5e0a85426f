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

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sbilibin2017/gw-pegged-settlement/internal/auth"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/facades"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/handlers"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/jwt"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/middlewares"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/repositories"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/services"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/storage/memory"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends.
const (
	storageMemory   = "memory"
	storagePostgres = "postgres"
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost, appPort, logLevel string

	storage string

	pgHost                         string
	pgPort                         int
	pgUser, pgPassword, pgDB       string
	pgMaxOpenConns, pgMaxIdleConns int

	redisEnabled                     bool
	redisHost                        string
	redisPort, redisDB               int
	redisPassword                    string
	redisPoolSize, redisMinIdleConns int
	redisExpSecond                   int

	gwHost, gwPort               string // Exchanger
	collaboratorHost, collabPort string // Wallet executor and aggregator

	kafkaBrokers []string // Empty disables event publishing
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	platform   string
	buyBack    string
	roleGrants string
}

// roleGrant is one bootstrap entry of ROLE_GRANTS.
type roleGrant struct {
	role    auth.Role
	scope   common.Address
	account common.Address
}

// @title gw-pegged-settlement API
// @version 1.0.0
// @description Settlement service for swaps between pegged fiat tokens with optional DeFi buy-back
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
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg  config
		errs []error
	)
	getInt := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.storage = getEnv("APP_STORAGE", storagePostgres)

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgPort = getInt("POSTGRES_PORT", "5432")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	cfg.pgMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.pgMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	redisEnabled, err := strconv.ParseBool(getEnv("REDIS_ENABLED", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("REDIS_ENABLED: %w", err))
	}
	cfg.redisEnabled = redisEnabled
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPort = getInt("REDIS_PORT", "6379")
	cfg.redisDB = getInt("REDIS_DB", "0")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.redisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.redisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.redisExpSecond = getInt("REDIS_EXP_SECOND", "60")

	// gRPC config
	cfg.gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.gwPort = getEnv("GW_EXCHANGER_PORT", "50051")
	cfg.collaboratorHost = getEnv("COLLABORATOR_HOST", "localhost")
	cfg.collabPort = getEnv("COLLABORATOR_PORT", "50052")

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "settlement-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.jwtExpSecond = getInt("JWT_EXP_SECOND", "60")

	// Settlement config
	cfg.platform = getEnv("PLATFORM_ADDRESS", "0x00000000000000000000000000000000000000f0")
	cfg.buyBack = getEnv("BUYBACK_ASSET", "")
	cfg.roleGrants = getEnv("ROLE_GRANTS", "")

	if cfg.storage != storageMemory && cfg.storage != storagePostgres {
		errs = append(errs, fmt.Errorf("APP_STORAGE: unknown backend %q", cfg.storage))
	}
	if !common.IsHexAddress(cfg.platform) {
		errs = append(errs, fmt.Errorf("PLATFORM_ADDRESS: invalid address %q", cfg.platform))
	}
	if _, err := models.ParseAsset(cfg.buyBack); err != nil {
		errs = append(errs, fmt.Errorf("BUYBACK_ASSET: %w", err))
	}
	if _, err := parseRoleGrants(cfg.roleGrants, common.HexToAddress(cfg.platform)); err != nil {
		errs = append(errs, fmt.Errorf("ROLE_GRANTS: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseRoleGrants reads comma-separated "ROLE:scope:account" entries. The
// scope "platform" stands for the platform address.
func parseRoleGrants(s string, platform common.Address) ([]roleGrant, error) {
	var grants []roleGrant
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed grant %q", entry)
		}
		role, ok := auth.RoleByName(parts[0])
		if !ok {
			return nil, fmt.Errorf("unknown role %q", parts[0])
		}

		scope := platform
		if !strings.EqualFold(parts[1], "platform") {
			if !common.IsHexAddress(parts[1]) {
				return nil, fmt.Errorf("invalid scope %q", parts[1])
			}
			scope = common.HexToAddress(parts[1])
		}
		if !common.IsHexAddress(parts[2]) {
			return nil, fmt.Errorf("invalid account %q", parts[2])
		}

		grants = append(grants, roleGrant{role: role, scope: scope, account: common.HexToAddress(parts[2])})
	}
	return grants, nil
}

// backend bundles the ledger, registry, operator and grant storage of one
// storage engine.
type backend struct {
	supply         services.SupplyLedger
	assets         services.AssetLedger
	tx             services.Transactor
	currencyWriter services.CurrencyWriter
	currencyReader services.CurrencyReader
	operatorReader services.OperatorReader
	operatorWriter services.OperatorWriter
	grants         auth.GrantReader
	grant          func(ctx context.Context, scope common.Address, role common.Hash, account common.Address) error
	close          func()
}

func newMemoryBackend() *backend {
	store := memory.NewStore()
	return &backend{
		supply:         store,
		assets:         store,
		tx:             store,
		currencyWriter: store.Currencies(),
		currencyReader: store.Currencies(),
		operatorReader: store.Operators(),
		operatorWriter: store.Operators(),
		grants:         store,
		grant:          store.Grant,
		close:          func() {},
	}
}

func newPostgresBackend(ctx context.Context, cfg *config) (*backend, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQL migration failed: %w", err)
	}

	runner := repositories.NewTxRunner(db)
	roles := repositories.NewRoleRepository(db, repositories.GetTxFromContext)
	ledger := repositories.NewLedgerRepository(db, runner, roles)
	currencies := repositories.NewCurrencyRepository(db, repositories.GetTxFromContext)

	return &backend{
		supply:         ledger,
		assets:         ledger,
		tx:             runner,
		currencyWriter: currencies,
		currencyReader: currencies,
		operatorReader: repositories.NewOperatorReadRepository(db),
		operatorWriter: repositories.NewOperatorWriteRepository(db),
		grants:         roles,
		grant:          roles.Grant,
		close:          func() { db.Close() },
	}, nil
}

// run initializes the logger, storage, Redis, Kafka, gRPC clients, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	platform := common.HexToAddress(cfg.platform)
	buyBack, err := models.ParseAsset(cfg.buyBack)
	if err != nil {
		return err
	}
	grants, err := parseRoleGrants(cfg.roleGrants, platform)
	if err != nil {
		return err
	}

	// Storage
	var store *backend
	switch cfg.storage {
	case storageMemory:
		store = newMemoryBackend()
	default:
		if store, err = newPostgresBackend(ctx, cfg); err != nil {
			return err
		}
	}
	defer store.close()

	for _, g := range grants {
		if err := store.grant(ctx, g.scope, g.role.ID, g.account); err != nil {
			return fmt.Errorf("failed to bootstrap role %s: %w", g.role.Name, err)
		}
		log.Infow("role granted", "role", g.role.Name, "scope", g.scope.Hex(), "account", g.account.Hex())
	}

	// Redis caches are optional
	var (
		currencyCache services.CurrencyCache
		rateCache     services.ExchangeRateCache
	)
	if cfg.redisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		exp := time.Duration(cfg.redisExpSecond) * time.Second
		currencyCache = repositories.NewCurrencyCacheRepository(rdb, exp)
		rateCache = repositories.NewExchangeRateCacheRepository(rdb, exp)
	}

	// Kafka events are optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// gRPC clients
	exchangerAddr := fmt.Sprintf("%s:%s", cfg.gwHost, cfg.gwPort)
	exchangerConn, err := grpc.NewClient(exchangerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to exchanger at %s: %w", exchangerAddr, err)
	}
	defer exchangerConn.Close()

	collaboratorAddr := fmt.Sprintf("%s:%s", cfg.collaboratorHost, cfg.collabPort)
	collaboratorConn, err := grpc.NewClient(collaboratorAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to collaborators at %s: %w", collaboratorAddr, err)
	}
	defer collaboratorConn.Close()

	exchanger := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(exchangerConn))
	wallets := facades.NewWalletGRPCFacade(collaboratorConn)
	aggregators := facades.NewAggregatorGRPCFacade(collaboratorConn, platform)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize services
	registry := services.NewRegistryService(store.currencyWriter, store.currencyReader, currencyCache, kafkaWriter)
	settlement := services.NewSettlementService(platform, registry, store.supply, store.assets, store.tx)
	defi := services.NewDefiService(platform, buyBack, store.assets, wallets, aggregators, store.tx)
	swaps := services.NewSwapService(platform, settlement, defi, store.assets, store.tx, kafkaWriter)
	quotes := services.NewQuoteService(exchanger, rateCache)
	authService := services.NewAuthService(store.operatorReader, store.operatorWriter, tokens)
	authorizer := auth.NewAuthorizer(store.grants, platform)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/paused", handlers.NewPausedHandler(swaps))
	r.Handle("/metrics", promhttp.Handler())

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, authorizer))

		r.Get("/currencies", handlers.NewListCurrenciesHandler(registry))
		r.Put("/currencies/{address}", handlers.NewSetCurrencyHandler(registry))

		r.Post("/swaps", handlers.NewSwapHandler(swaps))
		r.Post("/swaps/stablecoin", handlers.NewStablecoinSwapHandler(swaps))
		r.Post("/swaps/defi", handlers.NewDefiSwapHandler(swaps))
		r.Post("/swaps/stablecoin-to-defi", handlers.NewStablecoinToDefiSwapHandler(swaps))
		r.Post("/swaps/defi-to-stablecoin", handlers.NewDefiToStablecoinSwapHandler(swaps))

		r.Post("/rescue", handlers.NewRescueHandler(swaps))
		r.Post("/pause", handlers.NewPauseHandler(swaps))
		r.Post("/unpause", handlers.NewUnpauseHandler(swaps))

		r.Get("/rates", handlers.NewGetRatesHandler(quotes))
		r.Get("/quotes", handlers.NewQuoteHandler(quotes))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: otelhttp.NewHandler(r, "gw-pegged-settlement"),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
