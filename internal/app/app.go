package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mechshop/autoshop-api/internal/adapter/handler/http"
	"github.com/mechshop/autoshop-api/internal/adapter/logger"
	"github.com/mechshop/autoshop-api/internal/adapter/postgres"
	"github.com/mechshop/autoshop-api/internal/adapter/prometheus"
	"github.com/mechshop/autoshop-api/internal/adapter/redis"
	"github.com/mechshop/autoshop-api/internal/config"
	"github.com/mechshop/autoshop-api/internal/core/ports"
	"github.com/mechshop/autoshop-api/internal/core/services"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	HTTPRouter  *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	customerRepo := postgres.NewCustomerRepository(db)
	mechanicRepo := postgres.NewMechanicRepository(db)
	partRepo := postgres.NewPartRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	// Token service
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Lifetime, loggerAdapter)

	// Services
	customerService := services.NewCustomerService(customerRepo, tokenService, loggerAdapter, validate)
	mechanicService := services.NewMechanicService(mechanicRepo, loggerAdapter, validate)
	partService := services.NewPartService(partRepo, loggerAdapter, validate)
	ticketService := services.NewTicketService(ticketRepo, customerRepo, mechanicRepo, partRepo, loggerAdapter, validate)

	// HTTP Handlers
	customerHandler := http.NewCustomerHandler(customerService, ticketService, loggerAdapter, metrics)
	mechanicHandler := http.NewMechanicHandler(mechanicService, loggerAdapter, metrics)
	ticketHandler := http.NewTicketHandler(ticketService, loggerAdapter, metrics)
	partHandler := http.NewPartHandler(partService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg,
		tokenService,
		cacheAdapter,
		redisConn,
		loggerAdapter,
		customerHandler,
		mechanicHandler,
		ticketHandler,
		partHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		DB:          db,
		RedisClient: redisConn,
		HTTPRouter:  router,
	}, nil
}

// Runs the HTTP server
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
