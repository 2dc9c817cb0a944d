package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/config"
	"github.com/mechshop/autoshop-api/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.Container,
	tokenService ports.TokenService,
	cache ports.CachePort,
	redisClient *redis.Client,
	logger ports.LoggerPort,
	customerHandler *CustomerHandler,
	mechanicHandler *MechanicHandler,
	ticketHandler *TicketHandler,
	partHandler *PartHandler,
) (*Router, error) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(RequestIDMiddleware())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.HTTP.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Cross-cutting limits live here, not in the handlers: identity
	// creation is rate limited, listings are cached for a bounded window.
	createLimit := RateLimitMiddleware(redisClient, logger, cfg.RateLimit.CreateLimit, cfg.RateLimit.CreateWindow)
	listCache := CacheMiddleware(cache, logger, cfg.Cache.ListTTL)

	customers := router.Group("/customers")
	{
		customers.POST("", createLimit, customerHandler.CreateCustomer)
		customers.GET("", listCache, customerHandler.ListCustomers)
		customers.POST("/login", customerHandler.Login)
		customers.GET("/my-tickets", AuthMiddleware(tokenService), customerHandler.MyTickets)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", AuthMiddleware(tokenService), customerHandler.UpdateCustomer)
		customers.DELETE("/:id", AuthMiddleware(tokenService), customerHandler.DeleteCustomer)
	}

	mechanics := router.Group("/mechanics")
	{
		mechanics.POST("", createLimit, mechanicHandler.CreateMechanic)
		mechanics.GET("", listCache, mechanicHandler.ListMechanics)
		mechanics.GET("/most-active", mechanicHandler.MostActive)
		mechanics.GET("/:id", mechanicHandler.GetMechanic)
		mechanics.PUT("/:id", mechanicHandler.UpdateMechanic)
		mechanics.DELETE("/:id", mechanicHandler.DeleteMechanic)
	}

	tickets := router.Group("/service_tickets")
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", listCache, ticketHandler.ListTickets)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.DELETE("/:id", ticketHandler.DeleteTicket)
		tickets.PUT("/:id/assign-mechanic/:mechanicID", ticketHandler.AssignMechanic)
		tickets.PUT("/:id/remove-mechanic/:mechanicID", ticketHandler.RemoveMechanic)
		tickets.PUT("/:id/add-part/:partID", ticketHandler.AddPart)
		tickets.PUT("/:id/edit", ticketHandler.EditMechanics)
	}

	inventory := router.Group("/inventory")
	{
		inventory.POST("", partHandler.CreatePart)
		inventory.GET("", listCache, partHandler.ListParts)
		inventory.GET("/:id", partHandler.GetPart)
		inventory.PUT("/:id", partHandler.UpdatePart)
		inventory.DELETE("/:id", partHandler.DeletePart)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
