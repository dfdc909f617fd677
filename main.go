package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/privatechef/chef-events/config"
	"github.com/privatechef/chef-events/internal/consumer"
	"github.com/privatechef/chef-events/internal/handler"
	"github.com/privatechef/chef-events/internal/middleware"
	"github.com/privatechef/chef-events/internal/notification"
	"github.com/privatechef/chef-events/internal/pricing"
	"github.com/privatechef/chef-events/internal/repository"
	"github.com/privatechef/chef-events/internal/service"
	"github.com/privatechef/chef-events/pkg/cache"
	"github.com/privatechef/chef-events/pkg/database"
	"github.com/privatechef/chef-events/pkg/logger"
	"github.com/privatechef/chef-events/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}

	// RabbitMQ: notifications are queued by the services and drained by
	// the in-process mail consumer.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		zlog.Fatalw("failed to connect to RabbitMQ", "error", err)
	}
	defer publisher.Close()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		zlog.Fatalw("failed to create RabbitMQ consumer", "error", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		zlog.Fatalw("failed to start consuming", "error", err)
	}

	var mailer notification.Mailer = notification.LogMailer{Log: zlog}
	if cfg.MailAPIKey != "" {
		mailer = notification.NewHTTPMailer(cfg.MailAPIEndpoint, cfg.MailAPIKey, cfg.MailFromAddress)
	}
	consumer.NewMailConsumer(mailer, zlog).Start(msgs)

	// Redis menu cache is optional: without it store reads hit Postgres.
	var menuCache *cache.MenuCache
	if redisClient, err := cache.NewRedisClient(cfg.RedisURL); err != nil {
		zlog.Warnw("redis unavailable, menu cache disabled", "error", err)
	} else {
		menuCache = cache.NewMenuCache(redisClient, cfg.MenuCacheTTL)
	}

	// Repositories
	eventRepo := repository.NewChefEventRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Services
	dispatcher := notification.NewDispatcher(publisher, zlog)
	links := service.Links{
		AdminBackendURL: cfg.AdminBackendURL,
		StorefrontURL:   cfg.StorefrontURL,
		ChefEmail:       cfg.ChefEmail,
	}
	pricer := pricing.New(cfg.PricingSource, catalogRepo)
	intakeSvc := service.NewIntakeService(eventRepo, pricer, dispatcher, links, zlog)
	acceptanceSvc := service.NewAcceptanceService(eventRepo, catalogRepo, linkRepo, dispatcher, links, zlog)
	menuSvc := service.NewMenuService(menuRepo, menuCache, zlog)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			zlog.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "chef-events"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewStoreHandler(intakeSvc, menuSvc).RegisterRoutes(e)
	handler.NewAdminHandler(acceptanceSvc, menuSvc, eventRepo).RegisterRoutes(e)

	zlog.Infof("chef-events service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
