package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/stylemind/stylemind-backend/docs"
	"github.com/stylemind/stylemind-backend/internal/ai"
	aiHTTP "github.com/stylemind/stylemind-backend/internal/ai/delivery/http"
	catalogHTTP "github.com/stylemind/stylemind-backend/internal/catalog/delivery/http"
	catalogRepo "github.com/stylemind/stylemind-backend/internal/catalog/repository"
	"github.com/stylemind/stylemind-backend/internal/chat"
	chatHTTP "github.com/stylemind/stylemind-backend/internal/chat/delivery/http"
	stylistHTTP "github.com/stylemind/stylemind-backend/internal/stylist/delivery/http"
	stylistQuery "github.com/stylemind/stylemind-backend/internal/stylist/usecase/query"
	"github.com/stylemind/stylemind-backend/internal/user"
	userHTTP "github.com/stylemind/stylemind-backend/internal/user/delivery/http"
	userRepo "github.com/stylemind/stylemind-backend/internal/user/repository"
	"github.com/stylemind/stylemind-backend/internal/wardrobe"
	wardrobeHTTP "github.com/stylemind/stylemind-backend/internal/wardrobe/delivery/http"
	wardrobeRepo "github.com/stylemind/stylemind-backend/internal/wardrobe/repository"
	"github.com/stylemind/stylemind-backend/internal/weather"
	weatherHTTP "github.com/stylemind/stylemind-backend/internal/weather/delivery/http"
	"github.com/stylemind/stylemind-backend/kafka"
	"github.com/stylemind/stylemind-backend/pkg/config"
	"github.com/stylemind/stylemind-backend/pkg/database"
	"github.com/stylemind/stylemind-backend/pkg/logger"
	"github.com/stylemind/stylemind-backend/pkg/tracing"
)

// @title StyleMind API
// @version 1.0.0
// @description Wardrobe management, style preference learning and outfit suggestions
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting stylemind service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := userRepo.NewGormUserRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}
	if err := wardrobeRepo.NewGormItemRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run wardrobe migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis backs chat history and the weather cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	// Kafka is optional; without it swipe and wardrobe events stay local
	var swipePublisher userHTTP.SwipePublisher
	var itemPublisher wardrobeHTTP.ItemPublisher
	if cfg.KafkaEnabled {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()
		swipePublisher = publisher
		itemPublisher = publisher

		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, "stylemind-trends", []string{
			kafka.TopicSwipeRecorded,
			kafka.TopicItemAdded,
		})
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		trends := kafka.NewTrendRecorder()
		consumer.RegisterSwipeHandler(trends.HandleSwipe)
		consumer.RegisterItemHandler(trends.HandleItem)

		if err := consumer.Start(context.Background()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
		}

		logger.Logger.Info().
			Strs("brokers", cfg.KafkaBrokers).
			Msg("Kafka publisher and trend consumer started")
	}

	// The AI gateway is optional; without a key every caller falls back
	// to its local defaults
	var gateway ai.Gateway
	if cfg.OpenAIKey != "" {
		gateway = ai.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		logger.Logger.Info().Str("model", cfg.OpenAIModel).Msg("AI gateway configured")
	} else {
		logger.Logger.Warn().Msg("OPENAI_API_KEY not set, AI features run on fallbacks")
	}

	// Repositories shared across modules
	userRepository := userRepo.NewGormUserRepositoryWithTracing(db)
	itemRepository := wardrobeRepo.NewGormItemRepositoryWithTracing(db)

	// Handlers
	userHandler := user.InitializeHTTPHandler(db, swipePublisher)
	wardrobeHandler := wardrobe.InitializeHTTPHandler(db, itemPublisher)
	stylistHandler := stylistHTTP.NewStylistHandler(
		stylistQuery.NewSuggestOutfitHandler(itemRepository, userRepository, gateway),
		stylistQuery.NewAnalyzeGapsHandler(itemRepository),
	)
	analysisHandler := aiHTTP.NewAnalysisHandler(gateway)
	chatService := chat.NewService(gateway, chat.NewRedisHistory(redisClient), userRepository, itemRepository)
	chatHandler := chatHTTP.NewChatHandler(chatService)
	catalogHandler := catalogHTTP.NewCatalogHandler(catalogRepo.NewMemoryOutfitRepository())
	weatherHandler := weatherHTTP.NewWeatherHandler(weather.NewClient(redisClient))

	// Start HTTP server
	router := mux.NewRouter()

	userHandler.RegisterRoutes(router)
	wardrobeHandler.RegisterRoutes(router)
	stylistHandler.RegisterRoutes(router)
	analysisHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	weatherHandler.RegisterRoutes(router)

	// Health check endpoint
	userHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	userHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.HandleFunc("/", rootHandler).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"StyleMind API","version":"1.0.0"}`))
}
