package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()

	if os.Getenv("STORAGE_BACKEND") == "mongo" {
		requiredEnvVars := []string{
			"MONGO_URI",
			"MONGO_DB",
		}
		for _, envVar := range requiredEnvVars {
			if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
				log.Fatalf("Required environment variable %s is not set", envVar)
			}
		}
		dbCfg := config.LoadDatabaseConfig()
		utils.InitMongoClient(dbCfg.URI, dbCfg.MaxPoolSize, dbCfg.MinPoolSize, dbCfg.MaxConnIdleTime)
	}
}

func setupRouter(srvCfg config.ServerConfig) *gin.Engine {
	router := gin.New()

	// Storage backend per config: memory by default, mongo when configured.
	var sessionsRepo repository.SessionsRepo
	var goalsRepo repository.GoalsRepo
	if srvCfg.StorageBackend == "mongo" {
		dbCfg := config.LoadDatabaseConfig()
		sessionsRepo = repository.GetMongoSessionsRepo(utils.MongoClient, dbCfg)
		goalsRepo = repository.GetMongoGoalsRepo(utils.MongoClient, dbCfg)
	} else {
		sessionsRepo = repository.NewMemorySessionsRepo()
		goalsRepo = repository.NewMemoryGoalsRepo()
	}

	// Optional Redis stats cache
	var statsCache *services.StatsCache
	if srvCfg.RedisURL != "" {
		cache, err := services.NewStatsCache(srvCfg.RedisURL, utils.GetEnvAsDuration("STATS_CACHE_TTL", 5*time.Minute))
		if err != nil {
			log.Printf("Stats cache disabled: %v", err)
		} else {
			statsCache = cache
		}
	}

	screenTimeService := usecase.NewScreenTimeService(usecase.ScreenTimeServiceConfig{
		Sessions:    sessionsRepo,
		Goals:       goalsRepo,
		Cache:       statsCache,
		DefaultGoal: srvCfg.DefaultDailyGoal,
	})

	sessionsHandler := handler.NewSessionsHandler(screenTimeService)
	goalsHandler := handler.NewGoalsHandler(screenTimeService)
	statsHandler := handler.NewStatsHandler(screenTimeService)
	achievementsHandler := handler.NewAchievementsHandler(screenTimeService)
	quotesHandler := handler.NewQuotesHandler()
	healthHandler := handler.NewHealthHandler(srvCfg.StorageBackend == "mongo")

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware(srvCfg.DemoUserID))
	{
		api.GET("/screen-time-sessions", sessionsHandler.GetSessions)
		api.GET("/screen-time-sessions/:date", sessionsHandler.GetSessionsByDate)
		api.POST("/screen-time-sessions", sessionsHandler.CreateSession)
		api.DELETE("/screen-time-sessions/:id", sessionsHandler.DeleteSession)

		api.GET("/daily-goal", goalsHandler.GetGoal)
		api.POST("/daily-goal", goalsHandler.SaveGoal)

		stats := api.Group("/stats")
		{
			stats.GET("/summary", statsHandler.GetSummary)
			stats.GET("/weekly", statsHandler.GetWeekly)
		}

		quotes := api.Group("/quotes")
		{
			quotes.GET("/daily", quotesHandler.GetDailyQuote)
			quotes.GET("/random", quotesHandler.GetRandomQuote)
		}

		api.GET("/achievements", achievementsHandler.GetAchievements)
	}

	return router
}

func main() {
	srvCfg := config.LoadServerConfig()

	utils.StartSystemMetrics(30 * time.Second)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)
		os.Exit(0)
	}()

	router := setupRouter(srvCfg)

	log.Printf("Listening on :%s (storage=%s)", srvCfg.Port, srvCfg.StorageBackend)
	log.Fatal(router.Run(":" + srvCfg.Port))
}
