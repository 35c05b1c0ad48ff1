// File: amora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amora/config"
	"amora/database"
	accountRepoPkg "amora/database/repository/account"
	profileRepoPkg "amora/database/repository/profile"
	questionRepoPkg "amora/database/repository/question"
	"amora/handlers"
	"amora/middleware"
	"amora/routes"
	"amora/services/account"
	"amora/services/notification"
	"amora/services/registration"
	"amora/services/storage"
	"amora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	storageService := storage.NewStorageService(cld, config.AppConfig.PhotoUploadFolder)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	questionRepo := questionRepoPkg.NewMongoQuestionRepo()
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()

	if err := questionRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure question indexes: %v", err)
	}
	if err := questionRepo.SeedSystemQuestions(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed system questions: %v", err)
	}

	// services.
	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Redis: utils.GetCacheClient(),
	}
	pipeline := &registration.SubmissionPipeline{
		Accounts: accountService,
		Storage:  storageService,
		Profiles: profileRepo,
		Notifier: notificationService,
	}
	registrationService := &registration.DefaultRegistrationService{
		Questions:  questionRepo,
		Pipeline:   pipeline,
		Sessions:   utils.GetSessionCacheClient(),
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	handlers.SetRegistrationService(registrationService)
	handlers.SetQuestionRepository(questionRepo)

	// Register routes.
	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
