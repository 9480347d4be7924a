package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/auth"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/config"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/database"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/handlers"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
)

func main() {
	// A missing .env is fine; production sets real environment variables.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment as-is")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	slog.Info("database connection established")

	credentials := auth.NewCredentialStore(db, cfg.BcryptCost)
	sessions := auth.NewSessionService(db, cfg.SessionTTL)

	companyService := services.NewCompanyService(db)
	interviewService := services.NewInterviewService(db)
	taskService := services.NewTaskService(db)
	documentService := services.NewDocumentService(db)
	memoService := services.NewMemoService(db)
	calendarService := services.NewCalendarService(db)
	userService := services.NewUserService(db)

	authHandler := handlers.NewAuthHandler(credentials, sessions, userService)
	companyHandler := handlers.NewCompanyHandler(companyService, calendarService)
	recordHandler := handlers.NewRecordHandler(interviewService, taskService, documentService, memoService)

	r := handlers.NewRouter(sessions, authHandler, companyHandler, recordHandler)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
