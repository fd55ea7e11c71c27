package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/morningbot/morning-signin-bot/internal/calendar"
	"github.com/morningbot/morning-signin-bot/internal/config"
	"github.com/morningbot/morning-signin-bot/internal/database"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
	"github.com/morningbot/morning-signin-bot/internal/domain/service"
	"github.com/morningbot/morning-signin-bot/internal/handlers"
	"github.com/morningbot/morning-signin-bot/internal/state"
	"github.com/morningbot/morning-signin-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)
	if _, err := slackClient.AuthTest(); err != nil {
		log.Fatalf("Slack authentication failed: %v", err)
	}

	dm := database.NewInstance(db)
	messageStore := state.New(cfg.StateFilePath)
	workCal := calendar.New(cfg.HolidayRegion)

	services := service.NewInstance(dm, slackClient, messageStore, workCal)

	if err := services.Scheduler.EnsureConfig(entity.ScheduleConfig{
		SignInHour:      cfg.SignInHour,
		SignInMinute:    cfg.SignInMinute,
		TargetChannelID: cfg.TargetChannelID,
	}); err != nil {
		log.Fatalf("Failed to seed schedule config: %v", err)
	}

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.SignIn, services.Notifier, services.Scheduler, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactivity", handler.HandleInteractivity)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
