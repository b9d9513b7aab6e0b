package api

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"Pico/api/controllers"
	"Pico/api/jobs"

	"github.com/joho/godotenv"
)

var server = controllers.Server{}

func init() {
	// Load .env only outside production. In prod, config comes from the environment.
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.Initialize(
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_NAME"),
	)

	sweeper, err := jobs.StartSweeper(server.DB, os.Getenv("GAME_SWEEP_SPEC"), gameTTL())
	if err != nil {
		log.Printf("warning: game sweeper not started: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = os.Getenv("API_PORT")
		if port == "" {
			port = "8888"
		}
	}

	addr := ":" + strings.TrimSpace(port)
	fmt.Printf("Listening on %s\n", addr)
	serveErr := server.Serve(ctx, addr)

	if sweeper != nil {
		<-sweeper.Stop().Done()
	}
	if serveErr != nil {
		log.Fatalf("server stopped: %v", serveErr)
	}
	log.Printf("server stopped")
}

func gameTTL() time.Duration {
	hours, err := strconv.Atoi(strings.TrimSpace(os.Getenv("GAME_TTL_HOURS")))
	if err != nil || hours <= 0 {
		return jobs.DefaultGameTTL
	}
	return time.Duration(hours) * time.Hour
}
