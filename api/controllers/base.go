package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"Pico/api/cache"
	docs "Pico/api/docs"
	"Pico/api/metrics"
	"Pico/api/middlewares"
	"Pico/api/models"
	"Pico/api/seed"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// ===============================
// SERVER INITIALIZATION
// ===============================
func (server *Server) Initialize(DbUser, DbPassword, DbPort, DbHost, DbName string) {
	db, err := openDatabase(os.Getenv("DB_DRIVER"), DbUser, DbPassword, DbPort, DbHost, DbName)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	server.DB = db

	if err := Migrate(server.DB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Redis init (safe failure)
	if err := cache.InitFromEnv(); err != nil {
		log.Printf("warning: could not connect to redis: %v", err)
	}

	if strings.EqualFold(os.Getenv("SEED_CANDIDATES"), "true") {
		if err := seed.Load(server.DB); err != nil {
			log.Printf("error seeding candidates: %v\n", err)
		}
	}

	server.Router = gin.Default()
	server.SetupRouter()
}

// SetupRouter installs middleware and routes on server.Router.
func (server *Server) SetupRouter() {
	if server.Router == nil {
		server.Router = gin.New()
	}
	server.Router.Use(middlewares.CORSMiddleware())
	server.Router.Use(middlewares.RateLimitMiddleware())
	server.Router.Use(middlewares.PlayerIdentityMiddleware())
	server.Router.GET("/metrics", metrics.Handler())
	server.initializeRoutes()

	if os.Getenv("APP_ENV") != "production" {
		if schemes := strings.TrimSpace(os.Getenv("SWAGGER_SCHEMES")); schemes != "" {
			docs.SwaggerInfo.Schemes = splitCSV(schemes)
		} else {
			docs.SwaggerInfo.Schemes = []string{"http"}
		}
		if host := strings.TrimSpace(os.Getenv("SWAGGER_HOST")); host != "" {
			docs.SwaggerInfo.Host = host
		}
		if os.Getenv("SWAGGER_DOCS_ONLY") != "" {
			docs.SwaggerInfo.Host = "docs-only.invalid"
		}
		server.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// Serve listens on addr until ctx is cancelled, then drains in-flight requests.
func (server *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: server.Router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Candidate{},
		&models.Game{},
	)
}

func openDatabase(driver, DbUser, DbPassword, DbPort, DbHost, DbName string) (*gorm.DB, error) {
	if strings.EqualFold(driver, "sqlite") {
		path := DbName
		if path == "" {
			path = "pico.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	var dsn string
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		dsn = requireSSL(os.Getenv("DATABASE_URL"))
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			DbHost, DbUser, DbPassword, DbName, DbPort,
		)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func requireSSL(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&sslmode=require"
	}
	return dsn + "?sslmode=require"
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
