package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"students-api/internal/api/routes"
	"students-api/internal/config"
	"students-api/internal/database"
	"students-api/internal/logger"
	"students-api/internal/metrics"
	"students-api/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "students-api/docs" // This is needed for swag
)

//	@title			Students API
//	@version		1.0
//	@description	REST API over a university database of groups, students and courses, seeded with synthetic data.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	log := logger.WithComponent("server")

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	var collector *metrics.PrometheusCollector
	if cfg.MetricsEnabled {
		collector = metrics.NewPrometheus(prometheus.NewRegistry(), "")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		if err := seedDatabase(ctx, cfg, db, collector); err != nil {
			log.WithError(err).Error("Failed to seed database")
			return
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, collector)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.WithError(err).Error("Server stopped")
		}
		return
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// seedDatabase rebuilds the schema with generated data before the listener opens
func seedDatabase(ctx context.Context, cfg *config.Config, db *gorm.DB, collector *metrics.PrometheusCollector) error {
	pool, err := seed.LoadNamePool(cfg.SeedNamesFile)
	if err != nil {
		return err
	}

	opts := []seed.Option{}
	if collector != nil {
		opts = append(opts, seed.WithMetrics(collector))
	}

	sizes := seed.Sizes{Students: cfg.SeedStudents, Groups: cfg.SeedGroups, Courses: cfg.SeedCourses}
	_, err = seed.NewSeeder(db, seed.NewGenerator(cfg.SeedRandomSeed, pool), sizes, opts...).Run(ctx)
	return err
}
