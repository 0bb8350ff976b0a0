package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/bilingual-portfolio-backend/api"
	"github.com/rpupo63/bilingual-portfolio-backend/config"
	"github.com/rpupo63/bilingual-portfolio-backend/database"
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

func main() {
	provisionAdmin := flag.Bool("provision-admin", false, "create the admin account from ADMIN_USERNAME/ADMIN_PASSWORD and exit")
	flag.Parse()

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zlog.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("No .env file loaded")
	}

	cfg := config.New()

	db, err := openDatabase(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("Error migrating schema")
	}

	currentDB := database.New(db)

	authService, err := services.NewAuthService(currentDB, cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing auth service")
	}

	// Out-of-band admin provisioning, then exit
	if *provisionAdmin {
		username := config.GetString(cfg, "ADMIN_USERNAME", "")
		password := config.GetString(cfg, "ADMIN_PASSWORD", "")
		user, err := authService.ProvisionAdmin(context.Background(), username, password)
		if err != nil {
			zlog.Fatal().Err(err).Msg("Error provisioning admin")
		}
		zlog.Info().Str("username", user.Username).Msg("Admin account created")
		return
	}

	storage, err := newStorage(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing file storage")
	}

	svcs := api.Services{
		Content:  services.NewContentService(currentDB, services.NewGoogleTranslator(cfg), storage),
		Auth:     authService,
		Visitors: services.NewVisitorService(currentDB),
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(svcs)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects per DB_TYPE: "sqlite" (default, matching the original
// deployment) or "postgres".
func openDatabase(cfg map[string]string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	gormCfg := &gorm.Config{Logger: gormLogger}

	dbType := config.GetString(cfg, "DB_TYPE", "sqlite")
	switch dbType {
	case "sqlite":
		path := config.GetString(cfg, "SQLITE_PATH", "portfolio.db")
		return gorm.Open(sqlite.Open(path), gormCfg)
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "POSTGRES_HOST", "localhost"),
			config.GetString(cfg, "POSTGRES_USER", "postgres"),
			config.GetString(cfg, "POSTGRES_PASSWORD", ""),
			config.GetString(cfg, "POSTGRES_DB", "portfolio"),
			config.GetString(cfg, "POSTGRES_PORT", "5432"),
			config.GetString(cfg, "POSTGRES_SSLMODE", "disable"),
		)
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// newStorage picks the image store per STORAGE_BACKEND: "local" (default) or "s3".
func newStorage(cfg map[string]string) (services.FileStorage, error) {
	backend := config.GetString(cfg, "STORAGE_BACKEND", "local")
	switch backend {
	case "local":
		return services.NewLocalStorage(cfg), nil
	case "s3":
		return services.NewS3Storage(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", backend)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
