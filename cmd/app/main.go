package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"assetflow/cmd"
	httpadapter "assetflow/internal/adapters/in/http"
	"assetflow/internal/adapters/out/storage"
	"assetflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err = storage.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	bounds, err := configs.AmountBounds()
	if err != nil {
		log.Fatalf("Invalid amount bounds: %v", err)
	}

	app := cmd.NewCompositionRoot(db, bounds)

	if configs.AutoAdvance {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager, jobErr := buildJobs(&app, configs, logger)
		if jobErr != nil {
			log.Fatalf("Job setup failed: %v", jobErr)
		}
		if jobErr = jobManager.StartAll(); jobErr != nil {
			log.Fatalf("Job start failed: %v", jobErr)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on environment")
	}

	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		StorageDriver:       goDotEnvVariable("STORAGE_DRIVER"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		SQLitePath:          goDotEnvVariable("SQLITE_PATH"),
		AmountMin:           goDotEnvVariable("AMOUNT_MIN"),
		AmountMax:           goDotEnvVariable("AMOUNT_MAX"),
		AutoAdvance:         goDotEnvVariable("AUTO_ADVANCE") == "true",
		AutoAdvanceInterval: autoAdvanceInterval(),
	}
	return config
}

func autoAdvanceInterval() time.Duration {
	raw := goDotEnvVariable("AUTO_ADVANCE_INTERVAL_SECONDS")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	switch configs.StorageDriver {
	case cmd.DriverSQLite:
		return storage.OpenSQLite(configs.SQLitePath)
	case cmd.DriverPostgres, "":
		return storage.OpenPostgres(configs.PostgresDSN())
	default:
		return nil, fmt.Errorf("unknown storage driver %q", configs.StorageDriver)
	}
}

func buildJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) (*jobs.JobManager, error) {
	autoAdvanceJob, err := jobs.NewAutoAdvanceJob(
		app.TransactionUoWFactory(),
		app.CreateAdvanceTransactionCommandHandler(),
		configs.AutoAdvanceInterval,
		logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(autoAdvanceJob), nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateTransactionCommandHandler(),
		app.CreateAdvanceTransactionCommandHandler(),
		app.CreateFailTransactionCommandHandler(),
		app.CreateCancelTransactionCommandHandler(),
		app.CreateGetTransactionQueryHandler(),
		app.CreateGetTransactionsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
