package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"procurement/cmd"
	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftRetention = 30 * 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleDraftsCommandHandler(),
		draftRetention(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		DraftRetention: goDotEnvVariable("DRAFT_RETENTION"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&supplierrepo.SupplierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return gormDB
}

func draftRetention(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.DraftRetention == "" {
		return defaultDraftRetention
	}

	retention, err := time.ParseDuration(configs.DraftRetention)
	if err != nil || retention <= 0 {
		logger.Warn("Invalid DRAFT_RETENTION, using default",
			"value", configs.DraftRetention, "default", defaultDraftRetention)
		return defaultDraftRetention
	}

	return retention
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateSupplierCommandHandler(),
		app.CreateCreatePurchaseOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateSubmitPurchaseOrderCommandHandler(),
		app.CreateApprovePurchaseOrderCommandHandler(),
		app.CreateShipPurchaseOrderCommandHandler(),
		app.CreateCompletePurchaseOrderCommandHandler(),
		app.CreateCancelPurchaseOrderCommandHandler(),
		app.CreateGetPurchaseOrderQueryHandler(),
		app.CreateGetOpenPurchaseOrdersQueryHandler(),
		app.CreateGetSuppliersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
