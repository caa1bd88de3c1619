package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	notifyLog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	app := cmd.NewCompositionRoot(configs, logger, notifyLog)
	if err := app.SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateCompleteDeliveriesCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort: goDotEnvVariable("HTTP_PORT"),
		LogLevel: goDotEnvVariable("LOG_LEVEL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateListProductsQueryHandler(),
		app.CreateGetStockQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
