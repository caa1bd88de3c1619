package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"ordering/cmd"
	"ordering/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
)

// The terminal entry point runs everything in-process with quiet logging so
// the menu output stays readable.
func main() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifyLog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	app := cmd.NewCompositionRoot(cmd.Config{}, logger, notifyLog)

	ctx := context.Background()
	if err := app.SeedCatalog(ctx); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	menu := cli.NewMenu(
		os.Stdin,
		os.Stdout,
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateListProductsQueryHandler(),
	)

	if err := menu.Run(ctx); err != nil {
		log.Fatalf("Error running menu: %v", err)
	}
}
