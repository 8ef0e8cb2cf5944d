package main

import (
	"context"

	"github.com/locvowork/daily_agenda/internal/bootstrap"
	"github.com/locvowork/daily_agenda/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	defer app.Close()

	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		panic(err)
	}

	if err := app.Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Application failed: %v", err)
		panic(err)
	}
}
