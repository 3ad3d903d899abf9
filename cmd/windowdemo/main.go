package main

import (
	"context"
	"os"

	"github.com/dataiter/windowkit/internal/demo"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/uuid"
)

func main() {
	ctx := context.Background()

	c, err := demo.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load windowdemo config", logging.ErrField(err))
		os.Exit(1)
	}

	if runID, err := uuid.MakeV7(); err == nil {
		ctx = logging.ContextWith(ctx, logging.Field("run_id", runID.String()))
	}

	cli.Main(ctx, demo.NewMux(c))
}
