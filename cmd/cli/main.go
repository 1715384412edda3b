package main

import (
	"context"
	"log"
	"os"

	"github.com/Faizan-Cheema/popstream/internal/buildinfo"
	"github.com/Faizan-Cheema/popstream/internal/client/cli"
	"github.com/Faizan-Cheema/popstream/internal/client/config"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
