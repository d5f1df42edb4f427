package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/opsline/stockpile/config"
	"github.com/opsline/stockpile/internal/adminapi"
	"github.com/opsline/stockpile/internal/app"
	"github.com/opsline/stockpile/internal/webserver"
)

var (
	configFile = flag.String("c", "stockpile.yml", "config file path")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	webserver.Init(&cfg.Web)
	adminapi.Init(application)

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.L().Error("web server stopped", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	zap.L().Info("shutting down")
	webserver.Shutdown()
}
