package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samecodec/sameeas/pkg/api"
	"github.com/samecodec/sameeas/pkg/archive"
	"github.com/samecodec/sameeas/pkg/assembler"
	"github.com/samecodec/sameeas/pkg/config"
	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/logging"
	"github.com/samecodec/sameeas/pkg/transcode"
)

var (
	configPath = flag.String("config", "config.yaml", "Configuration file path")
	version    = flag.Bool("version", false, "Show version information")
)

const (
	Version = "0.1.0-dev"
	Build   = "development"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("sameserver version %s (%s)\n", Version, Build)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logging.InitGlobalLogger(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseGlobalLogger()

	logging.Info("main", fmt.Sprintf("sameserver version %s starting...", Version))

	dict, err := dictionary.LoadFile(cfg.Dictionary.Path)
	if err != nil {
		logging.Error("main", fmt.Sprintf("Failed to load dictionary: %v", err))
		os.Exit(1)
	}

	tc := transcode.New(cfg.Transcoder.Binary, cfg.Transcoder.WorkDir)
	asm := assembler.New(tc, logging.GetGlobalLogger())

	arc, err := archive.Open(cfg.Archive.DatabasePath, cfg.Archive.MaxRecords)
	if err != nil {
		logging.Error("main", fmt.Sprintf("Failed to open archive: %v", err))
		os.Exit(1)
	}
	defer arc.Close()

	_, router := api.New(dict, asm, arc)

	addr := fmt.Sprintf("%s:%d", cfg.API.BindAddress, cfg.API.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		logging.Info("main", fmt.Sprintf("API listening on http://%s", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("main", fmt.Sprintf("Server error: %v", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logging.Info("main", "Shutting down...")
	if err := server.Close(); err != nil {
		logging.Error("main", fmt.Sprintf("Error during shutdown: %v", err))
	}
	logging.Info("main", "sameserver stopped")
}
