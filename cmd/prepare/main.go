// Package main provides the prepare command that turns raw UIDAI CSV chunks into dashboard JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"uidaiprep/internal/config"
	"uidaiprep/internal/loader"
	"uidaiprep/internal/logger"
	"uidaiprep/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional, built-in defaults otherwise)")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting UIDAI data preparation")
	log.Info(fmt.Sprintf("📂 Source: %s", cfg.Source.BaseDir))
	log.Info(fmt.Sprintf("🎯 Output: %s", cfg.Output.Dir))

	startTime := time.Now()

	res, err := pipeline.New(cfg, log, nil).Run()
	if err != nil {
		log.Error(fmt.Sprintf("❌ Preparation failed: %v", err))

		if errors.Is(err, pipeline.ErrLoad) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, loader.Layout(cfg.Source))
		}

		os.Exit(1)
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Print(res.Summary(cfg.Output.Dir).Render())
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
