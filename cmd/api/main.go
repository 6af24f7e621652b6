// Package main is the entry point for the book catalog API server.
// It wires together configuration, the seeded catalog, and the HTTP router.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aoideee/bookcatalog/internal/data"
)

// appVersion is the current version of the API, shown in logs and the healthcheck.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags or environment variables.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps     float64 // Tokens added to each client's bucket per second
		burst   int     // Bucket capacity
		enabled bool    // Turns per-IP rate limiting on or off
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags and env
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // In-memory catalog
}

// main is the application entry point.
// It reads configuration, seeds the catalog, wires up dependencies, and
// serves HTTP until a shutdown signal arrives.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	settings, err := readConfig(os.Args[1:])
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	models, err := data.NewModels(data.SeedBooks())
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	logger.Info("catalog seeded", "books", models.Books.Count())

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: models,
	}

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// readConfig parses args into a serverConfig. Environment variables, when
// set, take precedence over the flag values.
func readConfig(args []string) (serverConfig, error) {
	var settings serverConfig

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&settings.port, "port", 4000, "Server port")
	fs.StringVar(&settings.environment, "env", "development", "Environment(development|staging|production)")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	port, err := strconv.Atoi(cmp.Or(os.Getenv("PORT"), strconv.Itoa(settings.port)))
	if err != nil {
		return serverConfig{}, fmt.Errorf("invalid PORT: %w", err)
	}
	settings.port = port
	settings.environment = cmp.Or(os.Getenv("ENV"), settings.environment)

	return settings, nil
}
