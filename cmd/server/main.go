// Package main implements the entry point for the RFQ API server. At startup
// it loads configuration from the environment, sets up logging, and aborts
// with a diagnostic naming the offending variables when configuration is
// incomplete or malformed.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/phrazzld/rfq-api/internal/config"
	"github.com/phrazzld/rfq-api/internal/platform/logger"
	"github.com/phrazzld/rfq-api/internal/redact"
)

// main is the entry point for the rfq-api server.
func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if _, err := initializeApp(opts, os.Stdout); err != nil {
		log.Fatalf("Failed to initialize application: %s", redact.Error(err))
	}

	// The HTTP server consumes the settings from here.
}

// parseFlags turns command-line arguments into loader options.
func parseFlags(args []string) (config.Options, error) {
	app := kingpin.New("rfq-api", "RFQ API server")
	envFile := app.Flag("env-file", "Path to a dotenv file supplying default environment values").
		Default(config.DefaultEnvFile).
		String()
	noEnvFile := app.Flag("no-env-file", "Read only the process environment").Bool()

	if _, err := app.Parse(args); err != nil {
		return config.Options{}, err
	}

	opts := config.Options{EnvFile: *envFile}
	if *noEnvFile {
		opts.EnvFile = ""
	}
	return opts, nil
}

// initializeApp loads configuration and sets up application components.
// Returns the loaded settings and any initialization error.
func initializeApp(opts config.Options, logOutput io.Writer) (*config.Settings, error) {
	settings, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Setup(logger.Config{
		Level:  settings.LogLevel(),
		Output: logOutput,
	})

	// Fail fast on a malformed origins list instead of at the first request.
	origins, err := settings.CORSOrigins()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l.Info("Server configuration loaded", "settings", settings)
	l.Debug("CORS configuration", "origin_count", len(origins))

	return settings, nil
}
