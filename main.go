package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gatekeeper/cmd"
)

var noColor = false

func main() {
	// Configure zerolog
	zerolog.DurationFieldUnit = time.Second

	// Set the global log level based on the LOGLEVEL environment variable
	var zerologLevel zerolog.Level
	switch os.Getenv("LOGLEVEL") {
	case "trace":
		zerologLevel = zerolog.TraceLevel
	case "debug":
		zerologLevel = zerolog.DebugLevel
	case "warn":
		zerologLevel = zerolog.WarnLevel
	case "error":
		zerologLevel = zerolog.ErrorLevel
	case "fatal":
		zerologLevel = zerolog.FatalLevel
	case "panic":
		zerologLevel = zerolog.PanicLevel
	case "info":
		zerologLevel = zerolog.InfoLevel
	default:
		zerologLevel = zerolog.WarnLevel
	}

	// Disable colored output when DEBUG is set, as in CI logs
	if os.Getenv("DEBUG") != "" {
		noColor = true
	}

	// Configure zerolog with the specified settings
	zerolog.SetGlobalLevel(zerologLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	})

	// Execute the main CLI command
	cmd.Execute()
}
