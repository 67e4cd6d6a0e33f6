package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rudrakshass/HearMeOut/internal/scene"
	"github.com/rudrakshass/HearMeOut/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hearmeout-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Logging goes to stderr; stdout carries the protocol
	log := logrus.New()
	log.SetOutput(os.Stderr)

	// A .env file is optional; environment variables win either way
	_ = godotenv.Load()

	if level, err := logrus.ParseLevel(os.Getenv("HEARMEOUT_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg := narrationFromEnv(log)

	log.WithFields(logrus.Fields{
		"version":   Version,
		"threshold": cfg.Threshold,
		"mirrored":  cfg.Mirrored,
	}).Debug("Starting narration server")

	srv := server.New(log, cfg)
	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("Server error")
	}
}

// narrationFromEnv builds the narration defaults, letting the environment
// override the canonical configuration.
func narrationFromEnv(log *logrus.Logger) scene.Config {
	cfg := scene.DefaultConfig()

	if v := os.Getenv("HEARMEOUT_THRESHOLD"); v != "" {
		th, err := strconv.ParseFloat(v, 64)
		if err != nil || th < 0 || th > 1 {
			log.WithField("value", v).Warn("Ignoring invalid HEARMEOUT_THRESHOLD")
		} else {
			cfg.Threshold = th
		}
	}
	if v := os.Getenv("HEARMEOUT_MIRRORED"); v != "" {
		mirrored, err := strconv.ParseBool(v)
		if err != nil {
			log.WithField("value", v).Warn("Ignoring invalid HEARMEOUT_MIRRORED")
		} else {
			cfg.Mirrored = mirrored
		}
	}
	return cfg
}

func printHelp() {
	fmt.Println("hearmeout-mcp - scene narration server for the HearMeOut accessibility app")
	fmt.Println()
	fmt.Println("Usage: hearmeout-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (a .env file is honored too):")
	fmt.Println("  HEARMEOUT_LOG_LEVEL=debug    Log verbosity (logrus levels)")
	fmt.Println("  HEARMEOUT_THRESHOLD=0.5      Default confidence threshold")
	fmt.Println("  HEARMEOUT_MIRRORED=true      Mirrored front-camera preview")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("An upstream camera/detector collaborator sends detection lists;")
	fmt.Println("the returned narration text is handed to a speech synthesizer.")
}
