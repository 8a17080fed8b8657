// Image Editor - File or Camera Picture with Simple Edits
// Author: Ervins Strauhmanis
// License: MIT
// Version: 1.0.0 - Channels, Grayscale, Average, Rectangle
//
// Nothing is ever written back to disk.
package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"simple-image-editor/internal/config"
	"simple-image-editor/internal/gui"
)

const (
	AppName    = "Image Editor"
	AppID      = "com.example.simple-image-editor"
	AppVersion = "1.0.0"
)

// CLI holds the command line flags.
type CLI struct {
	Debug   bool             `help:"Enable debug mode with verbose logging"`
	Config  string           `help:"Path to a YAML configuration file" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("image-editor"),
		kong.Description(AppName),
		kong.Vars{"version": AppVersion},
	)

	logger := initLogger(cli.Debug)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": cli.Debug,
	}).Info("Starting Image Editor")

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	mainApp := gui.NewApplication(myApp, cfg, logger)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	os.Exit(0)
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
