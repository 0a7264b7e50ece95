package main

import (
	"fmt"

	"github.com/amaumene/seasonsync/internal/app"
	"github.com/amaumene/seasonsync/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd runs the daemon when called without a subcommand
var rootCmd = &cobra.Command{
	Use:           "seasonsync",
	Short:         "Resubmit still-offered Sonarr grabs to qBittorrent",
	Long:          `seasonsync periodically checks monitored, incomplete Sonarr seasons and submits the last grabbed release to qBittorrent while the indexer still offers it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDaemon,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml, json or env); defaults to environment and ./.env")
	rootCmd.AddCommand(runCmd, onceCmd, versionCmd)
}

// initialize loads the configuration and wires the application
func initialize() (*app.App, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, cleanup, err := app.Initialize(cfg)
	if err != nil {
		return nil, nil, err
	}

	application.Logger.WithFields(logrus.Fields{
		"sonarr":         cfg.SonarrURL,
		"qbittorrent":    cfg.QBittorrentURL,
		"category":       cfg.Category,
		"check_interval": cfg.CheckInterval,
		"max_age":        cfg.MaxReleaseAge,
		"skip_window":    cfg.SkipWindow,
	}).Info("Configuration loaded")

	return application, cleanup, nil
}
