package main

import (
	"fmt"
	"os"

	"github.com/aretw0/nbserve/internal/cli"
	"github.com/aretw0/nbserve/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nbserve",
	Short: "nbserve serves Jupyter notebooks as structured JSON",
	Long: `nbserve lists the .ipynb files of a document directory, extracts their cells
and recorded outputs as JSON, and renders a decision-tree visualization to PNG.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("dir", "", "Document directory holding the notebooks (overrides paths.documents_dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
}

// loadConfig reads the config file and environment, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("dir") {
		cfg.Paths.DocumentsDir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Server.Addr = f.Value.String()
	}
	if f := cmd.Flags().Lookup("engine"); f != nil && f.Changed {
		cfg.Render.Engine = f.Value.String()
	}
	if f := cmd.Flags().Lookup("model"); f != nil && f.Changed {
		cfg.Render.Model = f.Value.String()
	}
	return cfg, cfg.Validate()
}

// loadApp builds the configured application for a command.
func loadApp(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cfg, logger)
}
