// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paysplit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paysplit/internal/logging"
	"github.com/pdiddy/paysplit/internal/session"
	"github.com/pdiddy/paysplit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paysplit CLI.
var rootCmd = &cobra.Command{
	Use:   "paysplit",
	Short: "Split pay statement PDFs into one file per page and index them",
	Long: `paysplit splits a multi-page pay statement PDF into single-page PDFs named
after the payee and cheque date printed on each page, and records every page
in a SQLite store (pdf_data.db) kept next to the split files.

The store can be browsed with the individuals and records commands, contact
details edited with contact, and the whole store exported with export.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./paysplit.yaml or ~/.config/paysplit/paysplit.yaml)")
	pf.String("output-dir", types.DefaultOutputDir, "folder for split PDFs and pdf_data.db")
	pf.String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	pf.String("log-format", "text", "diagnostic log format: text or json")

	_ = viper.BindPFlag("output_dir", pf.Lookup("output-dir"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", pf.Lookup("log-format"))
	viper.SetDefault("export_format", string(types.ExportYAML))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paysplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paysplit"))
		}
	}

	viper.SetEnvPrefix("PAYSPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration from flags, environment,
// and config file, in that order of precedence.
func loadConfig() types.Config {
	return types.Config{
		OutputDir: viper.GetString("output_dir"),
		Log: types.LogConfig{
			Level:  viper.GetString("log_level"),
			Format: viper.GetString("log_format"),
		},
		Export: types.ExportConfig{
			Format: types.ExportFormat(viper.GetString("export_format")),
		},
	}
}

// setup builds the session and diagnostic logger for one command run.
func setup(cmd *cobra.Command) (session.Session, *slog.Logger, types.Config, error) {
	cfg := loadConfig()
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return session.Session{}, nil, cfg, err
	}
	return session.New(cfg.OutputDir), logger, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
