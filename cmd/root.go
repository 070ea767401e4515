package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexiusacademia/gopile/internal/config"
	"github.com/alexiusacademia/gopile/internal/logger"
	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	appLog *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gopile",
	Short: "Bored Pile Axial Capacity Tool",
	Long: `gopile - Go Bored Pile Capacity Calculator

A CLI tool for the allowable axial capacity of a bored pile
in a layered soil profile.

This tool helps geotechnical engineers perform:
  - Skin friction capacity from layer-by-layer shaft overlap
  - End bearing capacity from the governing layer near the pile base
  - Capacity versus depth studies
  - Slope angle and ratio conversions

Layer levels may be given as depths below ground level (mbgl)
or as reduced levels (mRL).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopile v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Bored Pile Capacity Calculator                       ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the allowable axial capacity of bored piles")
		fmt.Println("  from layered soil skin friction and end bearing values.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Skin friction and end bearing capacity")
		fmt.Println("    • Depth below ground (mbgl) or reduced level (mRL) inputs")
		fmt.Println("    • Soil profiles from JSON, YAML or Excel files")
		fmt.Println("    • Capacity versus depth charts, diagrams and reports")
		fmt.Println("    • Slope angle, ratio and triangle calculator")
		fmt.Println()
		fmt.Println("  Use 'gopile --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: gopile.yaml in ., ./config or $HOME/.gopile)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")
}

// initConfig loads configuration and builds the logger. Flags override the config file.
func initConfig(cmd *cobra.Command) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		c.Log.Format = logFormat
	}

	cfg = c
	appLog = logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	appLog.WithFields(logrus.Fields{
		"config":     configFile,
		"convention": cfg.Pile.Convention,
		"step":       cfg.Profile.Step,
	}).Debug("configuration loaded")
	return nil
}

// printError writes err to stderr in red, one line per validation message
func printError(err error) {
	red := color.New(color.FgRed, color.Bold)

	var verr *pile.ValidationError
	if errors.As(err, &verr) {
		red.Fprintln(os.Stderr, "Missing inputs:")
		for _, msg := range verr.Messages {
			color.New(color.FgRed).Fprintf(os.Stderr, "  • %s\n", msg)
		}
		return
	}
	red.Fprintf(os.Stderr, "Error: %v\n", err)
}
