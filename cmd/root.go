package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/crimescope/crimescope/internal/config"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	dataDir string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "crimescope",
	Short: "Crimescope: explore Indian crime statistics by state, district, year, and category",
	Long: `Crimescope loads crime-statistics CSV datasets from a data directory and
renders filtered tables, per-category totals, a crime-distribution pie chart,
a top-states ranking, and a per-state yearly trend.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.crimescope/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the crime datasets (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// settings returns the loaded configuration, falling back to built-in
// defaults when the config failed to load. The --data-dir flag wins over
// both.
func settings() *cfgpkg.Global {
	s := cfg
	if s == nil {
		s = &cfgpkg.Global{
			DataDir:       "crime",
			DefaultCrimes: []string{"MURDER", "RAPE"},
			TopN:          5,
			ChartWidth:    800,
			ChartHeight:   500,
			ChartsDir:     "charts",
			ListenAddr:    ":8080",
		}
	}
	if dataDir != "" {
		s.DataDir = dataDir
	}
	return s
}
