package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/crimescope/crimescope/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Crimescope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		fmt.Printf("data_dir: %s\n", s.DataDir)
		fmt.Printf("default_crimes: %s\n", strings.Join(s.DefaultCrimes, ","))
		fmt.Printf("top_n: %d\n", s.TopN)
		fmt.Printf("chart_width: %d\n", s.ChartWidth)
		fmt.Printf("chart_height: %d\n", s.ChartHeight)
		fmt.Printf("charts_dir: %s\n", s.ChartsDir)
		fmt.Printf("listen_addr: %s\n", s.ListenAddr)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_dir":
			cfg.DataDir = val
		case "default_crimes":
			var crimes []string
			for _, c := range strings.Split(val, ",") {
				if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
					crimes = append(crimes, c)
				}
			}
			cfg.DefaultCrimes = crimes
		case "top_n":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for top_n: %v", val)
			}
			cfg.TopN = i
		case "chart_width":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for chart_width: %v", val)
			}
			cfg.ChartWidth = i
		case "chart_height":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for chart_height: %v", val)
			}
			cfg.ChartHeight = i
		case "charts_dir":
			cfg.ChartsDir = val
		case "listen_addr":
			cfg.ListenAddr = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
