package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataDir       string   `mapstructure:"data_dir" yaml:"data_dir"`
	DefaultCrimes []string `mapstructure:"default_crimes" yaml:"default_crimes"`
	TopN          int      `mapstructure:"top_n" yaml:"top_n"`
	ChartWidth    int      `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight   int      `mapstructure:"chart_height" yaml:"chart_height"`
	ChartsDir     string   `mapstructure:"charts_dir" yaml:"charts_dir"`
	ListenAddr    string   `mapstructure:"listen_addr" yaml:"listen_addr"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.crimescope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".crimescope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CRIMESCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_dir", "crime")
	v.SetDefault("default_crimes", []string{"MURDER", "RAPE"})
	v.SetDefault("top_n", 5)
	v.SetDefault("chart_width", 800)
	v.SetDefault("chart_height", 500)
	v.SetDefault("charts_dir", "charts")
	v.SetDefault("listen_addr", ":8080")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".crimescope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
