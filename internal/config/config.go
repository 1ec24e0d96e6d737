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
	// MissingTokens are cell values treated as missing, in addition to the
	// empty string.
	MissingTokens []string `mapstructure:"missing_tokens" yaml:"missing_tokens"`
	// ReportSuffix is appended to the input file stem for the default
	// report path.
	ReportSuffix string `mapstructure:"report_suffix" yaml:"report_suffix"`
	// Delimiter is the default CSV field delimiter: "," | ";" | "tab".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// LogLevel controls logging verbosity: debug|info|warn|error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.csvqc/config.yaml, creating the directory if
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
		dir := filepath.Join(home, ".csvqc")
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
	v.SetEnvPrefix("CSVQC")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("missing_tokens", []string{"NA", "N/A", "null", "NaN"})
	v.SetDefault("report_suffix", "_quality_report.html")
	v.SetDefault("delimiter", ",")
	v.SetDefault("log_level", "info")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".csvqc")
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
