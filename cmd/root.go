package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sednabcn/job-search-automation/internal/scoring"
)

const (
	app = "jobsearch"
)

type Config struct {
	CVFile       string                  `mapstructure:"cv-file"`
	PostingsFile string                  `mapstructure:"postings-file"`
	OutputFile   string                  `mapstructure:"output-file"`
	Preferences  scoring.PreferenceInput `mapstructure:"preferences"`
	Watch        *WatchConfig            `mapstructure:"watch"`
	AI           *AIConfig               `mapstructure:"ai"`
}

type WatchConfig struct {
	Schedule  string `mapstructure:"schedule"`
	OutputDir string `mapstructure:"output-dir"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	MinScore float64       `mapstructure:"minimum-fit-score"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Flag storage.
	cfgFile string

	// Set when the config file could not be read; commands log it and
	// continue on built-in defaults.
	configLoadErr error

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobsearch scores scraped job postings against your CV and preferences",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobsearch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "log in JSON format")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A local .env may carry GEMINI_API_KEY for development runs.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing or broken config file is not fatal: scoring falls back to
	// built-in defaults.
	if err := viper.ReadInConfig(); err != nil {
		configLoadErr = err
	}
}

func loadConfig() (*Config, error) {
	var cfg *Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}

	return cfg, nil
}
