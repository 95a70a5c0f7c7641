package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "careerpath"

	defaultAddress   = ":5000"
	defaultRolesFile = "data/roles.json"
)

type Config struct {
	Server *struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Database *struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	RolesFile string        `mapstructure:"roles-file"`
	Gemini    *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

// Address returns the configured listen address or the default.
func (c *Config) Address() string {
	if c != nil && c.Server != nil && c.Server.Address != "" {
		return c.Server.Address
	}
	return defaultAddress
}

// DatabaseURL returns the configured database URL, empty when unset.
func (c *Config) DatabaseURL() string {
	if c != nil && c.Database != nil && c.Database.URL != "" {
		return c.Database.URL
	}
	return viper.GetString("database.url")
}

// Roles returns the configured roles file path or the default.
func (c *Config) Roles() string {
	if c != nil && c.RolesFile != "" {
		return c.RolesFile
	}
	return defaultRolesFile
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "careerpath is a career guidance backend matching skills against a role catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("database.url", "DATABASE_URL"); err != nil {
		log.Fatalf("binding DATABASE_URL environment variable: %v", err)
	}
	if err := viper.BindEnv("gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is careerpath.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: environment variables and defaults are
	// enough to serve with the bundled roles file.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
