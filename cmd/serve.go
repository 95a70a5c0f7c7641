package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/advice"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/logger"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/secrets"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/server"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the careerpath HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address, e.g. :5000")
	serveCmd.Flags().StringP("roles-file", "r", "", "JSON file with the role catalog")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
	viper.BindPFlag("roles-file", serveCmd.Flags().Lookup("roles-file"))
}

func serve(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting careerpath", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	st, err := store.Open(ctx, config.DatabaseURL(), config.Roles(), logger)
	if err != nil {
		logger.Fatal("opening the role store", zap.Error(err))
	}

	advisor := buildAdvisor(ctx, config, logger)

	srv := server.New(config.Address(), st, advisor, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// buildAdvisor selects the advice strategy. A usable Gemini key enables the
// remote provider; anything else keeps the deterministic local one.
func buildAdvisor(ctx context.Context, config *Config, logger *zap.Logger) server.Advisor {
	key, model, maxLogLen := geminiSettings(config, logger)

	if !advice.KeyConfigured(key) {
		logger.Info("gemini api key not configured, using local advice strategy")
		return advice.Local{}
	}

	generator, err := advice.NewGenerator(ctx, key, model)
	if err != nil {
		logger.Warn("creating gemini client failed, using local advice strategy", zap.Error(err))
		return advice.Local{}
	}

	logger.Info("advice backed by gemini", zap.String("model", generator.Model()))
	return advice.NewGemini(generator, logger, maxLogLen)
}

func geminiSettings(config *Config, logger *zap.Logger) (key, model string, maxLogLen int) {
	key = viper.GetString("gemini.api-key")
	if config != nil && config.Gemini != nil {
		if config.Gemini.APIKey != "" {
			key = config.Gemini.APIKey
		}
		if file := strings.TrimSpace(config.Gemini.APIKeyFile); file != "" {
			loaded, err := secrets.Load(secrets.Source{
				Name: "gemini api key",
				File: file,
			})
			if err != nil {
				logger.Warn("loading gemini api key file", zap.Error(err))
			} else {
				key = loaded
			}
		}
		model = config.Gemini.Model
		maxLogLen = config.Gemini.MaxLogLength
	}
	return key, model, maxLogLen
}
