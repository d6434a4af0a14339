package serve

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"call-summary/cmd/callsum/cmd/common"
	"call-summary/internal/app"
	"call-summary/internal/app/logging"
	"call-summary/internal/config"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides the config file")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarizer HTTP API",
	Long: `Run the summarizer HTTP API.

POST /api/generate-summary accepts a multipart audio_file and returns the
summary, suggested titles and full transcript. Strategies fall back in the
configured order down to rule-based ones that need no credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ConfigPath(common.ConfigFile))
		if err != nil {
			return err
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if common.Verbose {
			cfg.LogLevel = "debug"
		}

		logger, err := logging.NewLogger(cfg.Environment == "development", cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		logger.Info("Credentials loaded", zap.Strings("services", cfg.Credentials.Available()))

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
