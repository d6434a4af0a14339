package watch

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"call-summary/cmd/callsum/cmd/common"
	"call-summary/internal/client"
	"call-summary/internal/watcher"
)

var maxConcurrent int

func init() {
	Cmd.Flags().IntVarP(&maxConcurrent, "concurrency", "j", 2, "maximum recordings uploaded at once")
}

// Cmd represents the watch command
var Cmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Summarize every recording dropped into a directory",
	Long: `Summarize every recording dropped into a directory.

Each new audio file is uploaded to the server and the result is written
next to it as <name>.summary.md. Stop with Ctrl+C; uploads in flight finish first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := common.NewLogger()
		defer logger.Sync()

		summarizer, err := common.NewSummarizer(logger)
		if err != nil {
			return err
		}
		handler := func(ctx context.Context, path string) error {
			resp, err := summarizer.SummarizeFile(ctx, path)
			if err != nil {
				return err
			}
			out, err := client.WriteMarkdown(path, resp)
			if err != nil {
				return err
			}
			logger.Info("Summary written", zap.String("recording", path), zap.String("summary", out))
			return nil
		}

		w, err := watcher.New(args[0], handler, logger, maxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
