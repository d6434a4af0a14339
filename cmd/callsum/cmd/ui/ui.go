package ui

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"call-summary/cmd/callsum/cmd/common"
	"call-summary/internal/tui"
)

// Cmd represents the ui command
var Cmd = &cobra.Command{
	Use:   "ui <audio-file>",
	Short: "Upload a recording and browse the result interactively",
	Long: `Upload a recording and browse the result interactively.

Tabs switch between the summary, the suggested titles and the transcript.
Press r to resubmit after a failure and q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// the viewer owns the terminal, so in-process logs are discarded
		summarizer, err := common.NewSummarizer(zap.NewNop())
		if err != nil {
			return err
		}
		return tui.Run(summarizer, args[0], common.Timeout)
	},
}
