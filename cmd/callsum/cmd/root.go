package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"call-summary/cmd/callsum/cmd/common"
	"call-summary/cmd/callsum/cmd/serve"
	"call-summary/cmd/callsum/cmd/submit"
	"call-summary/cmd/callsum/cmd/ui"
	"call-summary/cmd/callsum/cmd/version"
	"call-summary/cmd/callsum/cmd/watch"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "callsum",
	Short: "Turn call recordings into a transcript, a summary and title suggestions",
	Long: `Turn call recordings into a transcript, a summary and title suggestions.

- serve runs the HTTP API
- submit, ui and watch upload recordings to a running server,
  or run the pipeline in-process with --local`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(submit.Cmd)
	rootCmd.AddCommand(ui.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(version.Cmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&common.ConfigFile, "config", "c", "", "config file (default is $CALLSUM_CONFIG)")
	flags.StringVarP(&common.ServerURL, "server", "s", common.DefaultServerURL(), "base URL of the summarizer API")
	flags.StringVar(&common.APIKey, "api-key", "", "OpenAI key forwarded to the server for this request")
	flags.DurationVar(&common.Timeout, "timeout", common.DefaultTimeout, "client timeout for one upload")
	flags.BoolVar(&common.Local, "local", false, "run the pipeline in-process instead of uploading to a server")
	flags.BoolVarP(&common.Verbose, "verbose", "V", false, "verbose output")
}
