package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"call-summary/cmd/callsum/cmd/common"
	"call-summary/internal/api/v1/dto"
	"call-summary/internal/client"
)

var (
	asJSON       bool
	writeFile    bool
	showProgress bool
)

func init() {
	Cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw API response")
	Cmd.Flags().BoolVarP(&writeFile, "write", "w", false, "write <name>.summary.md next to the recording")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force the upload progress bar even when not on a terminal")
}

// Cmd represents the submit command
var Cmd = &cobra.Command{
	Use:   "submit <audio-file>",
	Short: "Summarize one recording and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var resp *dto.GenerateSummaryResponse
		var err error
		if common.Local {
			resp, err = runLocal(cmd.Context(), path)
		} else {
			resp, err = upload(cmd.Context(), path)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if writeFile {
			written, err := client.WriteMarkdown(path, resp)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", written)
		}

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		fmt.Fprintln(out, strings.TrimSpace(client.Markdown(resp)))
		return nil
	},
}

// runLocal processes the recording in-process
func runLocal(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error) {
	logger := common.NewLogger()
	defer logger.Sync()

	runner, err := common.NewSummarizer(logger)
	if err != nil {
		return nil, err
	}
	return runner.SummarizeFile(ctx, path)
}

// upload streams the recording to the server behind a progress bar
func upload(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	progress := client.NewProgressManager(client.ProgressConfig{
		Enabled: client.ShouldShowProgress(showProgress),
	})
	bar := progress.CreateBar(info.Size(), "Uploading "+filepath.Base(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	resp, err := common.NewClient().Summarize(ctx, filepath.Base(path), bar.ProxyReader(f))
	if err != nil {
		bar.Abort()
		progress.Shutdown()
		return nil, err
	}
	bar.Complete()
	progress.Wait()
	return resp, nil
}
