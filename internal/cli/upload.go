package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/jsonoutput"
	"github.com/yukifiles/go/internal/report"
	"github.com/yukifiles/go/internal/scanner"
	"github.com/yukifiles/go/internal/types"
	"github.com/yukifiles/go/internal/ui"
	"golang.org/x/term"
)

type uploadOptions struct {
	description string
	maxDepth    int
	reportPath  string
	retry       bool
}

func (a *app) uploadCmd() *cobra.Command {
	var uo uploadOptions

	cmd := &cobra.Command{
		Use:   "upload PATH...",
		Short: "Upload files or directories",
		Long: `Upload files or directories. Directories are walked recursively,
skipping hidden files and partial downloads.

With --report the outcome is written as markdown. Failed files stay
listed in the report until they upload, and --retry uploads them again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpload(args, uo)
		},
	}

	cmd.Flags().StringVar(&uo.description, "description", "", "Description stored with every uploaded file")
	cmd.Flags().IntVar(&uo.maxDepth, "max-depth", scanner.Unlimited, "Maximum directory depth to traverse (-1 for unlimited)")
	cmd.Flags().StringVar(&uo.reportPath, "report", "", "Path to write a markdown upload report")
	cmd.Flags().BoolVar(&uo.retry, "retry", false, "Also upload the files pending in --report")
	return cmd
}

func (a *app) runUpload(args []string, uo uploadOptions) error {
	if uo.retry && uo.reportPath == "" {
		return fmt.Errorf("--retry needs --report")
	}

	var rep *report.Report
	if uo.reportPath != "" {
		var err error
		rep, err = report.New(uo.reportPath)
		if err != nil {
			return err
		}
	}

	paths := append([]string(nil), args...)
	if uo.retry {
		pending := rep.Pending()
		log.Info().Int("count", len(pending)).Msg("Retrying pending uploads from report")
		paths = append(paths, pending...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to upload: give at least one path")
	}

	existing, missing := splitMissing(paths)
	for _, p := range existing {
		if abs, err := filepath.Abs(p); err == nil {
			if provider := scanner.DetectSyncFolder(abs); provider != scanner.NoSync {
				log.Warn().Str("path", p).Msg(scanner.SyncWarning(provider))
			}
		}
	}
	files, err := scanner.Collect(existing, uo.maxDepth)
	if err != nil {
		return err
	}
	log.Debug().Int("files", len(files)).Int("missing", len(missing)).Msg("Collected files")

	svc, err := a.service()
	if err != nil {
		return err
	}

	if !a.opts.json {
		a.printer.Section(fmt.Sprintf("%s Uploading %d files", ui.IconUpload, len(files)))
	}

	results, summary := a.uploadAll(svc, files, uo.description)
	for _, res := range missing {
		a.printer.PrintUploadResult(res)
		results = append(results, res)
		summary.Failed++
	}
	total := len(results)

	if rep != nil {
		for _, res := range results {
			rep.Add(res)
		}
		if err := rep.Write(); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		summary.Pending = len(rep.Pending())
	}

	cwd, _ := os.Getwd()
	if done, err := a.emit(jsonoutput.FromUploads(results, cwd)); done {
		if err != nil {
			return err
		}
	} else {
		a.printer.PrintSummary(summary)
		if rep != nil {
			a.printer.ReportWritten(rep.Path())
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", summary.Failed, total)
	}
	return nil
}

// uploadAll uploads files one by one. A failure is recorded and the batch
// continues.
func (a *app) uploadAll(svc cloud.FileService, files []*types.LocalFile, description string) ([]types.UploadResult, *ui.OperationSummary) {
	summary := &ui.OperationSummary{}
	results := make([]types.UploadResult, 0, len(files))

	var bar *ui.ProgressBar
	if !a.opts.json && isTerminal(a.printer.Writer()) {
		bar = ui.NewProgressBar(len(files), "Uploading")
	}

	for _, f := range files {
		res := types.UploadResult{Path: f.Path}
		file, err := svc.UploadFile(f.Path, description)
		if err != nil {
			log.Warn().Err(err).Str("path", f.Path).Msg("Upload failed")
			res.Error = err.Error()
			summary.Failed++
		} else {
			res.File = file
			summary.Uploaded++
			summary.Bytes += file.Size
		}
		results = append(results, res)

		if bar != nil {
			bar.Increment()
			fmt.Fprint(a.printer.Writer(), "\r\033[K")
		}
		a.printer.PrintUploadResult(res)
		if bar != nil {
			fmt.Fprint(a.printer.Writer(), bar.View())
		}
	}
	if bar != nil {
		fmt.Fprintln(a.printer.Writer())
	}

	return results, summary
}

// splitMissing separates paths that no longer exist so they can be reported
// as failures instead of aborting the batch.
func splitMissing(paths []string) ([]string, []types.UploadResult) {
	var existing []string
	var missing []types.UploadResult
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			abs, absErr := filepath.Abs(p)
			if absErr != nil {
				abs = p
			}
			missing = append(missing, types.UploadResult{
				Path:  abs,
				Error: (&cloud.NotFoundError{Path: p, Err: err}).Error(),
			})
			continue
		}
		existing = append(existing, p)
	}
	return existing, missing
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
