package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/jsonoutput"
	"github.com/yukifiles/go/internal/types"
	"github.com/yukifiles/go/internal/ui"
)

// Version is set at build time
var Version = "dev"

// newService builds the file service used by every command
var newService = func(cfg types.Config) (cloud.FileService, error) {
	return cloud.New(cfg)
}

// app carries the state shared by the subcommands of one invocation
type app struct {
	opts    options
	printer *ui.Printer
	stdin   io.Reader
}

// NewRootCmd builds the yukifiles command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "yukifiles",
		Short: "Upload, download and share files on YukiFiles",
		Long: `Upload, download and share files on YukiFiles.

Every command needs an API key, taken from --api-key or the
YUKIFILES_API_KEY environment variable.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), a.opts.verbose, a.opts.json)
			a.printer = ui.NewPrinterTo(cmd.OutOrStdout(), a.opts.verbose, a.opts.json)
			a.stdin = cmd.InOrStdin()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.apiKey, "api-key", "", "API key (default: $"+envAPIKey+")")
	flags.StringVar(&a.opts.baseURL, "base-url", "", "API base URL (default: $"+envBaseURL+" or "+types.DefaultBaseURL+")")
	flags.DurationVar(&a.opts.timeout, "timeout", 0, "Request timeout, 0 for none")
	flags.BoolVar(&a.opts.json, "json", false, "Output results in JSON format instead of human-readable text")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		a.listCmd(),
		a.infoCmd(),
		a.searchCmd(),
		a.uploadCmd(),
		a.downloadCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.shareCmd(),
		a.browseCmd(),
		a.demoCmd(),
	)

	return rootCmd
}

// Execute runs the command line and prints a failure to stderr
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err.Error()))
	}
	return err
}

// service resolves the configuration and connects to the service
func (a *app) service() (cloud.FileService, error) {
	cfg, err := resolveConfig(&a.opts, Version)
	if err != nil {
		return nil, err
	}
	svc, err := newService(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("Client configured")
	return svc, nil
}

// emit prints v as JSON when --json is set and reports whether it did
func (a *app) emit(v any) (bool, error) {
	if !a.opts.json {
		return false, nil
	}
	out, err := jsonoutput.ToJSON(v)
	if err != nil {
		return true, err
	}
	fmt.Fprintln(a.printer.Writer(), out)
	return true, nil
}
