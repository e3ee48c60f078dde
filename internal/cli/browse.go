package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/tui"
)

var runBrowser = tui.Run

func (a *app) browseCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through stored files interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.json {
				return fmt.Errorf("browse is interactive and does not support --json")
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			return runBrowser(svc, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", cloud.DefaultListLimit, "Files per page")
	return cmd
}
