package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/types"
)

const (
	demoListLimit   = 10
	demoSearchQuery = "document"
	demoSearchType  = "text/plain"
	demoShareExpiry = "24h"
)

func (a *app) demoCmd() *cobra.Command {
	var uploadPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the API: list, search, upload and share",
		Long: `Walk through the API: list files, search for text documents,
optionally upload a file, and share the first listed file for 24h.
A failing step is reported and the walkthrough carries on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			svc, err := a.service()
			if errors.Is(err, errMissingAPIKey) {
				fmt.Fprintf(out, "Please set %s environment variable\n", envAPIKey)
				return nil
			}
			if err != nil {
				return err
			}

			runDemo(out, svc, uploadPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&uploadPath, "upload", "", "Also upload this file")
	return cmd
}

// runDemo runs each step in order. Failures are printed and never stop the
// remaining steps.
func runDemo(out io.Writer, svc cloud.FileService, uploadPath string) {
	var files []types.FileDescriptor

	demoStep(out, "Listing files...", func() error {
		var err error
		files, err = svc.ListFiles(demoListLimit, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Found %d files\n", len(files))
		for _, f := range files {
			fmt.Fprintf(out, "- %s (%d bytes)\n", f.Name, f.Size)
		}
		return nil
	})

	demoStep(out, "\nSearching for text files...", func() error {
		found, err := svc.SearchFiles(types.SearchFilter{Query: demoSearchQuery, FileType: demoSearchType})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Found %d text files\n", len(found))
		return nil
	})

	if uploadPath != "" {
		demoStep(out, fmt.Sprintf("\nUploading %s...", uploadPath), func() error {
			file, err := svc.UploadFile(uploadPath, "Uploaded by the yukifiles demo")
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Uploaded file ID: %s\n", file.ID)
			return nil
		})
	}

	if len(files) > 0 {
		first := files[0]
		demoStep(out, fmt.Sprintf("\nCreating share link for %s...", first.Name), func() error {
			link, err := svc.CreateShareLink(first.ID, types.ShareRequest{ExpiresIn: demoShareExpiry})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Share URL: %s\n", link.URL)
			return nil
		})
	}
}

func demoStep(out io.Writer, title string, step func() error) {
	fmt.Fprintln(out, title)
	err := step()
	if err == nil {
		return
	}
	log.Debug().Err(err).Msg("Demo step failed")
	if cloud.IsAPIError(err) {
		fmt.Fprintf(out, "API request failed: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
