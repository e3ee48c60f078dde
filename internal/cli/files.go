package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/types"
)

func (a *app) listCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			files, err := svc.ListFiles(limit, offset)
			if err != nil {
				return err
			}
			if done, err := a.emit(files); done {
				return err
			}
			a.printer.PrintFiles("Files", files)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", cloud.DefaultListLimit, "Maximum number of files to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of files to skip")
	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE_ID",
		Short: "Show the metadata of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			file, err := svc.GetFileInfo(args[0])
			if err != nil {
				return err
			}
			if done, err := a.emit(file); done {
				return err
			}
			a.printer.PrintFileDetails(file)
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var filter types.SearchFilter

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search files by name and filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.MinSize < 0 || filter.MaxSize < 0 {
				return fmt.Errorf("size filters must not be negative")
			}
			if filter.MaxSize > 0 && filter.MinSize > filter.MaxSize {
				return fmt.Errorf("--min-size %d is larger than --max-size %d", filter.MinSize, filter.MaxSize)
			}
			filter.Query = args[0]

			svc, err := a.service()
			if err != nil {
				return err
			}
			files, err := svc.SearchFiles(filter)
			if err != nil {
				return err
			}
			if done, err := a.emit(files); done {
				return err
			}
			a.printer.PrintFiles(fmt.Sprintf("Results for %q", filter.Query), files)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.FileType, "type", "", "Only return files of this MIME type")
	cmd.Flags().Int64Var(&filter.MinSize, "min-size", 0, "Minimum size in bytes")
	cmd.Flags().Int64Var(&filter.MaxSize, "max-size", 0, "Maximum size in bytes")
	return cmd
}

func (a *app) downloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download FILE_ID",
		Short: "Download a file",
		Long: `Download a file. Without --output the file is saved under its
remote name in the current directory. An existing file is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID := args[0]
			svc, err := a.service()
			if err != nil {
				return err
			}

			target, err := downloadTarget(svc, fileID, output)
			if err != nil {
				return err
			}
			log.Debug().Str("file_id", fileID).Str("path", target).Msg("Downloading")

			saved, err := svc.DownloadFile(fileID, target)
			if err != nil {
				return err
			}
			if done, err := a.emit(map[string]string{"id": fileID, "path": saved}); done {
				return err
			}
			a.printer.PrintDownloaded(fileID, saved)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination path or directory")
	return cmd
}

// downloadTarget resolves the local path. A directory or an empty output
// takes the remote file name.
func downloadTarget(svc cloud.FileService, fileID, output string) (string, error) {
	if output != "" {
		info, err := os.Stat(output)
		if err != nil || !info.IsDir() {
			return output, nil
		}
	}

	file, err := svc.GetFileInfo(fileID)
	if err != nil {
		return "", err
	}
	name := filepath.Base(filepath.Clean("/" + file.Name))
	if name == "/" || name == "." {
		name = fileID
	}
	if output == "" {
		return name, nil
	}
	return filepath.Join(output, name), nil
}

func (a *app) updateCmd() *cobra.Command {
	var req types.UpdateRequest

	cmd := &cobra.Command{
		Use:   "update FILE_ID",
		Short: "Rename a file or change its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" && req.Description == "" {
				log.Warn().Msg("Neither --name nor --description given, sending an empty update")
			}
			svc, err := a.service()
			if err != nil {
				return err
			}

			before := ""
			if req.Name != "" && !a.opts.json {
				if current, err := svc.GetFileInfo(args[0]); err == nil {
					before = current.Name
				}
			}

			file, err := svc.UpdateFile(args[0], req)
			if err != nil {
				return err
			}
			if done, err := a.emit(file); done {
				return err
			}
			a.printer.PrintUpdated(before, file)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "New file name")
	cmd.Flags().StringVar(&req.Description, "description", "", "New description")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE_ID",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			deleted, err := svc.DeleteFile(args[0])
			if err != nil {
				return err
			}
			if done, err := a.emit(map[string]any{"id": args[0], "deleted": deleted}); done {
				return err
			}
			a.printer.PrintDeleted(args[0])
			return nil
		},
	}
}
