package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yukifiles/go/internal/types"
	"golang.org/x/term"
)

var readTerminalPassword = term.ReadPassword

func (a *app) shareCmd() *cobra.Command {
	var req types.ShareRequest
	var prompt bool

	cmd := &cobra.Command{
		Use:   "share FILE_ID",
		Short: "Create a share link for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt {
				if req.Password != "" {
					return fmt.Errorf("--password and --password-prompt are mutually exclusive")
				}
				password, err := readPassword(a.stdin, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				req.Password = password
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			link, err := svc.CreateShareLink(args[0], req)
			if err != nil {
				return err
			}
			if done, err := a.emit(link); done {
				return err
			}
			a.printer.PrintShareLink(link)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ExpiresIn, "expires-in", types.DefaultShareExpiry, "Link lifetime, e.g. 24h or 7d")
	cmd.Flags().StringVar(&req.Password, "password", "", "Protect the link with a password")
	cmd.Flags().BoolVar(&prompt, "password-prompt", false, "Read the link password from the terminal")
	return cmd
}

// readPassword reads a password without echo from a terminal, or a single
// line from any other reader.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := readTerminalPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
