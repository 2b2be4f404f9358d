package cmd

import (
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/moralisweb3/docschat/internal/docsctl/cmd/chat"
)

// NewDefaultDocsCtlCommand creates the `docsctl` command with default streams.
func NewDefaultDocsCtlCommand() *cobra.Command {
	return NewDocsCtlCommand(os.Stdin, os.Stdout, os.Stderr)
}

func NewDocsCtlCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:   "docsctl",
		Short: "docsctl talks to a docschat server",
		Long: heredoc.Doc(`
			docsctl is the CLI client for the docschat server.

			It sends conversations to the server's chat endpoint and streams
			the assistant's reply to the terminal as it is produced.`),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	ioStreams := chat.IOStreams{In: in, Out: out, ErrOut: errOut}
	cmds.AddCommand(chat.NewCmdChat(ioStreams))

	return cmds
}
