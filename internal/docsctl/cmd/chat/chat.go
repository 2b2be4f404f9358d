package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// IOStreams bundles the standard streams for the command.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type ChatOptions struct {
	ServerAddr string
	Timeout    time.Duration

	IOStreams
}

func NewChatOptions(ioStreams IOStreams) *ChatOptions {
	return &ChatOptions{
		IOStreams:  ioStreams,
		ServerAddr: "http://localhost:11790",
		Timeout:    120 * time.Second,
	}
}

func NewCmdChat(ioStreams IOStreams) *cobra.Command {
	o := NewChatOptions(ioStreams)

	cmd := &cobra.Command{
		Use:                   "chat [message]",
		DisableFlagsInUseLine: true,
		Short:                 "Chat with the Moralis docs assistant",
		Long: heredoc.Doc(`
			Start a conversation with the Moralis docs assistant through the
			docschat server.

			When invoked with a message argument, send the message and stream
			the reply to stdout. Without arguments, open an interactive prompt
			that keeps the conversation history across turns.`),
		Example: heredoc.Doc(`
			# Single message mode
			docsctl chat "How do I fetch NFT metadata?"

			# Interactive mode
			docsctl chat

			# Connect to a specific docschat server
			docsctl chat --server=http://localhost:11790 "What is Moralis Cortex?"`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&o.ServerAddr, "server", o.ServerAddr, "Docschat HTTP server address")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", o.Timeout, "Per-request timeout")

	return cmd
}

func (o *ChatOptions) Complete() error {
	if !strings.HasPrefix(o.ServerAddr, "http://") && !strings.HasPrefix(o.ServerAddr, "https://") {
		o.ServerAddr = "http://" + o.ServerAddr
	}
	return nil
}

func (o *ChatOptions) Run(ctx context.Context, args []string) error {
	client := NewDocschatClient(o.ServerAddr, &http.Client{Timeout: o.Timeout})

	if len(args) > 0 {
		message := strings.Join(args, " ")
		messages := []ChatMessage{{Role: "user", Content: message}}
		_, err := client.ChatStream(ctx, messages, func(delta string) {
			fmt.Fprint(o.Out, delta)
		})
		fmt.Fprintln(o.Out)
		return err
	}

	return o.runInteractive(ctx, client)
}

// runInteractive runs a prompt loop, carrying the conversation history so the
// server sees the full exchange each turn.
func (o *ChatOptions) runInteractive(ctx context.Context, client *DocschatClient) error {
	prompt := color.New(color.FgCyan, color.Bold)
	reply := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	fmt.Fprintln(o.Out, "Moralis docs assistant. Type a question, or 'exit' to quit.")

	var history []ChatMessage
	scanner := bufio.NewScanner(o.In)
	for {
		prompt.Fprint(o.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(o.Out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		history = append(history, ChatMessage{Role: "user", Content: line})
		full, err := client.ChatStream(ctx, history, func(delta string) {
			reply.Fprint(o.Out, delta)
		})
		fmt.Fprintln(o.Out)
		if err != nil {
			warn.Fprintf(o.ErrOut, "error: %v\n", err)
			// Drop the failed turn so a retry resends a clean history.
			history = history[:len(history)-1]
			continue
		}

		history = append(history, ChatMessage{Role: "assistant", Content: full})
	}
}
