package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/protocol/command"
	"github.com/spf13/cobra"
)

func sendCmd(opts *rootOptions) *cobra.Command {
	var (
		raw     bool
		noLogin bool
		wait    time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "send <Command> [args...] [Key=Value...]",
		Short: "Send one command and print its tag",
		Long: `Send builds a command from its arguments exactly as it appears on the
wire, without the COMMANDTAG suffix, for example:

  gridctl send CallMake 5 1000 Timeout=30000

Omitted attributes keep their defaults. --raw skips validation and writes
the line verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			var typed command.Command
			if !raw {
				parsed, err := command.Parse(line)
				if err != nil {
					return err
				}
				typed = parsed
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			c, _, err := opts.dial(ctx, cmd, !noLogin)
			if err != nil {
				return err
			}
			defer c.Close()

			tag, err := sendLine(c, typed, line)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sent tag=%d\n", tag)
			if wait > 0 {
				return waitEvents(ctx, c, wait, out, asJSON)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "send the line verbatim without validation")
	cmd.Flags().BoolVar(&noLogin, "no-login", false, "skip the Login command after connecting")
	cmd.Flags().DurationVar(&wait, "wait", 0, "print events for this long after sending")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print events as JSON")

	return cmd
}

// sendLine sends typed when set, otherwise line as a raw command.
func sendLine(c *client.Client, typed command.Command, line string) (uint64, error) {
	if typed != nil {
		return c.Send(typed)
	}
	return c.SendRaw(line)
}

func waitEvents(ctx context.Context, c *client.Client, wait time.Duration, out io.Writer, asJSON bool) error {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	return printEvents(ctx, c.Events(), out, asJSON)
}
