package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/observability"
	"github.com/danmuck/gridctl/internal/protocol/event"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func listenCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON  bool
		noLogin bool
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Connect, log in and print server events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			c, cfg, err := opts.dial(ctx, cmd, !noLogin)
			if err != nil {
				return err
			}
			defer c.Close()
			return runListen(ctx, c, cfg.MetricsAddr, cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per event")
	cmd.Flags().BoolVar(&noLogin, "no-login", false, "skip the Login command after connecting")

	return cmd
}

// runListen prints events until ctx is done or the connection drops. When
// metricsAddr is set the status server runs alongside and stops with it.
func runListen(ctx context.Context, c *client.Client, metricsAddr string, out io.Writer, asJSON bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return printEvents(gctx, c.Events(), out, asJSON)
	})
	if metricsAddr != "" {
		srv := observability.NewStatusServer("gridctl", log.Logger,
			func() any { return c.Status() },
			func() any { return c.Journal() },
		)
		g.Go(func() error {
			return srv.ListenAndServe(gctx, metricsAddr)
		})
	}
	return g.Wait()
}

// printEvents drains items until ctx is done or the channel closes. Decode
// failures are printed and skipped; a lost connection ends the loop with its
// error.
func printEvents(ctx context.Context, items <-chan client.Item, out io.Writer, asJSON bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case item, ok := <-items:
			if !ok {
				return nil
			}
			if item.Err != nil && errors.Is(item.Err, client.ErrReadFailed) {
				return item.Err
			}
			fmt.Fprintln(out, formatItem(item, asJSON))
		}
	}
}

type itemRecord struct {
	Event   string      `json:"event,omitempty"`
	Session uint32      `json:"session"`
	Fields  event.Event `json:"fields,omitempty"`
	Error   string      `json:"error,omitempty"`
	Line    string      `json:"line,omitempty"`
}

func formatItem(item client.Item, asJSON bool) string {
	if !asJSON {
		if item.Err != nil {
			return fmt.Sprintf("! %v", item.Err)
		}
		return event.Format(item.Event)
	}

	rec := itemRecord{Line: item.Line}
	if item.Err != nil {
		rec.Error = item.Err.Error()
	} else {
		rec.Event = item.Event.Name()
		rec.Session = uint32(item.Event.Session())
		rec.Fields = item.Event
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}
