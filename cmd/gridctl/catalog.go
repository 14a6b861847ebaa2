package main

import (
	"fmt"

	"github.com/danmuck/gridctl/internal/protocol/command"
	"github.com/danmuck/gridctl/internal/protocol/event"
	"github.com/spf13/cobra"
)

func commandsCmd() *cobra.Command {
	var events bool

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands gridctl can send",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := command.Names()
			if events {
				names = event.Names()
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	cmd.Flags().BoolVar(&events, "events", false, "list the events gridctl decodes instead")

	return cmd
}
