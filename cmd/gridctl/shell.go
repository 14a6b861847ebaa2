package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/protocol/command"
	"github.com/danmuck/gridctl/internal/protocol/event"
	"github.com/ergochat/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	historyFileName = ".gridctl_history"
	historySize     = 500
	shellPrompt     = "gridctl> "
)

const shellHelp = `Protocol commands are typed as they appear on the wire, without the tag:
  CallMake 5 1000 Timeout=30000

Shell commands (lower case):
  raw <line>     send <line> verbatim
  login          send Login with the configured credentials
  connect        reconnect after a disconnect or a dropped connection
  disconnect     close the connection
  status         show the connection state and next tag
  journal        list recently sent commands
  commands       list protocol commands
  events         list protocol events
  help           show this text
  quit, exit     leave the shell
`

func shellCmd(opts *rootOptions) *cobra.Command {
	var noLogin bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive console: send commands and watch events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, cfg, err := opts.dial(ctx, cmd, !noLogin)
			if err != nil {
				return err
			}
			defer c.Close()

			editor := newLineEditor()
			defer editor.Close()

			sh := newShell(c, cmd.OutOrStdout(), cfg.ConnectAttempts)
			sh.follow()
			return sh.run(ctx, editor)
		},
	}

	cmd.Flags().BoolVar(&noLogin, "no-login", false, "skip the Login command after connecting")

	return cmd
}

// lineEditor reads with readline on a terminal and falls back to a plain
// scanner when stdin is piped.
type lineEditor struct {
	interactive bool
	rl          *readline.Instance
	scanner     *bufio.Scanner
}

func newLineEditor() *lineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyPath(),
		HistoryLimit:           historySize,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed (%v), using basic input\n", err)
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}
	return &lineEditor{interactive: true, rl: rl}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

// GetLine returns io.EOF at end of input or on Ctrl-C.
func (le *lineEditor) GetLine(prompt string) (string, error) {
	if !le.interactive {
		if !le.scanner.Scan() {
			if err := le.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return le.scanner.Text(), nil
	}

	le.rl.SetPrompt(prompt)
	line, err := le.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *lineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
	}
}

type lineReader interface {
	GetLine(prompt string) (string, error)
}

type shell struct {
	c        *client.Client
	attempts int

	mu  sync.Mutex
	out io.Writer
}

func newShell(c *client.Client, out io.Writer, attempts int) *shell {
	return &shell{c: c, out: out, attempts: attempts}
}

func (s *shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

// follow prints every item of the current connection until its channel
// closes. It must be called once per successful connect.
func (s *shell) follow() {
	items := s.c.Events()
	if items == nil {
		return
	}
	go func() {
		for item := range items {
			s.printf("%s\n", formatItem(item, false))
		}
	}()
}

func (s *shell) run(ctx context.Context, in lineReader) error {
	for {
		line, err := in.GetLine(shellPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		quit, err := s.exec(ctx, line)
		if err != nil {
			s.printf("error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one console line. Errors are reported to the user and never end
// the session; only quit and exit do.
func (s *shell) exec(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(line, "#") {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		s.printf("%s", shellHelp)
	case "commands":
		s.printf("%s\n", strings.Join(command.Names(), "\n"))
	case "events":
		s.printf("%s\n", strings.Join(event.Names(), "\n"))
	case "status":
		st := s.c.Status()
		s.printf("server=%s connected=%t conn=%s next_tag=%d\n", st.Server, st.Connected, st.ConnectionID, st.NextTag)
	case "journal":
		for _, e := range s.c.Journal() {
			s.printf("%s tag=%d %s %s\n", e.SentAt.Format("15:04:05.000"), e.Tag, e.Command, e.ConnectionID)
		}
	case "connect":
		if err := s.c.ConnectWithRetry(ctx, s.attempts); err != nil {
			return false, err
		}
		s.follow()
		s.printf("connected to %s\n", s.c.Addr())
	case "disconnect":
		return false, s.c.Disconnect()
	case "login":
		return false, s.report(s.c.Login())
	case "raw":
		return false, s.report(s.c.SendRaw(strings.TrimSpace(strings.TrimPrefix(line, "raw"))))
	default:
		cmd, err := command.Parse(line)
		if err != nil {
			return false, err
		}
		return false, s.report(s.c.Send(cmd))
	}
	return false, nil
}

func (s *shell) report(tag uint64, err error) error {
	if err != nil {
		return err
	}
	s.printf("tag=%d\n", tag)
	return nil
}
