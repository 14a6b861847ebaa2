package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/gridctl/internal/client"
	"github.com/danmuck/gridctl/internal/observability"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	configPath      string
	server          string
	port            uint16
	username        string
	password        string
	connectAttempts int
	metricsAddr     string
}

func main() {
	observability.InitLogger("gridctl")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gridctl",
		Short: "Control client for a telephony media server",
		Long: `gridctl speaks the line-oriented control protocol of a telephony media
server: it sends tagged commands over the control port and prints the
events the server pushes back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a gridctl TOML config")
	flags.StringVar(&opts.server, "server", "", "server IP address")
	flags.Uint16Var(&opts.port, "port", 0, "control port")
	flags.StringVar(&opts.username, "username", "", "login username")
	flags.StringVar(&opts.password, "password", "", "login password")
	flags.IntVar(&opts.connectAttempts, "connect-attempts", 0, "connect attempts before giving up")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /health, /journal and /metrics on this address")

	rootCmd.AddCommand(
		listenCmd(opts),
		sendCmd(opts),
		shellCmd(opts),
		commandsCmd(),
		versionCmd(),
	)
	return rootCmd
}

// resolve loads the config file, if any, then applies the flags the user set.
func (o *rootOptions) resolve(cmd *cobra.Command) (runConfig, error) {
	cfg := defaultRunConfig()
	if o.configPath != "" {
		loaded, err := loadRunConfig(o.configPath)
		if err != nil {
			return runConfig{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.Client.Server = o.server
	}
	if flags.Changed("port") {
		cfg.Client.ControlPort = o.port
	}
	if flags.Changed("username") {
		cfg.Client.Username = o.username
	}
	if flags.Changed("password") {
		cfg.Client.Password = o.password
	}
	if flags.Changed("connect-attempts") {
		if o.connectAttempts < 1 {
			return runConfig{}, fmt.Errorf("--connect-attempts must be >= 1")
		}
		cfg.ConnectAttempts = o.connectAttempts
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = o.metricsAddr
	}
	return cfg, nil
}

// dial resolves the configuration, connects and logs in.
func (o *rootOptions) dial(ctx context.Context, cmd *cobra.Command, login bool) (*client.Client, runConfig, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, runConfig{}, err
	}
	c, err := client.New(cfg.Client)
	if err != nil {
		return nil, runConfig{}, err
	}
	if err := c.ConnectWithRetry(ctx, cfg.ConnectAttempts); err != nil {
		return nil, runConfig{}, err
	}
	if login {
		if _, err := c.Login(); err != nil {
			_ = c.Close()
			return nil, runConfig{}, err
		}
	}
	return c, cfg, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
