package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	magiceden "github.com/magiceden-go/client-go"
	"github.com/magiceden-go/client-go/config"
)

var version = "dev" // set during build

// Config holds the process environment the CLI runs against.
type Config struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() Config {
	return Config{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
	}
}

// globalFlags are the persistent flags shared by all commands.
type globalFlags struct {
	configFile string
	envFile    string
	baseURL    string
	logLevel   string
	pretty     bool
}

// app is what every command needs at run time.
type app struct {
	cfg    Config
	flags  globalFlags
	client *magiceden.Client
	logger zerolog.Logger
}

func run(args []string, cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand(cfg)
	root.SetArgs(args[1:])
	return root.ExecuteContext(ctx)
}

func newRootCommand(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "magiceden",
		Short: "Query the Magic Eden marketplace API",
		Long: `Command-line access to the Magic Eden v2 API.

Settings are read from magiceden.yaml, .env and MAGICEDEN_* environment
variables. MAGICEDEN_API_KEY is required.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "magiceden.yaml", "YAML configuration file")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "override the API base URL")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "override the log level")
	pf.BoolVar(&a.flags.pretty, "pretty", false, "human readable logs")

	root.AddCommand(
		newCollectionsCommand(a),
		newPopularCommand(a),
		newTokenCommand(a),
		newWalletCommand(a),
		newPoolsCommand(a),
		newGetCommand(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(config.Source{
		File:    a.flags.configFile,
		DotEnv:  a.flags.envFile,
		Environ: a.cfg.Environ,
	})
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.pretty {
		cfg.Log.Pretty = true
	}

	a.logger = cfg.Logger(a.cfg.Stderr)

	opts := []magiceden.Option{magiceden.WithLogger(a.logger)}
	if a.flags.baseURL != "" {
		opts = append(opts, magiceden.WithBaseURL(a.flags.baseURL))
	}
	a.client, err = cfg.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// print writes v as indented JSON.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.cfg.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
