package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randomuser"
	"github.com/wesleyorama2/randomuser/internal/config"
	"github.com/wesleyorama2/randomuser/internal/output"
)

var version = "0.1.0"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	baseURL    string
	timeout    string
	format     string
	noColor    bool
	verbose    bool
	strict     bool

	cfg *config.Config
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:     "randomuser",
		Short:   "Fetch synthetic person records from randomuser.me",
		Version: version,
		Long: `randomuser fetches pseudo-randomly generated people from the
randomuser.me API, with optional gender, nationality, seed and
password filters, and prints them as text, JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/"+config.DefaultFileName+")")
	flags.StringVar(&opts.baseURL, "base-url", "", "API endpoint")
	flags.StringVar(&opts.timeout, "timeout", "", "request timeout, e.g. 10s")
	flags.StringVarP(&opts.format, "format", "o", "", "output format: text, json or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")
	flags.BoolVar(&opts.strict, "strict", true, "validate responses against the result schema")

	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newOneCmd(opts))
	cmd.AddCommand(newBenchCmd(opts))
	cmd.AddCommand(newNationalitiesCmd(opts))

	return cmd
}

// Execute runs the command line and prints any error with its kind.
// This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), output.FormatError(err, !output.IsTerminal(os.Stderr)))
	}
	return err
}

// load merges the config file with explicitly set flags and installs the
// process logger.
func (o *globalOptions) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadConfig(o.configPath)
	} else {
		cfg, err = config.LoadOptional("")
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if flags.Changed("timeout") {
		if _, err := config.ParseDurationString(o.timeout); err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.Timeout = o.timeout
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = o.noColor
	}
	if flags.Changed("strict") {
		strict := o.strict
		cfg.Strict = &strict
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return errs[0]
	}
	o.cfg = cfg

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return nil
}

// colorless reports whether output to w should be plain.
func (o *globalOptions) colorless(w io.Writer) bool {
	if o.cfg.Output.NoColor {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !output.IsTerminal(f)
}

// generator builds a client from the merged configuration.
func (o *globalOptions) generator() *randomuser.Generator {
	cfg := o.cfg
	opts := []randomuser.Option{
		randomuser.WithBaseURL(cfg.BaseURL),
		randomuser.WithLogger(slog.Default()),
		randomuser.WithSchemaValidation(cfg.StrictValidation()),
		randomuser.WithUserAgent("randomuser-cli/" + version),
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, randomuser.WithTimeout(d))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, randomuser.WithUserAgent(cfg.UserAgent))
	}
	for k, v := range cfg.Headers {
		opts = append(opts, randomuser.WithHeader(k, v))
	}
	return randomuser.NewGenerator(opts...)
}
