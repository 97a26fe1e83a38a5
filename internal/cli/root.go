// Package cli implements the liketype command line tool.
package cli

import (
	"context"
	"io"

	"github.com/kleinwareio/liketype/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	typeName   string
	strategy   string
	format     string
	logLevel   string
}

// NewRootCommand builds the liketype command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "liketype",
		Short: "Render and compare lists of values as wrapper sequences",
		Long: `liketype reads lists of values from JSON, YAML or MessagePack files, wraps
them in a named sequence type and renders or compares them the way the
liketype library does.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (JSON or YAML)")
	flags.StringVar(&opts.typeName, "type", "", "type name of the sequence (default \"Values\")")
	flags.StringVar(&opts.strategy, "strategy", "", "render strategy: count-only, single-line or multi-line")
	flags.StringVar(&opts.format, "format", "", "input format: json, yaml or msgpack (default from file extension)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newRenderCommand(opts), newCompareCommand(opts))
	return rootCmd
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// session is the state shared by a single command run.
type session struct {
	settings Settings
	logger   *logging.Logger
	ctx      context.Context
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	settings, err := loadSettings(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.EnsureCorrelationID(ctx)
	logger = logger.With(logging.String("command", cmd.Name()))
	logger.Debug(ctx, "settings resolved",
		logging.String("type", settings.TypeName),
		logging.Stringer("strategy", settings.Strategy),
		logging.String("strategy_source", string(settings.Sources[keyRenderStrategy])),
		logging.String("format", settings.Format))
	return &session{settings: settings, logger: logger, ctx: ctx}, nil
}

func newLogger(out io.Writer, level logging.Level) (*logging.Logger, error) {
	config := logging.DefaultConfig()
	config.Output = out
	config.MinLevel = level
	return logging.New(config)
}
