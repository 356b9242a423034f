package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
	"github.com/Mig-uel/event-emitter-demo/internal/config"
	"github.com/Mig-uel/event-emitter-demo/internal/logging"
)

// options holds the configuration shared by all subcommands once the
// environment and flags have been merged.
type options struct {
	cfg    config.Config
	logger zerolog.Logger

	logLevel  string
	logFormat string
	count     int
	variant   string
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "emitterdemo",
		Short:         "Parent/child counter demo on a Go component runtime",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (default from EMITTER_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(renderCmd(opts), simulateCmd(opts))
	return root
}

// addTreeFlags registers the flags that shape the component tree.
func addTreeFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().IntVar(&opts.count, "count", 0, "initial counter value (default from EMITTER_INITIAL_COUNT or 9)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "child variant: emitter or display")
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("count") {
		cfg.InitialCount = o.count
	}
	if flags.Changed("variant") {
		v, err := child.ParseVariant(o.variant)
		if err != nil {
			return err
		}
		cfg.ChildVariant = v
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}
