package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smasher164/untyped/config"
	"github.com/smasher164/untyped/debruijn"
	"github.com/smasher164/untyped/eval"
)

type globalOptions struct {
	configPath string
	strategy   string
	maxSteps   int
	trace      bool
	logLevel   string
	format     string
}

// session is what every command runs with once flags and configuration
// have been merged.
type session struct {
	opts   globalOptions
	config *config.Config
	eval   *eval.Evaluator
	log    *logrus.Logger
}

func newRootCommand() *cobra.Command {
	s := &session{log: logrus.New()}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "untyped [flags] FILE",
		Short: "Reduce untyped lambda-calculus expressions to normal form",
		Long: "untyped reads one lambda expression from FILE, reduces it to normal form and\n" +
			"prints the result. Expressions are variables, invocations (f a b) and\n" +
			"functions ([x y] body) or (\\x.body).",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{errors.Errorf("expected exactly one FILE argument, got %d", len(args))}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.before(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.eval.EvalFile(args[0])
			if err != nil {
				return err
			}
			return eval.Write(cmd.OutOrStdout(), res, s.config.Format)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.opts.configPath, "config", "", "Path to a TOML configuration file")
	flags.StringVar(&s.opts.strategy, "strategy", defaults.Strategy, "Reduction strategy: "+strings.Join(debruijn.Strategies(), ", "))
	flags.IntVar(&s.opts.maxSteps, "max-steps", defaults.MaxSteps, "Maximum number of reduction steps")
	flags.BoolVar(&s.opts.trace, "trace", defaults.Trace, "Log every intermediate term to stderr")
	flags.StringVar(&s.opts.logLevel, "log-level", defaults.LogLevel, "Log messages above specified level: debug, info, warn, error, fatal or panic")
	flags.StringVar(&s.opts.format, "format", defaults.Format, "Output format: "+strings.Join(config.Formats, ", "))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
	rootCmd.AddCommand(newReplCommand(s))
	return rootCmd
}

// before merges the configuration file with the flags that were set
// explicitly and prepares the logger and evaluator.
func (s *session) before(cmd *cobra.Command) error {
	c := config.Default()
	if s.opts.configPath != "" {
		loaded, err := config.Load(s.opts.configPath)
		if err != nil {
			return &usageError{err}
		}
		c = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		c.Strategy = s.opts.strategy
	}
	if flags.Changed("max-steps") {
		c.MaxSteps = s.opts.maxSteps
	}
	if flags.Changed("trace") {
		c.Trace = s.opts.trace
	}
	if flags.Changed("log-level") {
		c.LogLevel = s.opts.logLevel
	}
	if flags.Changed("format") {
		c.Format = s.opts.format
	}
	if err := c.Validate(); err != nil {
		return &usageError{err}
	}
	s.config = c

	s.log.SetOutput(cmd.ErrOrStderr())
	s.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return &usageError{err}
	}
	if c.Trace && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	s.log.SetLevel(level)

	ev, err := eval.New(c, s.log)
	if err != nil {
		return &usageError{err}
	}
	s.eval = ev
	s.log.WithFields(logrus.Fields{
		"strategy":  c.Strategy,
		"max_steps": c.MaxSteps,
	}).Debug("configured")
	return nil
}
