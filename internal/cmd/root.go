package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"genman/internal/config"
	"genman/internal/logging"
	"genman/internal/models"
)

// rootOptions holds the flag values and the state prepared for a run.
type rootOptions struct {
	configFile string
	logLevel   string
	verbose    bool
	debug      bool

	also       string
	files      string
	output     string
	subcommand string
	title      string
	version    string

	cfg    models.Config
	logger *logging.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "genman [flags] <utility>",
		Short: "Generate a man page from a utility's help output",
		Long: `genman runs "<utility> help" (or "<utility> help <subcommand>"), reads the
summary, details, options, examples and commands sections it prints, and
writes a troff man page for it.

The page is written to <utility>.1 (or <utility>-<subcommand>.1) unless
--output names another file. Use --output - to write to standard output.`,
		Example: `  genman widget
  genman -s deploy -t "Widget Manual" -v 1.2.0 widget
  genman -o - -f "$(printf '/etc/widget.conf\tsystem configuration')" widget | man -l -`,
		Args:          validateUtilityArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.also, "also", "a", "", "tab separated extra references for the end of the page")
	flags.StringVarP(&opts.files, "files", "f", "", "files to document, one \"<path>\\t<description>\" entry per line")
	flags.StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default <utility>[-<subcommand>].1)")
	flags.StringVarP(&opts.subcommand, "subcommand", "s", "", "document this subcommand of the utility")
	flags.StringVarP(&opts.title, "title", "t", "", "document title (env: GENMAN_TITLE)")
	flags.StringVarP(&opts.version, "version", "v", "", "document version (default "+models.DefaultVersion+", env: GENMAN_VERSION)")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configFile, "config", "", "config file path (env: GENMAN_CONFIG)")
	persistent.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env: GENMAN_LOG_LEVEL)")
	persistent.BoolVar(&opts.verbose, "verbose", false, "enable info-level logging to stderr")
	persistent.BoolVar(&opts.debug, "debug", false, "enable debug-level logging to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newManCmd(cmd))

	return cmd
}

// validateUtilityArgs requires exactly one utility name.
func validateUtilityArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		if strings.TrimSpace(args[0]) == "" {
			_ = cmd.Usage()
			return ErrMissingUtility
		}
		return nil
	case 0:
		_ = cmd.Usage()
		return ErrMissingUtility
	default:
		return &UsageError{
			Message:  fmt.Sprintf("expected one utility, got %d: %s", len(args), strings.Join(args, " ")),
			Guidance: "Document one utility per run; use --subcommand for its subcommands",
		}
	}
}

// prepare loads the configuration, applies flag overrides and builds the
// logger.
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	// version, man, help and completion work without a configuration
	if cmd != cmd.Root() {
		o.logger = logging.Discard()
		return nil
	}

	var err error

	// If config file is specified, use it; otherwise use defaults
	if o.configFile != "" {
		o.cfg, err = config.LoadConfig(o.configFile)
	} else {
		o.cfg, err = config.LoadConfigWithDefaults(nil)
	}
	if err != nil {
		return &ConfigurationError{
			Field:    "config",
			Message:  "failed to load configuration",
			Guidance: "Check that the file named by --config or GENMAN_CONFIG exists and is valid YAML",
			Err:      err,
		}
	}

	// Override config with command-line flags if provided
	flags := cmd.Flags()
	if o.logLevel != "" {
		o.cfg.LogLevel = o.logLevel
	}
	if flags.Changed("version") {
		o.cfg.Version = o.version
	}
	if flags.Changed("title") {
		o.cfg.Title = o.title
	}

	if err := config.ValidateConfig(o.cfg); err != nil {
		return &ConfigurationError{
			Field:    "config",
			Message:  "invalid configuration",
			Guidance: "Use one of debug, info, warn or error for the log level and give every environment entry a name",
			Err:      err,
		}
	}

	o.logger = o.newLogger(cmd)
	return nil
}

func (o *rootOptions) newLogger(cmd *cobra.Command) *logging.Logger {
	switch {
	case o.debug:
		return logging.NewDebugLogger(cmd.ErrOrStderr())
	case o.verbose:
		return logging.NewLogger(cmd.ErrOrStderr(), logging.InfoLevel)
	}
	// ValidateConfig has already rejected unknown names
	level, _ := logging.ParseLevel(o.cfg.LogLevel)
	return logging.NewLogger(cmd.ErrOrStderr(), level)
}

// ExecuteWithContext runs the root command. The context is handed to the
// help invocation, so cancelling it stops the utility.
func ExecuteWithContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
