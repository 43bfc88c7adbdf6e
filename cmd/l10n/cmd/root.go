// Package cmd implements the l10n command line tool.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/l10n/core/config"
	"github.com/dmitrymomot/l10n/core/language"
	"github.com/dmitrymomot/l10n/core/logger"
)

// options are the persistent flags shared by every command.
type options struct {
	configFile string
	required   []string
	optional   []string
	verbose    bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "l10n",
		Short: "Encode, decode and resolve language content maps",
		Long: `l10n works with language content maps, the JSON objects stored in
localizable fields such as {"en":"Car","pt":"Carro"}.

Supported languages come from L10N_REQUIRED_LANGUAGES and
L10N_OPTIONAL_LANGUAGES, a TOML or YAML file given with --config,
or the --required and --optional flags, in increasing priority.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "TOML or YAML file with required and optional language lists")
	flags.StringSliceVar(&opts.required, "required", nil, "required languages, comma separated")
	flags.StringSliceVar(&opts.optional, "optional", nil, "optional languages, comma separated")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newResolveCmd(opts),
		newLanguagesCmd(opts),
		newMoneyCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithColorFormatter(),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithAttr(logger.Component("cli")),
	)
}

// registry builds the language registry for one invocation.
func (o *options) registry(cmd *cobra.Command) (*language.Registry, error) {
	log := o.logger(cmd)

	var cfg language.Config
	if o.configFile != "" {
		if err := config.LoadFile(o.configFile, &cfg); err != nil {
			return nil, err
		}
		log.Debug("languages loaded from file", logger.Key("path", o.configFile))
	} else {
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		log.Debug("languages loaded from environment")
	}

	if cmd.Flags().Changed("required") {
		cfg.Required = o.required
	}
	if cmd.Flags().Changed("optional") {
		cfg.Optional = o.optional
	}

	r := language.NewRegistry()
	r.ConfigureFrom(cfg)
	log.Debug("registry configured",
		logger.Key("required", r.Required()),
		logger.Key("optional", r.Optional()),
	)
	return r, nil
}
