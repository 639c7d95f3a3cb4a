// Package cli builds the richtext command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/internal/version"
	"github.com/arthur-debert/richtext/pkg/config"
	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui"
)

// options holds the global flags and the configuration they resolve to
type options struct {
	verbosity  int
	configPath string
	format     string
	profile    string

	cfg *config.Config

	// newScreen returns an initialized screen for the view command
	newScreen func() (tcell.Screen, error)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{newScreen: newTerminalScreen})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "richtext",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.Name(), args)
			return opts.loadConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", "", MsgFlagProfile)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newViewCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// loadConfig reads the configuration with the flags the user set on top
func (o *options) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["format"] = o.format
	}
	if cmd.Flags().Changed("profile") {
		overrides["profile"] = o.profile
	}

	cfg, err := config.LoadWithOverrides(o.configPath, overrides)
	if err != nil {
		return err
	}

	log.Debug().
		Str("source", cfg.Source).
		Str("format", cfg.Format).
		Str("profile", cfg.Profile).
		Msg("Configuration loaded")
	o.cfg = cfg
	return nil
}

// renderer builds the output renderer selected by the configuration
func (o *options) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.cfg.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w, o.cfg)
}

// readDocument decodes the document named by arg. "-" reads stdin in the
// format given by input; otherwise input, when set, overrides the extension.
func readDocument(stdin io.Reader, arg, input string) (rich.Text, error) {
	if arg != "-" && input == "" {
		return document.ReadFile(arg)
	}
	if input == "" {
		return rich.Text{}, errors.New(errors.ErrInvalidInput, MsgErrStdinFormat)
	}
	format, err := document.ParseFormat(input)
	if err != nil {
		return rich.Text{}, err
	}
	if arg == "-" {
		return document.Decode(stdin, format)
	}

	f, err := os.Open(arg)
	if err != nil {
		return rich.Text{}, errors.Wrapf(err, errors.ErrDocumentRead, "cannot open %s", arg).
			WithDetail("path", arg)
	}
	defer func() { _ = f.Close() }()
	return document.Decode(f, format)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
