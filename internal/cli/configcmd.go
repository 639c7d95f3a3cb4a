package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/config"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		// config subcommands must work while the user file is broken,
		// so they skip loading it
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.Name(), args)
		},
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.config")

			path := output
			if path == "" {
				path = config.UserConfigPath()
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path).
						WithDetail("path", path)
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigWrite, "failed to create directory for %s", path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, []byte(config.DefaultsContent()), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path).
					WithDetail("path", path)
			}

			logger.Info().Str("path", path).Bool("force", force).Msg("Config file written")
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln(MsgWroteConfig, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagConfigOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.UserConfigPath())
		},
	}
}
