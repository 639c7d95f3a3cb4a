package cli

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/ui/layout"
)

func newTerminalScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrScreen, MsgErrOpenScreen)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, errors.ErrScreen, MsgErrOpenScreen)
	}
	return screen, nil
}

func newViewCmd(opts *options) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: MsgViewShort,
		Long:  MsgViewLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.view")

			t, err := readDocument(cmd.InOrStdin(), args[0], input)
			if err != nil {
				return err
			}

			conv := layout.Converter{
				Foreground: opts.cfg.Layout.Foreground,
				Background: opts.cfg.Layout.Background,
			}
			job := conv.ToJob(t)
			logger.Debug().Int("sections", len(job.Sections)).Int("width", opts.cfg.Layout.Width).Msg("Built layout job")

			screen, err := opts.newScreen()
			if err != nil {
				return err
			}
			defer screen.Fini()

			return layout.View(screen, job, opts.cfg.Layout.Width)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	return cmd
}
