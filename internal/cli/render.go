package cli

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
)

func newRenderCmd(opts *options) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "render FILE...",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			done := logging.LogOperationStart(logger, "render")
			defer done()

			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			for _, arg := range args {
				t, err := readDocument(cmd.InOrStdin(), arg, input)
				if err != nil {
					return err
				}
				logger.Debug().Str("file", arg).Int("nodes", t.NodeCount()).Msg("Decoded document")

				if err := renderer.RenderText(t); err != nil {
					return errors.Wrapf(err, errors.ErrRender, MsgErrRenderFile, arg).
						WithDetail("file", arg)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", MsgFlagInput)
	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:     "convert FILE",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.convert")
			defer logging.LogDuration(time.Now(), "convert")

			var (
				target document.Format
				err    error
			)
			switch {
			case to != "":
				target, err = document.ParseFormat(to)
			case output != "":
				target, err = document.FormatFromPath(output)
			default:
				err = errors.New(errors.ErrInvalidInput, MsgErrNoTarget)
			}
			if err != nil {
				return err
			}

			// convert reads the document format from the file itself
			t, err := readDocument(cmd.InOrStdin(), args[0], "")
			if err != nil {
				return err
			}

			if output == "" {
				return document.Encode(cmd.OutOrStdout(), t, target)
			}

			if err := document.WriteFileAs(output, t, target); err != nil {
				return err
			}
			logger.Info().Str("file", output).Str("format", target.String()).Msg("Converted document")
			pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln(MsgWroteFile, output, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", MsgFlagTo)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}
