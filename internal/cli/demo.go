package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/styles"
)

// DemoText is the sample message printed by the demo command
func DemoText() rich.Text {
	return rich.Group(
		styles.Tag("Header", "richtext demo\n"),
		rich.New("Unstyled, ").
			With(rich.New("Red ").Color(rich.Red).
				With(rich.New("and some bold, ").Bold())).
			With(rich.New("Blue ").Color(rich.Blue).
				With(rich.New("and italic, ").Italic())).
			WithString("but no longer, ").
			With(rich.New("underline").Underline()).
			WithString(" and ").
			With(rich.New("EVERYTHING").Bold().Italic().Underline().Strikethrough()).
			WithString("\n"),
		rich.New("Bold ").Bold().
			With(rich.New("but not here, ").NoBold()).
			WithString("bold again\n"),
		styles.Tag("Muted", "Children inherit every attribute they do not set."),
	)
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderText(DemoText())
		},
	}
}
