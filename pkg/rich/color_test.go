package rich_test

import (
	"image/color"
	"testing"

	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rich.Color
		wantErr bool
	}{
		{name: "six digits", input: "#ff0000", want: rich.Red},
		{name: "three digits", input: "#00f", want: rich.Blue},
		{name: "mixed case", input: "#FFD700", want: rich.Gold},
		{name: "with alpha", input: "#01020304", want: rich.RGBA(1, 2, 3, 4)},
		{name: "transparent", input: "#00000000", want: rich.Transparent},
		{name: "bad alpha", input: "#000000zz", wantErr: true},
		{name: "missing hash", input: "ff0000", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rich.ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid hex color")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range []rich.Color{rich.Black, rich.White, rich.Brown, rich.LightBlue, rich.DarkGreen, rich.Khaki} {
		parsed, err := rich.ParseHex(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ff0000", rich.Red.String())
	assert.Equal(t, "#01020304", rich.RGBA(1, 2, 3, 4).String())
	assert.Equal(t, "#00000000", rich.Transparent.String())
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = rich.White
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	nrgba := color.NRGBAModel.Convert(rich.RGB(0x12, 0x34, 0x56)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, nrgba)
}

func TestOptionalColor(t *testing.T) {
	var unset rich.OptionalColor
	_, ok := unset.Get()
	assert.False(t, ok)
	assert.Equal(t, rich.Gray, unset.OrElse(rich.Gray))

	red := rich.Some(rich.Red)
	c, ok := red.Get()
	assert.True(t, ok)
	assert.Equal(t, rich.Red, c)
	assert.Equal(t, rich.Red, red.OrElse(rich.Gray))

	assert.Equal(t, red, unset.Or(red))
	assert.Equal(t, red, red.Or(rich.Some(rich.Blue)))
	assert.Equal(t, unset, unset.Or(unset))
}
