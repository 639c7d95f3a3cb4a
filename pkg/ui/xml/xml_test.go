package xml_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/xml"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		text rich.Text
		want string
	}{
		{
			name: "leaf",
			text: rich.New("plain"),
			want: `<text>plain</text>`,
		},
		{
			name: "empty",
			text: rich.Text{},
			want: `<text/>`,
		},
		{
			name: "own style only",
			text: rich.New("a").Bold().With(rich.New("b").NoItalic().Color(rich.Red)),
			want: `<text bold="true">a<text color="#ff0000" italic="false">b</text></text>`,
		},
		{
			name: "content before children",
			text: rich.New("x").WithString("y").With(rich.New("z").Underline().Strikethrough()),
			want: `<text>x<text>y</text><text underline="true" strikethrough="true">z</text></text>`,
		},
		{
			name: "escapes markup",
			text: rich.New("a < b & c"),
			want: `<text>a &lt; b &amp; c</text>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xml.Marshal(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalParsesBack(t *testing.T) {
	tree := rich.New("Unstyled, ").
		With(rich.New("Red ").Color(rich.Red).With(rich.New("and bold").Bold())).
		With(rich.Group(rich.New("\n"), rich.New("tail")))

	out, err := xml.Marshal(tree)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "text", root.Tag)
	assert.Equal(t, tree.NodeCount(), countElements(root))
	assert.Equal(t, tree.String(), allText(root))
	assert.Equal(t, "#ff0000", root.SelectElement("text").SelectAttrValue("color", ""))
}

func countElements(el *etree.Element) int {
	n := 1
	for _, child := range el.ChildElements() {
		n += countElements(child)
	}
	return n
}

func allText(el *etree.Element) string {
	var s string
	for _, tok := range el.Child {
		switch v := tok.(type) {
		case *etree.CharData:
			s += v.Data
		case *etree.Element:
			s += allText(v)
		}
	}
	return s
}

func TestEncoderBalanced(t *testing.T) {
	enc := xml.NewEncoder()
	enc.Content("ignored outside any element")
	enc.PopStyle(rich.Style{})

	enc.PushStyle(rich.Style{Bold: rich.Off})
	enc.Content("x")
	enc.PopStyle(rich.Style{})

	out, err := enc.Document().WriteToString()
	require.NoError(t, err)
	assert.Equal(t, `<text bold="false">x</text>`, out)
}

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := xml.New(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderText(rich.New("hi").Italic()))
	require.NoError(t, r.RenderMessage("done"))
	require.NoError(t, r.RenderError(errors.New(errors.ErrRender, "bad")))
	require.NoError(t, r.RenderError(stderrors.New("plain")))

	assert.Equal(t, `<text italic="true">hi</text>
<message>done</message>
<error code="RENDER">[RENDER] bad</error>
<error code="UNKNOWN">plain</error>
`, buf.String())
}
