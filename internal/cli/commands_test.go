package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/config"
	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/testutil"
)

func greeting() rich.Text {
	return rich.New("Hello, ").With(rich.New("world").Bold().Color(rich.Red))
}

// execute runs cmd with args and returns what it wrote to stdout and stderr
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	testutil.IsolateEnv(t)

	out, _, err := execute(t, NewRootCmd(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "richtext version dev")
	assert.Contains(t, out, "Commit: unknown")
}

func TestRenderCmd(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	yamlDoc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())
	jsonDoc := testutil.WriteDocument(t, dir, "greeting.json", greeting())

	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{
			name:     "text format",
			args:     []string{"render", "--format", "text", yamlDoc},
			expected: "Hello, world\n",
		},
		{
			name:     "several files",
			args:     []string{"render", "-f", "text", yamlDoc, jsonDoc},
			expected: "Hello, world\nHello, world\n",
		},
		{
			name:     "markdown format",
			args:     []string{"render", "--format", "md", yamlDoc},
			expected: "Hello, **world**\n",
		},
		{
			name:     "ascii profile strips styling",
			args:     []string{"render", "--format", "term", "--profile", "ascii", jsonDoc},
			expected: "Hello, world\n",
		},
		{
			name:     "stdin with input format",
			args:     []string{"render", "-f", "text", "--input", "json", "-"},
			stdin:    `{"content": "from ", "children": ["stdin"]}`,
			expected: "from stdin\n",
		},
		{
			name:     "input format overrides extension",
			args:     []string{"render", "-f", "text", "-i", "yaml", filepath.Join(dir, "greeting.json")},
			expected: "Hello, world\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, NewRootCmd(), tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderCmdErrors(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	doc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())
	bad := testutil.CreateFile(t, dir, "bad.json", `{"content": "x", "style": {"color": "teal"}}`)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"stdin without input format", []string{"render", "-"}, errors.ErrInvalidInput},
		{"missing file", []string{"render", filepath.Join(dir, "missing.yaml")}, errors.ErrDocumentRead},
		{"unknown extension", []string{"render", filepath.Join(dir, "notes.txt")}, errors.ErrUnknownFormat},
		{"invalid color", []string{"render", bad}, errors.ErrInvalidColor},
		{"unknown output format", []string{"render", "--format", "html", doc}, errors.ErrConfigValid},
		{"unknown profile", []string{"render", "--profile", "sixteen", doc}, errors.ErrConfigValid},
		{"unknown input format", []string{"render", "--input", "ini", "-"}, errors.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, NewRootCmd(), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
		})
	}
}

func TestRenderCmdReadsConfig(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	doc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())

	t.Run("user config file", func(t *testing.T) {
		testutil.CreateFile(t, filepath.Dir(testutil.UserConfigFile(dir)), "config.toml", `format = "markdown"`)
		out, _, err := execute(t, NewRootCmd(), "", "render", doc)
		require.NoError(t, err)
		assert.Equal(t, "Hello, **world**\n", out)
	})

	t.Run("explicit config file", func(t *testing.T) {
		path := testutil.CreateFile(t, dir, "other.toml", `format = "xml"`)
		out, _, err := execute(t, NewRootCmd(), "", "--config", path, "render", doc)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<text>Hello, "), out)
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Setenv("RICHTEXT_FORMAT", "debug")
		out, _, err := execute(t, NewRootCmd(), "", "render", doc)
		require.NoError(t, err)
		assert.Equal(t, `("Hello, ", [("world", #ff0000 + Bold)])`+"\n", out)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("RICHTEXT_FORMAT", "debug")
		out, _, err := execute(t, NewRootCmd(), "", "--format", "text", "render", doc)
		require.NoError(t, err)
		assert.Equal(t, "Hello, world\n", out)
	})
}

func TestConvertCmd(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	doc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())

	t.Run("to stdout", func(t *testing.T) {
		out, _, err := execute(t, NewRootCmd(), "", "convert", doc, "--to", "json")
		require.NoError(t, err)

		got, err := document.Unmarshal([]byte(out), document.JSON)
		require.NoError(t, err)
		assert.True(t, greeting().Equal(got))
	})

	t.Run("format from output extension", func(t *testing.T) {
		target := filepath.Join(dir, "greeting.toml")
		_, stderr, err := execute(t, NewRootCmd(), "", "convert", doc, "-o", target)
		require.NoError(t, err)
		assert.Contains(t, stderr, "Wrote "+target)

		got, err := document.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, greeting().Equal(got))
	})

	t.Run("explicit format wins over extension", func(t *testing.T) {
		target := filepath.Join(dir, "greeting.out")
		_, _, err := execute(t, NewRootCmd(), "", "convert", doc, "--to", "json", "-o", target)
		require.NoError(t, err)

		got, err := document.Unmarshal([]byte(testutil.ReadFile(t, target)), document.JSON)
		require.NoError(t, err)
		assert.True(t, greeting().Equal(got))
	})

	t.Run("no target format", func(t *testing.T) {
		_, _, err := execute(t, NewRootCmd(), "", "convert", doc)
		assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
	})

	t.Run("unknown target format", func(t *testing.T) {
		_, _, err := execute(t, NewRootCmd(), "", "convert", doc, "--to", "ini")
		assert.Equal(t, errors.ErrUnknownFormat, errors.GetErrorCode(err))
	})
}

func TestDemoCmd(t *testing.T) {
	testutil.IsolateEnv(t)

	out, _, err := execute(t, NewRootCmd(), "", "demo", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, DemoText().String()+"\n", out)
	assert.Contains(t, out, "Unstyled, Red and some bold, Blue and italic, but no longer, underline and EVERYTHING")
}

func TestDemoTextStyles(t *testing.T) {
	styles := map[string]rich.Style{}
	for _, span := range rich.Spans(DemoText()) {
		styles[span.Content] = span.Style
	}

	assert.Equal(t, rich.Style{Bold: rich.On, Italic: rich.On, Underline: rich.On, Strikethrough: rich.On},
		styles["EVERYTHING"])
	assert.Equal(t, rich.Style{Color: rich.Some(rich.Red), Bold: rich.On}, styles["and some bold, "])
	assert.Equal(t, rich.Off, styles["but not here, "].Bold)
	assert.Equal(t, rich.On, styles["bold again\n"].Bold)
}

func TestViewCmd(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	doc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())

	var screen tcell.SimulationScreen
	opts := &options{newScreen: func() (tcell.Screen, error) {
		screen = tcell.NewSimulationScreen("UTF-8")
		if err := screen.Init(); err != nil {
			return nil, err
		}
		screen.SetSize(20, 4)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		return screen, nil
	}}

	_, _, err := execute(t, newRootCmd(opts), "", "view", doc)
	require.NoError(t, err)
	assert.NotNil(t, screen, "view opens a screen")
	assert.Equal(t, rich.Gray, opts.cfg.Layout.Foreground)
}

func TestViewCmdErrors(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	doc := testutil.WriteDocument(t, dir, "greeting.yaml", greeting())

	t.Run("screen cannot open", func(t *testing.T) {
		opts := &options{newScreen: func() (tcell.Screen, error) {
			return nil, errors.New(errors.ErrScreen, "no terminal")
		}}
		_, _, err := execute(t, newRootCmd(opts), "", "view", doc)
		assert.Equal(t, errors.ErrScreen, errors.GetErrorCode(err))
	})

	t.Run("document is read before the screen opens", func(t *testing.T) {
		opened := false
		opts := &options{newScreen: func() (tcell.Screen, error) {
			opened = true
			return nil, errors.New(errors.ErrScreen, "no terminal")
		}}
		_, _, err := execute(t, newRootCmd(opts), "", "view", filepath.Join(dir, "missing.yaml"))
		assert.Equal(t, errors.ErrDocumentRead, errors.GetErrorCode(err))
		assert.False(t, opened)
	})
}

func TestConfigInitCmd(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	userFile := testutil.UserConfigFile(dir)

	_, stderr, err := execute(t, NewRootCmd(), "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote "+userFile)
	assert.Equal(t, config.DefaultsContent(), testutil.ReadFile(t, userFile))

	// the written file is picked up and changes nothing
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, userFile, cfg.Source)
	cfg.Source = ""
	assert.Equal(t, config.Default(), cfg)

	t.Run("existing file is kept", func(t *testing.T) {
		testutil.CreateFile(t, filepath.Dir(userFile), "config.toml", `format = "markdown"`)

		_, _, err := execute(t, NewRootCmd(), "", "config", "init")
		assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
		assert.Equal(t, `format = "markdown"`, testutil.ReadFile(t, userFile))
	})

	t.Run("force overwrites a broken file", func(t *testing.T) {
		testutil.CreateFile(t, filepath.Dir(userFile), "config.toml", "format = [")

		_, _, err := execute(t, NewRootCmd(), "", "config", "init", "--force")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultsContent(), testutil.ReadFile(t, userFile))
	})

	t.Run("output path", func(t *testing.T) {
		target := filepath.Join(dir, "nested", "richtext.toml")

		_, _, err := execute(t, NewRootCmd(), "", "config", "init", "-o", target)
		require.NoError(t, err)

		cfg, err := config.Load(target)
		require.NoError(t, err)
		assert.Equal(t, target, cfg.Source)
	})
}

func TestConfigPathCmd(t *testing.T) {
	dir := testutil.IsolateEnv(t)

	out, _, err := execute(t, NewRootCmd(), "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, testutil.UserConfigFile(dir)+"\n", out)
}
