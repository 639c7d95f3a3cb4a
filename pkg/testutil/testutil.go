package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/rich"
)

// EnvVars lists every environment variable the configuration layer reads
var EnvVars = []string{
	"RICHTEXT_FORMAT",
	"RICHTEXT_PROFILE",
	"RICHTEXT_LAYOUT_WIDTH",
	"RICHTEXT_LAYOUT_FOREGROUND",
	"RICHTEXT_LAYOUT_BACKGROUND",
	"RICHTEXT_MARKDOWN_STYLE",
	"RICHTEXT_MARKDOWN_WRAP",
	"RICHTEXT_MARKDOWN_PREVIEW",
}

// IsolateEnv points every XDG directory at a fresh temp dir so host
// configuration and logs cannot leak in, and unsets the RICHTEXT_*
// variables for the duration of the test. It returns the temp dir.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "etc"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	for _, key := range EnvVars {
		// Setenv registers the restore, Unsetenv makes the variable absent
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
	return dir
}

// UserConfigFile returns where the loader looks for the user config inside
// a directory prepared by IsolateEnv.
func UserConfigFile(dir string) string {
	return filepath.Join(dir, "config", "richtext", "config.toml")
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// WriteDocument writes text as a document named name inside dir. The
// document format follows the extension of name.
func WriteDocument(t *testing.T, dir, name string, text rich.Text) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := document.WriteFile(path, text); err != nil {
		t.Fatalf("Failed to write document %s: %v", path, err)
	}
	return path
}
