// Package testutil provides helpers shared by richtext tests.
//
// Key components:
//   - IsolateEnv: points XDG directories at a temp dir and clears RICHTEXT_* variables
//   - CreateFile / ReadFile: small file fixtures that fail the test on error
//   - WriteDocument: writes a rich.Text as a YAML, JSON or TOML document
//
// Usage guidelines:
//   - Call IsolateEnv before anything that loads configuration or sets up logging
//   - All test data should be defined inline, not in external files
package testutil
