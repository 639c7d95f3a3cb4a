package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Render styled text trees"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgRenderShort  = "Render documents with the selected output format"
	MsgConvertShort = "Convert a document between YAML, JSON and TOML"
	MsgConvertLong  = "Convert re-encodes a document in another document format."
	MsgDemoShort    = "Render a sample message"
	MsgDemoLong     = "Demo renders a built-in message that uses every style attribute."
	MsgViewShort    = "Show a document full screen"

	MsgConfigShort     = "Manage the richtext config file"
	MsgConfigInitShort = "Write the default config to the user config file"
	MsgConfigInitLong  = "Init writes the built-in defaults to $XDG_CONFIG_HOME/richtext/config.toml, or to --output, as a starting point for editing. An existing file is kept unless --force is given."
	MsgConfigPathShort = "Print where the user config file is read from"

	// Status messages
	MsgWroteFile   = "Wrote %s (%s)"
	MsgWroteConfig = "Wrote %s"

	// Version output
	MsgVersionFormat = "richtext version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoTarget     = "--to is required when writing to standard output"
	MsgErrRenderFile   = "failed to render %s"
	MsgErrOpenScreen   = "failed to open terminal screen"
	MsgErrStdinFormat  = "--input is required to pick a format for standard input"
	MsgErrConfigExists = "%s already exists, use --force to overwrite it"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default is $XDG_CONFIG_HOME/richtext/config.toml)"
	MsgFlagFormat       = "Output format (auto, term, text, debug, json, markdown, xml)"
	MsgFlagProfile      = "Color profile for term output (auto, truecolor, ansi256, ansi, ascii)"
	MsgFlagInput        = "Document format of standard input (yaml, json, toml)"
	MsgFlagTo           = "Target document format (yaml, json, toml)"
	MsgFlagOutput       = "Write to this file instead of standard output"
	MsgFlagConfigOutput = "Write the config to this file instead of the user config path"
	MsgFlagForce        = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/view-long.txt
	msgViewLongRaw string
	MsgViewLong    = strings.TrimSpace(msgViewLongRaw)
)
