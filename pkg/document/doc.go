// Package document stores rich text trees as YAML, JSON or TOML.
//
// Every node is an object with optional content, style and children keys:
//
//	content: "Warning: "
//	style:
//	  color: "#ff0000"
//	  bold: true
//	children:
//	  - "plain child"
//	  - content: "not bold"
//	    style: {bold: false}
//
// A style key that is absent inherits from the parent; false switches the
// decoration off explicitly. YAML and JSON also accept a bare string in place
// of a node without style or children, and emit one when a node is that
// simple. TOML has no such shorthand so every node is a table there.
package document
