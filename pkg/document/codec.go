package document

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/rich"
)

// Marshal serializes t in the given format
func Marshal(t rich.Text, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a document in the given format
func Unmarshal(data []byte, f Format) (rich.Text, error) {
	return Decode(bytes.NewReader(data), f)
}

// Encode writes t to w in the given format
func Encode(w io.Writer, t rich.Text, f Format) error {
	n := toNode(t)

	var err error
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(n); err == nil {
			err = enc.Close()
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(n)
	case TOML:
		err = toml.NewEncoder(w).SetIndentTables(true).Encode(n)
	default:
		return errors.Newf(errors.ErrUnknownFormat, "unknown document format %d", int(f))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocumentEncode, "failed to encode %s document", f).
			WithDetail("format", f.String())
	}
	return nil
}

// Decode reads one document from r in the given format
func Decode(r io.Reader, f Format) (rich.Text, error) {
	var n node

	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&n)
		if err == io.EOF {
			// an empty YAML stream is an empty document
			err = nil
		}
	case JSON:
		err = json.NewDecoder(r).Decode(&n)
	case TOML:
		err = toml.NewDecoder(r).Decode(&n)
	default:
		return rich.Text{}, errors.Newf(errors.ErrUnknownFormat, "unknown document format %d", int(f))
	}
	if err != nil {
		return rich.Text{}, errors.Wrapf(err, errors.ErrDocumentDecode, "failed to decode %s document", f).
			WithDetail("format", f.String())
	}

	return n.toText("root")
}

// ReadFile decodes the document at path, picking the format from its extension
func ReadFile(path string) (rich.Text, error) {
	logger := logging.GetLogger("document").With().Str("path", path).Logger()
	defer logging.LogOperationStart(logger, "read document")()

	f, err := FormatFromPath(path)
	if err != nil {
		return rich.Text{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rich.Text{}, errors.Wrapf(err, errors.ErrDocumentRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	t, err := Unmarshal(data, f)
	if err != nil {
		return rich.Text{}, withPath(err, path)
	}
	logger.Debug().Int("nodes", t.NodeCount()).Msg("Document decoded")
	return t, nil
}

// WriteFile encodes t to path, picking the format from its extension
func WriteFile(path string, t rich.Text) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFileAs(path, t, f)
}

// WriteFileAs encodes t to path in format f, whatever the extension says
func WriteFileAs(path string, t rich.Text, f Format) error {
	data, err := Marshal(t, f)
	if err != nil {
		return withPath(err, path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "cannot write %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("document")
	logger.Debug().Str("path", path).Str("format", f.String()).Msg("Document written")
	return nil
}

func withPath(err error, path string) error {
	var richErr *errors.RichtextError
	if stderrors.As(err, &richErr) {
		return richErr.WithDetail("file", path)
	}
	return err
}
