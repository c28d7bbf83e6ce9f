package generator

import (
	"encoding/json"

	"github.com/formshape/formshape/parser"
)

// renderDocument marshals one standalone document with the configured
// indentation. Output always ends with a newline. Key order is
// deterministic, so identical inputs render identical bytes.
func renderDocument(doc *parser.Schema, indent string) ([]byte, error) {
	buf := getDocumentBuffer(len(doc.Defs))
	defer putDocumentBuffer(buf, len(doc.Defs))

	enc := json.NewEncoder(buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	// The buffer is pooled; hand back a copy.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
