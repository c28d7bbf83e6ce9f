package generator

import (
	"encoding/json"
)

// IndexDocument is the shape of each category's index file. Consumers
// fetch it once per category to learn which type documents exist without
// listing the directory.
type IndexDocument struct {
	// Name is the category display name
	Name string `json:"name"`
	// Description is the category description
	Description string `json:"description,omitempty"`
	// Types lists every type document in the category, in output order
	Types []IndexEntry `json:"types"`
}

// IndexEntry points a consumer at one type's standalone document
type IndexEntry struct {
	// Key is the definition name the document was extracted for
	Key string `json:"key"`
	// DisplayName is the human-readable type name
	DisplayName string `json:"displayName"`
	// Description is the synthesized or declared type description
	Description string `json:"description,omitempty"`
	// SchemaFile is the document's file name within the category directory
	SchemaFile string `json:"schemaFile"`
}

// renderIndex marshals the index document for one category.
func renderIndex(cr CategoryResult, indent string) ([]byte, error) {
	index := IndexDocument{
		Name:        cr.Name,
		Description: cr.Description,
		Types:       make([]IndexEntry, 0, len(cr.Types)),
	}
	for _, entry := range cr.Types {
		index.Types = append(index.Types, IndexEntry{
			Key:         entry.Key,
			DisplayName: entry.DisplayName,
			Description: entry.Description,
			SchemaFile:  entry.Key + ".json",
		})
	}

	buf := getDocumentBuffer(len(index.Types))
	defer putDocumentBuffer(buf, len(index.Types))

	enc := json.NewEncoder(buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(index); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
