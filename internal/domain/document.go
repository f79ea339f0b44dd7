package domain

// Document is a schemaless record as stored in and returned from a collection.
type Document map[string]any

// FieldID is the primary key of every document.
const FieldID = "_id"

// String returns the value at key when it holds a string.
func (d Document) String(key string) string {
	if d == nil {
		return ""
	}
	s, _ := d[key].(string)
	return s
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
