package orbtrade

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object whose fields keep the exact order
// they were appended, which encoding/json map marshaling cannot guarantee.
// The interchange payload is written through it so an export lists items in
// catalog enumeration order. Its zero value is ready to use.
type jsonObjectWriter struct {
	entries [][]byte
	err     error
}

// Append adds a field to the object being built. Errors are sticky and
// reported by MarshalJSON.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal key %q: %w", key, err)
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal value of %q: %w", key, err)
		return w
	}
	var b bytes.Buffer
	b.Write(k)
	b.WriteString(": ")
	b.Write(v)
	w.entries = append(w.entries, b.Bytes())
	return w
}

// MarshalJSON renders the object with one field per line, human readable.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if len(w.entries) == 0 {
		return []byte("{}"), nil
	}
	var b bytes.Buffer
	b.WriteString("{\n  ")
	b.Write(bytes.Join(w.entries, []byte(",\n  ")))
	b.WriteString("\n}")
	return b.Bytes(), nil
}
