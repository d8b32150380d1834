package common

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON marshals i without the trailing newline of json.Encoder.
func EncodeJSON(i interface{}, indent bool, escapeHTML bool) ([]byte, error) {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(i); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}
