package handler

import (
	"bytes"
	"encoding/json"
)

// secretText returns the text stored for a JSON secret. A string is kept as
// is and a non-zero number keeps its literal text. Anything else (missing,
// null, zero, bool, object, array) yields "", which the auth service replaces
// with the default secret.
func secretText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		if f, err := s.Float64(); err != nil || f == 0 {
			return ""
		}
		return s.String()
	}
	return ""
}
