package fhir

import (
	"bytes"
	"encoding/json"
)

// Number is a JSON number rendered verbatim, so "9.92" stays "9.92" and
// doesn't pick up float formatting artifacts. Empty means absent.
type Number = json.Number

// MarshalDocument encodes a resource document for submission. HTML escaping is
// disabled: narrative blocks contain literal <div> markup and the endpoint
// expects unescaped slashes in system URIs.
func MarshalDocument(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
