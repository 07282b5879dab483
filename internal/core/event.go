package core

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire shape of every event in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode wraps payload into an envelope of the given type.
func Encode(typ string, payload any) (Frame, error) {
	out := struct {
		Type string `json:"type"`
		Data any    `json:"data,omitempty"`
	}{Type: typ, Data: payload}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", typ, err)
	}
	return b, nil
}
