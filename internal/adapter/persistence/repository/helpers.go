package repository

import (
	"bytes"
	"encoding/json"
)

var nullDocument = json.RawMessage("null")

// cloneRaw copies v so callers can't mutate stored documents.
func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}

func orFallback(v, fallback json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(v)) == 0 {
		return cloneRaw(fallback)
	}
	return v
}

// compactDocument validates v as JSON and strips insignificant whitespace.
func compactDocument(v json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(v)) == 0 {
		return nullDocument, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, ErrInvalidDocument
	}
	return buf.Bytes(), nil
}
