package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Dev-vesper/notepad/models"
)

const documentIndent = "    "

// encodeDocument renders v the way documents are persisted: pretty-printed
// with a four space indent.
func encodeDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", documentIndent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeProfile(data []byte) (models.Profile, error) {
	var profile models.Profile
	if len(bytes.TrimSpace(data)) == 0 {
		return profile, fmt.Errorf("%w: empty profile document", ErrCorruptDocument)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	return profile, nil
}

// decodeNotes treats an empty or null document as an empty collection.
func decodeNotes(data []byte) ([]models.Note, error) {
	notes := []models.Note{}
	if len(bytes.TrimSpace(data)) == 0 {
		return notes, nil
	}
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}
