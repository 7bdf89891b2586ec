package models

import (
	"encoding/json"
	"maps"
)

// splitExtra decodes data as a JSON object and returns every member whose
// key is not listed in known. Returns nil when there are none.
func splitExtra(data []byte, known ...string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	for _, key := range known {
		delete(all, key)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return all, nil
}

// mergeExtra adds the members of extra to the JSON object encoded in base.
// Members already present in base win.
func mergeExtra(base []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(base, &all); err != nil {
		return nil, err
	}

	merged := maps.Clone(extra)
	maps.Copy(merged, all)

	return json.Marshal(merged)
}
