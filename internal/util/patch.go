package util

import "encoding/json"

// MergePatch overlays the fields present in patch onto record, leaving all
// other fields untouched, and writes the merged result back through record
// (which must be a pointer to a struct). Nested objects in patch replace
// the stored value wholesale; callers that want a deeper merge (user
// preferences) pre-merge before calling.
func MergePatch(record interface{}, patch map[string]interface{}) error {
	current, err := json.Marshal(record)
	if err != nil {
		return err
	}

	var merged map[string]interface{}
	if err := json.Unmarshal(current, &merged); err != nil {
		return err
	}

	for k, v := range patch {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(out, record)
}
