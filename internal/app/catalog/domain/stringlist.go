package domain

import (
	"encoding/json"
	"strings"
)

// StringList is an ordered list of strings that accepts either a JSON
// array or a single comma-delimited string when unmarshaling. Tag and
// size fields arrive in both shapes from admin forms.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = SplitList(single)
	return nil
}

// SplitList normalizes a comma-delimited string into a trimmed list,
// dropping empty entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
