package entity

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// TagList accepts either a comma separated string or an array of strings when decoded from JSON.
// A nil TagList means the field was absent.
type TagList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TagList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*t = ParseTags(raw)

		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}

	parsed := make(TagList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			parsed = append(parsed, trimmed)
		}
	}
	*t = parsed

	return nil
}

// ParseTags splits a comma separated list, trimming every segment.
// Empty segments are dropped; duplicates and order are kept.
func ParseTags(raw string) TagList {
	tags := TagList{}
	for segment := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	return tags
}
