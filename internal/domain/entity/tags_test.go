package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TagList
	}{
		{name: "duplicates kept in order", raw: "a, b, b", want: TagList{"a", "b", "b"}},
		{name: "empty string", raw: "", want: TagList{}},
		{name: "trailing comma", raw: "go, web,", want: TagList{"go", "web"}},
		{name: "blank segments", raw: " ,  , x ", want: TagList{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestTagList_UnmarshalJSON(t *testing.T) {
	var req struct {
		Tags TagList `json:"tags"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"tags":"a, b, b"}`), &req))
	assert.Equal(t, TagList{"a", "b", "b"}, req.Tags)

	req.Tags = nil
	require.NoError(t, json.Unmarshal([]byte(`{"tags":[" go ","web"]}`), &req))
	assert.Equal(t, TagList{"go", "web"}, req.Tags)

	req.Tags = nil
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.Tags)

	assert.Error(t, json.Unmarshal([]byte(`{"tags":42}`), &req))
}
