package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRequest_Truthiness(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"seen": true}`, true},
		{`{"seen": false}`, false},
		{`{"seen": null}`, false},
		{`{}`, false},
		{`{"seen": 0}`, false},
		{`{"seen": 1}`, true},
		{`{"seen": -0.5}`, true},
		{`{"seen": ""}`, false},
		{`{"seen": "no"}`, true},
		{`{"seen": []}`, true},
		{`{"seen": {}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req SeenRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, bool(req.Seen))
		})
	}
}

func TestTruthy_InvalidNumber(t *testing.T) {
	var req SeenRequest
	err := json.Unmarshal([]byte(`{"seen": 1e999999}`), &req)
	assert.Error(t, err)
}

func TestNoteUpdate_HasChanges(t *testing.T) {
	var empty NoteUpdate
	assert.False(t, empty.HasChanges())

	var withEmptyTags NoteUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"tags": []}`), &withEmptyTags))
	assert.True(t, withEmptyTags.HasChanges())

	var pinOnly NoteUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"isPinned": true}`), &pinOnly))
	assert.False(t, pinOnly.HasChanges())

	assert.True(t, NoteUpdate{Title: "t"}.HasChanges())
}

func TestNote_CloneCopiesTags(t *testing.T) {
	n := Note{ID: "1", Tags: []string{"a"}}
	c := n.Clone()
	c.Tags[0] = "b"
	assert.Equal(t, "a", n.Tags[0])
}

func TestNotePatch_IsEmpty(t *testing.T) {
	pinned := true

	assert.True(t, NotePatch{}.IsEmpty())
	assert.False(t, NotePatch{IsPinned: &pinned}.IsEmpty())
}
