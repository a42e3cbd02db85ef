package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortNotes_PinnedFirstThenNewest(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	notes := []Note{
		{ID: "a", IsPinned: true, CreatedOn: t1},
		{ID: "b", IsPinned: false, CreatedOn: t3},
		{ID: "c", IsPinned: true, CreatedOn: t2},
	}

	SortNotes(notes)

	ids := []string{notes[0].ID, notes[1].ID, notes[2].ID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestSortNotes_TieBrokenByID(t *testing.T) {
	ts := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	notes := []Note{
		{ID: "0192-b", CreatedOn: ts},
		{ID: "0192-a", CreatedOn: ts},
		{ID: "0192-c", CreatedOn: ts},
	}

	SortNotes(notes)

	assert.Equal(t, "0192-a", notes[0].ID)
	assert.Equal(t, "0192-b", notes[1].ID)
	assert.Equal(t, "0192-c", notes[2].ID)
}

func TestCompareNotes(t *testing.T) {
	ts := time.Now()

	tests := []struct {
		name string
		a, b Note
		want int
	}{
		{"pinned before unpinned", Note{ID: "z", IsPinned: true, CreatedOn: ts}, Note{ID: "a", CreatedOn: ts.Add(time.Hour)}, -1},
		{"unpinned after pinned", Note{ID: "a"}, Note{ID: "b", IsPinned: true}, 1},
		{"newer first", Note{ID: "a", CreatedOn: ts.Add(time.Minute)}, Note{ID: "b", CreatedOn: ts}, -1},
		{"equal", Note{ID: "a", CreatedOn: ts}, Note{ID: "a", CreatedOn: ts}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareNotes(tt.a, tt.b))
		})
	}
}
