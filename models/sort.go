package models

import (
	"slices"
	"strings"
)

// CompareNotes orders notes the way every list is presented:
// pinned notes first, then newest CreatedOn first, ties broken by ID
// in ascending lexical order.
func CompareNotes(a, b Note) int {
	if a.IsPinned != b.IsPinned {
		if a.IsPinned {
			return -1
		}
		return 1
	}
	if c := b.CreatedOn.Compare(a.CreatedOn); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortNotes sorts notes in place using CompareNotes.
func SortNotes(notes []Note) {
	slices.SortStableFunc(notes, CompareNotes)
}
