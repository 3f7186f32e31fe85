// Package model defines the lead record and the document shape that wraps it.
package model

import (
	"time"
)

// Lead represents one contact record subject to deduplication.
// The display fields are opaque: they are carried through unchanged and
// never compared. Identity for uniqueness purposes is the (_id, email) pair.
type Lead struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	EntryDate time.Time `json:"entryDate"`

	// position is the zero-based index of the record in the input sequence.
	// Derived once at load time, used only for tie-breaking, never serialized.
	position int
}

// AtPosition returns a copy of the lead with its input position set.
func (l Lead) AtPosition(pos int) Lead {
	l.position = pos
	return l
}

// Position returns the lead's zero-based index in the input sequence.
func (l Lead) Position() int {
	return l.position
}

// Complete reports whether the lead has both an id and an email.
// Incomplete leads cannot participate in uniqueness and are excluded
// from resolution.
func (l Lead) Complete() bool {
	return l.ID != "" && l.Email != ""
}

// Document is the file-level shape wrapping an ordered lead sequence.
type Document struct {
	Leads []Lead `json:"leads"`
}
