package domain

import (
	"strings"
	"time"
)

// GlobalOwner is the owner id of shared reference entities. The empty
// string (rather than NULL) keeps the (name_lower, owner_id) unique index
// effective for global rows.
const GlobalOwner = ""

// SelfQuerentName is the shared querent representing the journal owner.
const SelfQuerentName = "Self"

// NormalizeName produces the case-folded key used for uniqueness checks on
// tags and querents.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Tag labels readings. A tag is either global (OwnerID == GlobalOwner),
// visible to everyone, or personal to one account. The pair
// (NameLower, OwnerID) is unique.
type Tag struct {
	ID        string
	Name      string
	NameLower string
	OwnerID   string
	CreatedAt time.Time
}

// Global reports whether the tag is shared rather than personal.
func (t Tag) Global() bool { return t.OwnerID == GlobalOwner }

// Querent is the person a reading is performed for. The shared "Self"
// querent (OwnerID == GlobalOwner) stands in for the journal owner; other
// querents are personal to one account.
type Querent struct {
	ID          string
	Name        string
	NameLower   string
	OwnerID     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Global reports whether the querent is shared rather than personal.
func (q Querent) Global() bool { return q.OwnerID == GlobalOwner }
