package domain

import "time"

// Deck is a card deck owned by one account.
type Deck struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	CardCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Spread is a card layout owned by one account. Positions are the named
// slots of the layout, in order.
type Spread struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Positions   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardDraw is a single card drawn in a reading.
type CardDraw struct {
	Position string `json:"position,omitempty"`
	Card     string `json:"card"`
	Reversed bool   `json:"reversed,omitempty"`
}

// Reading is one journal entry. QuerentID, DeckID and SpreadID reference
// optional entities; there is no foreign-key enforcement across owners, so
// services validate references on write.
type Reading struct {
	ID             string
	OwnerID        string
	Title          string
	Question       string
	Interpretation string
	QuerentID      string
	DeckID         string
	SpreadID       string
	Cards          []CardDraw
	ReadAt         time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
