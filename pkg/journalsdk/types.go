package journalsdk

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for an access token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a bearer access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Admin     bool   `json:"admin,omitempty"`
	CreatedAt string `json:"created_at"`

	// Deletion status, present once a deletion has been requested.
	PendingDeletion bool   `json:"pending_deletion,omitempty"`
	PurgeDate       string `json:"purge_date,omitempty"`
}

// TagRequest creates or resolves a tag. Global tags may only be created by
// admins.
type TagRequest struct {
	Name   string `json:"name"`
	Global bool   `json:"global,omitempty"`
}

// TagResponse is the public view of a tag.
type TagResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Global bool   `json:"global,omitempty"`
}

// QuerentRequest creates or updates a querent.
type QuerentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// QuerentResponse is the public view of a querent.
type QuerentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Global      bool   `json:"global,omitempty"`
}

// DeckRequest creates or updates a deck.
type DeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CardCount   int    `json:"card_count,omitempty"`
}

// DeckResponse is the public view of a deck.
type DeckResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CardCount   int    `json:"card_count,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// SpreadRequest creates or updates a spread layout.
type SpreadRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Positions   []string `json:"positions"`
}

// SpreadResponse is the public view of a spread.
type SpreadResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Positions   []string `json:"positions"`
	CreatedAt   string   `json:"created_at"`
}

// CardDraw is a single card drawn in a reading.
type CardDraw struct {
	Position string `json:"position,omitempty"`
	Card     string `json:"card"`
	Reversed bool   `json:"reversed,omitempty"`
}

// ReadingRequest creates or updates a reading. Querent may be a querent id
// or the literal "self" for the shared Self querent. Tags are free-form
// names, resolved (and created when missing) on write.
type ReadingRequest struct {
	Title          string     `json:"title,omitempty"`
	Question       string     `json:"question,omitempty"`
	Interpretation string     `json:"interpretation,omitempty"`
	Querent        string     `json:"querent,omitempty"`
	DeckID         string     `json:"deck_id,omitempty"`
	SpreadID       string     `json:"spread_id,omitempty"`
	Cards          []CardDraw `json:"cards,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	ReadAt         string     `json:"read_at,omitempty"`
}

// ReadingResponse is the public view of a reading.
type ReadingResponse struct {
	ID             string        `json:"id"`
	Title          string        `json:"title,omitempty"`
	Question       string        `json:"question,omitempty"`
	Interpretation string        `json:"interpretation,omitempty"`
	QuerentID      string        `json:"querent_id,omitempty"`
	DeckID         string        `json:"deck_id,omitempty"`
	SpreadID       string        `json:"spread_id,omitempty"`
	Cards          []CardDraw    `json:"cards,omitempty"`
	Tags           []TagResponse `json:"tags,omitempty"`
	ReadAt         string        `json:"read_at,omitempty"`
	CreatedAt      string        `json:"created_at"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
