package models

import (
	"time"
)

// Room is the persistent per-room document. Metadata is immutable after
// creation; CalledNumbers is append-only, Players grow tickets and marks
// lazily, and Achievements fills monotonically.
type Room struct {
	// ID is the 6-character uppercase room identifier
	ID string `json:"-"`

	// Host is the player designated as the number-caller
	Host string `json:"host"`

	// ExpectedPlayers is the player count fixed at creation
	ExpectedPlayers int `json:"expected_players"`

	// CalledNumbers holds the drawn numbers in call order
	CalledNumbers []int `json:"called_numbers"`

	// Players maps player name to that player's state
	Players map[string]*Player `json:"players"`

	// Achievements is the room's achievement record
	Achievements *AchievementRecord `json:"achievements"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"created_at"`
}

// Player represents one participant's state within a room.
type Player struct {
	// Joined is set true on the player's first successful ticket access
	Joined bool `json:"joined"`

	// Ticket is created lazily on first access, then immutable in shape
	Ticket *Ticket `json:"ticket,omitempty"`

	// Marked mirrors the ticket; a cell may only be true when the ticket
	// cell holds a called number
	Marked *MarkGrid `json:"marked,omitempty"`
}

// LastCalled returns the most recently called number, or 0 when no number
// has been called yet.
func (r *Room) LastCalled() int {
	if len(r.CalledNumbers) == 0 {
		return 0
	}
	return r.CalledNumbers[len(r.CalledNumbers)-1]
}
