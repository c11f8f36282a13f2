package models

// AchievementRecord tracks the room's milestone winners. Single-winner
// fields are write-once; FullHousieWinners is append-only in completion
// order. Writes race best-effort across player sessions (last writer wins
// at the store), so "first" is as observed by the persistence layer.
type AchievementRecord struct {
	// First5 names the first player to mark any 5 numbers
	First5 string `json:"first5,omitempty"`

	// Corners names the first player to mark all four corner cells
	Corners string `json:"corners,omitempty"`

	// FirstLine, SecondLine and LastLine name the first player to mark
	// every number in the respective row
	FirstLine  string `json:"firstline,omitempty"`
	SecondLine string `json:"secondline,omitempty"`
	LastLine   string `json:"lastline,omitempty"`

	// FullHousieWinners ranks players by full-ticket completion order;
	// a name appears at most once
	FullHousieWinners []string `json:"fullhousie_winners,omitempty"`

	// GameComplete is set once all but one player have a full housie;
	// the host must stop calling numbers once true
	GameComplete bool `json:"game_complete,omitempty"`
}

// HasFullHousie reports whether the player already appears in the ranked
// full-housie list.
func (a *AchievementRecord) HasFullHousie(playerName string) bool {
	for _, name := range a.FullHousieWinners {
		if name == playerName {
			return true
		}
	}
	return false
}
