package room

import (
	"github.com/Yashavanth-L/tambola-next-lvl/internal/achievements"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/clock"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/roomid"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/draw"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
	roomRepo "github.com/Yashavanth-L/tambola-next-lvl/internal/repositories/room"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/ticket"
)

// Config holds configuration for the room service
type Config struct {
	// Minimum number of players per room
	MinPlayers int

	// Maximum number of players per room
	MaxPlayers int

	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Service dependencies
	TicketGenerator ticket.Generator
	Drawer          draw.Drawer
	Clock           clock.Clock
	IDGenerator     roomid.Generator
}

// CreateRoomInput contains parameters for creating a new room
type CreateRoomInput struct {
	// PlayerNames are the participants; the first name becomes the host
	PlayerNames []string
}

// CreateRoomOutput contains the result of creating a new room
type CreateRoomOutput struct {
	// RoomID is the unique identifier for the created room
	RoomID string

	// Room is the created room document
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	// RoomID is the unique identifier for the room
	RoomID string
}

// GetRoomOutput contains the retrieved room
type GetRoomOutput struct {
	// Room is the retrieved room document
	Room *models.Room
}

// EnsurePlayerTicketInput contains parameters for ensuring a player's ticket
type EnsurePlayerTicketInput struct {
	// RoomID is the unique identifier for the room
	RoomID string

	// PlayerName is the player whose ticket to ensure
	PlayerName string
}

// EnsurePlayerTicketOutput contains the player's up-to-date ticket state
type EnsurePlayerTicketOutput struct {
	// Ticket is the player's ticket
	Ticket *models.Ticket

	// Marked is the player's mark grid
	Marked *models.MarkGrid

	// Created indicates whether a new ticket was generated by this call
	Created bool
}

// CallNextNumberInput contains parameters for calling the next number
type CallNextNumberInput struct {
	// RoomID is the unique identifier for the room
	RoomID string

	// CallerName is the player attempting the call; must be the host
	CallerName string
}

// CallNextNumberOutput contains the result of calling a number
type CallNextNumberOutput struct {
	// Number is the called number, 0 when exhausted
	Number int

	// Exhausted indicates all 90 numbers have already been called
	Exhausted bool

	// CalledNumbers is the full call sequence after this call
	CalledNumbers []int
}

// SyncPlayerInput contains parameters for syncing one player's session
type SyncPlayerInput struct {
	// RoomID is the unique identifier for the room
	RoomID string

	// PlayerName is the player to sync
	PlayerName string
}

// SyncPlayerOutput contains one player's refreshed view of the room
type SyncPlayerOutput struct {
	// Ticket is the player's ticket
	Ticket *models.Ticket

	// Marked is the player's mark grid after applying called numbers
	Marked *models.MarkGrid

	// CalledNumbers is the room's call sequence
	CalledNumbers []int

	// LastCalled is the most recently called number, 0 when none
	LastCalled int

	// Achievements is the room's achievement record after evaluation
	Achievements *models.AchievementRecord

	// NewlyWon lists achievements this player won during this sync
	NewlyWon []achievements.Kind

	// Changed indicates whether anything was persisted
	Changed bool
}
