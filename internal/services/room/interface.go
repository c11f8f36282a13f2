package room

import "context"

// Service defines the interface for room session operations
type Service interface {
	// CreateRoom creates a new room for the given players
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom retrieves the current room document
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// EnsurePlayerTicket lazily creates the player's ticket exactly once
	EnsurePlayerTicket(ctx context.Context, input *EnsurePlayerTicketInput) (*EnsurePlayerTicketOutput, error)

	// CallNextNumber draws the next number for the host
	CallNextNumber(ctx context.Context, input *CallNextNumberInput) (*CallNextNumberOutput, error)

	// SyncPlayer brings one player's marks and the room's achievements up
	// to date with the called numbers
	SyncPlayer(ctx context.Context, input *SyncPlayerInput) (*SyncPlayerOutput, error)
}
