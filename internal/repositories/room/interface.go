package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Yashavanth-L/tambola-next-lvl/internal/repositories/room Repository

import (
	"context"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

// Repository defines the interface for room document persistence. SaveRoom
// overwrites the whole document and is used only at room creation; the
// Update methods merge a single top-level field without touching siblings.
// There is no locking or compare-and-set: concurrent sessions writing the
// same field last-writer-win, so achievement "first wins" is best-effort.
type Repository interface {
	// SaveRoom persists a full room document
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// UpdateCalledNumbers replaces only the called-numbers field
	UpdateCalledNumbers(ctx context.Context, input *UpdateCalledNumbersInput) error

	// UpdatePlayers replaces only the players field
	UpdatePlayers(ctx context.Context, input *UpdatePlayersInput) error

	// UpdateAchievements replaces only the achievements field
	UpdateAchievements(ctx context.Context, input *UpdateAchievementsInput) error
}
