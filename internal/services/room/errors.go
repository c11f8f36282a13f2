package room

// RoomError is a custom error type for room-related errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound        RoomError = "room not found"
	ErrPlayerNotFound      RoomError = "player not found"
	ErrNotHost             RoomError = "only the host can call numbers"
	ErrGameComplete        RoomError = "game is complete"
	ErrTooFewPlayers       RoomError = "room needs at least two players"
	ErrTooManyPlayers      RoomError = "room is at maximum capacity"
	ErrEmptyPlayerName     RoomError = "player name cannot be empty"
	ErrDuplicatePlayerName RoomError = "player names must be unique"
	ErrNilConfig           RoomError = "config cannot be nil"
	ErrNilRoomRepo         RoomError = "room repository cannot be nil"
	ErrNilTicketGenerator  RoomError = "ticket generator cannot be nil"
	ErrNilDrawer           RoomError = "number drawer cannot be nil"
	ErrNilClock            RoomError = "clock cannot be nil"
	ErrNilIDGenerator      RoomError = "room ID generator cannot be nil"
)
