package room

import "github.com/Yashavanth-L/tambola-next-lvl/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type UpdateCalledNumbersInput struct {
	RoomID        string
	CalledNumbers []int
}

type UpdatePlayersInput struct {
	RoomID  string
	Players map[string]*models.Player
}

type UpdateAchievementsInput struct {
	RoomID       string
	Achievements *models.AchievementRecord
}
