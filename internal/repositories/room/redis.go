package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	roomKeyPrefix = "room:"

	// Hash fields, one per top-level document field
	fieldHost            = "host"
	fieldExpectedPlayers = "expected_players"
	fieldCalledNumbers   = "called_numbers"
	fieldPlayers         = "players"
	fieldAchievements    = "achievements"
	fieldCreatedAt       = "created_at"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis. Each room
// is a hash with one field per top-level document field, so partial updates
// touch only their own field.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom persists a full room document to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	fields, err := encodeFields(map[string]interface{}{
		fieldHost:            input.Room.Host,
		fieldExpectedPlayers: input.Room.ExpectedPlayers,
		fieldCalledNumbers:   input.Room.CalledNumbers,
		fieldPlayers:         input.Room.Players,
		fieldAchievements:    input.Room.Achievements,
		fieldCreatedAt:       input.Room.CreatedAt,
	})
	if err != nil {
		return err
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	if err := r.client.HSet(ctx, roomKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	fields, err := r.client.HGetAll(ctx, roomKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	// HGETALL returns an empty map for a missing key
	if len(fields) == 0 {
		return nil, ErrRoomNotFound
	}

	room := &models.Room{
		ID:           input.RoomID,
		Players:      map[string]*models.Player{},
		Achievements: &models.AchievementRecord{},
	}

	for field, dest := range map[string]interface{}{
		fieldHost:            &room.Host,
		fieldExpectedPlayers: &room.ExpectedPlayers,
		fieldCalledNumbers:   &room.CalledNumbers,
		fieldPlayers:         &room.Players,
		fieldAchievements:    &room.Achievements,
		fieldCreatedAt:       &room.CreatedAt,
	} {
		raw, ok := fields[field]
		if !ok {
			// Older rooms may lack achievements or created_at
			continue
		}
		if err := json.Unmarshal([]byte(raw), dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room field %s: %w", field, err)
		}
	}

	if room.Players == nil {
		room.Players = map[string]*models.Player{}
	}

	if room.Achievements == nil {
		room.Achievements = &models.AchievementRecord{}
	}

	return room, nil
}

// UpdateCalledNumbers replaces only the called-numbers field
func (r *redisRepository) UpdateCalledNumbers(ctx context.Context, input *UpdateCalledNumbersInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateField(ctx, input.RoomID, fieldCalledNumbers, input.CalledNumbers)
}

// UpdatePlayers replaces only the players field
func (r *redisRepository) UpdatePlayers(ctx context.Context, input *UpdatePlayersInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	return r.updateField(ctx, input.RoomID, fieldPlayers, input.Players)
}

// UpdateAchievements replaces only the achievements field
func (r *redisRepository) UpdateAchievements(ctx context.Context, input *UpdateAchievementsInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	if input.Achievements == nil {
		return errors.New("achievements cannot be nil")
	}

	return r.updateField(ctx, input.RoomID, fieldAchievements, input.Achievements)
}

func (r *redisRepository) updateField(ctx context.Context, roomID, field string, value interface{}) error {
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, roomID)

	exists, err := r.client.Exists(ctx, roomKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check room: %w", err)
	}
	if exists == 0 {
		return ErrRoomNotFound
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal room field %s: %w", field, err)
	}

	if err := r.client.HSet(ctx, roomKey, field, raw).Err(); err != nil {
		return fmt.Errorf("failed to update room field %s: %w", field, err)
	}

	return nil
}

func encodeFields(values map[string]interface{}) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(values))
	for field, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal room field %s: %w", field, err)
		}
		fields[field] = string(raw)
	}
	return fields, nil
}
