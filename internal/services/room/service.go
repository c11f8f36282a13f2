package room

import (
	"context"
	"errors"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/achievements"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/clock"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/logger"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/roomid"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/draw"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
	roomRepo "github.com/Yashavanth-L/tambola-next-lvl/internal/repositories/room"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/ticket"
)

// service implements the Service interface
type service struct {
	config    *Config
	roomRepo  roomRepo.Repository
	ticketGen ticket.Generator
	drawer    draw.Drawer
	clock     clock.Clock
	idGen     roomid.Generator
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.TicketGenerator == nil {
		return nil, ErrNilTicketGenerator
	}

	if cfg.Drawer == nil {
		return nil, ErrNilDrawer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}

	if cfg.MinPlayers == 0 {
		cfg.MinPlayers = 2
	}

	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 10
	}

	return &service{
		config:    cfg,
		roomRepo:  cfg.RoomRepo,
		ticketGen: cfg.TicketGenerator,
		drawer:    cfg.Drawer,
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
	}, nil
}

// CreateRoom creates a new room. The first listed player becomes the host
// and the expected player count is fixed at creation.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if len(input.PlayerNames) < s.config.MinPlayers {
		return nil, ErrTooFewPlayers
	}

	if len(input.PlayerNames) > s.config.MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	players := make(map[string]*models.Player, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if _, exists := players[name]; exists {
			return nil, ErrDuplicatePlayerName
		}
		players[name] = &models.Player{}
	}

	newRoom := &models.Room{
		ID:              s.idGen.NewID(),
		Host:            input.PlayerNames[0],
		ExpectedPlayers: len(input.PlayerNames),
		CalledNumbers:   []int{},
		Players:         players,
		Achievements:    &models.AchievementRecord{},
		CreatedAt:       s.clock.Now(),
	}

	err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: newRoom,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("room %s created for %d players, host %s", newRoom.ID, newRoom.ExpectedPlayers, newRoom.Host)

	return &CreateRoomOutput{
		RoomID: newRoom.ID,
		Room:   newRoom,
	}, nil
}

// GetRoom retrieves the current room document
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{
		Room: current,
	}, nil
}

// EnsurePlayerTicket lazily creates the player's ticket exactly once,
// recovering the mark grid for older player documents that lack one, and
// marks the player joined. Only the players field is written.
func (s *service) EnsurePlayerTicket(ctx context.Context, input *EnsurePlayerTicketInput) (*EnsurePlayerTicketOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	player, ok := current.Players[input.PlayerName]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	created, changed := s.ensureTicket(player)
	if changed {
		err = s.roomRepo.UpdatePlayers(ctx, &roomRepo.UpdatePlayersInput{
			RoomID:  current.ID,
			Players: current.Players,
		})
		if err != nil {
			return nil, err
		}
	}

	if created {
		logger.Infof("room %s: generated ticket for %s", current.ID, input.PlayerName)
	}

	return &EnsurePlayerTicketOutput{
		Ticket:  player.Ticket,
		Marked:  player.Marked,
		Created: created,
	}, nil
}

// CallNextNumber draws one number uniformly from those not yet called and
// appends it to the call sequence. Only the host may call, and not after
// the game is complete. Running out of numbers is a neutral result, not an
// error.
func (s *service) CallNextNumber(ctx context.Context, input *CallNextNumberInput) (*CallNextNumberOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if input.CallerName != current.Host {
		return nil, ErrNotHost
	}

	if current.Achievements.GameComplete {
		return nil, ErrGameComplete
	}

	called := make(map[int]bool, len(current.CalledNumbers))
	for _, n := range current.CalledNumbers {
		called[n] = true
	}

	remaining := make([]int, 0, models.MaxCallableNumber-len(called))
	for n := 1; n <= models.MaxCallableNumber; n++ {
		if !called[n] {
			remaining = append(remaining, n)
		}
	}

	if len(remaining) == 0 {
		return &CallNextNumberOutput{
			Exhausted:     true,
			CalledNumbers: current.CalledNumbers,
		}, nil
	}

	next := s.drawer.Pick(remaining)
	current.CalledNumbers = append(current.CalledNumbers, next)

	err = s.roomRepo.UpdateCalledNumbers(ctx, &roomRepo.UpdateCalledNumbersInput{
		RoomID:        current.ID,
		CalledNumbers: current.CalledNumbers,
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("room %s: called %d (%d/%d)", current.ID, next, len(current.CalledNumbers), models.MaxCallableNumber)

	return &CallNextNumberOutput{
		Number:        next,
		CalledNumbers: current.CalledNumbers,
	}, nil
}

// SyncPlayer runs one session cycle for a player: ensure the ticket exists,
// mark any newly called numbers, re-evaluate achievements, and persist the
// players and achievements fields only when they changed.
func (s *service) SyncPlayer(ctx context.Context, input *SyncPlayerInput) (*SyncPlayerOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	player, ok := current.Players[input.PlayerName]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	_, playersChanged := s.ensureTicket(player)

	marksChanged := ticket.ApplyCalledNumbers(*player.Ticket, player.Marked, current.CalledNumbers)
	playersChanged = playersChanged || marksChanged

	evalOut := achievements.Evaluate(&achievements.EvaluateInput{
		Ticket:       *player.Ticket,
		Marked:       *player.Marked,
		Record:       current.Achievements,
		PlayerName:   input.PlayerName,
		TotalPlayers: current.ExpectedPlayers,
	})

	if playersChanged {
		err = s.roomRepo.UpdatePlayers(ctx, &roomRepo.UpdatePlayersInput{
			RoomID:  current.ID,
			Players: current.Players,
		})
		if err != nil {
			return nil, err
		}
	}

	if evalOut.Changed {
		err = s.roomRepo.UpdateAchievements(ctx, &roomRepo.UpdateAchievementsInput{
			RoomID:       current.ID,
			Achievements: current.Achievements,
		})
		if err != nil {
			return nil, err
		}

		for _, kind := range evalOut.NewlyWon {
			logger.Infof("room %s: %s won %s", current.ID, input.PlayerName, kind)
		}
	}

	return &SyncPlayerOutput{
		Ticket:        player.Ticket,
		Marked:        player.Marked,
		CalledNumbers: current.CalledNumbers,
		LastCalled:    current.LastCalled(),
		Achievements:  current.Achievements,
		NewlyWon:      evalOut.NewlyWon,
		Changed:       playersChanged || evalOut.Changed,
	}, nil
}

func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return current, nil
}

// ensureTicket reports whether a ticket was created and whether the player
// entry changed at all (ticket creation, mark-grid recovery, or joining).
func (s *service) ensureTicket(player *models.Player) (created, changed bool) {
	if player.Ticket == nil {
		t := s.ticketGen.Generate()
		player.Ticket = &t
		player.Marked = &models.MarkGrid{}
		player.Joined = true
		return true, true
	}

	// Older player documents may predate the mark grid
	if player.Marked == nil {
		player.Marked = &models.MarkGrid{}
		changed = true
	}

	if !player.Joined {
		player.Joined = true
		changed = true
	}

	return false, changed
}
