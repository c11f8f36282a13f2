package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/achievements"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/clock"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/logger"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/roomid"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/config"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/draw"
	roomRepo "github.com/Yashavanth-L/tambola-next-lvl/internal/repositories/room"
	roomService "github.com/Yashavanth-L/tambola-next-lvl/internal/services/room"
	"github.com/Yashavanth-L/tambola-next-lvl/internal/ticket"
)

// Headless host runner: creates a room for the players named on the command
// line, then calls numbers on an interval and syncs every player until the
// game completes or the pool is exhausted.
func main() {
	playerNames := os.Args[1:]
	if len(playerNames) < 2 {
		logger.Error("usage: tambola <host-name> <player-name> [player-name...]")
		os.Exit(1)
	}

	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Errorf("failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	repo, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Errorf("failed to create room repository: %v", err)
		os.Exit(1)
	}

	svc, err := roomService.New(&roomService.Config{
		RoomRepo:        repo,
		TicketGenerator: ticket.New(&ticket.Config{}),
		Drawer:          draw.New(&draw.Config{}),
		Clock:           &clock.DefaultClock{},
		IDGenerator:     roomid.New(),
	})
	if err != nil {
		logger.Errorf("failed to create room service: %v", err)
		os.Exit(1)
	}

	created, err := svc.CreateRoom(context.Background(), &roomService.CreateRoomInput{
		PlayerNames: playerNames,
	})
	if err != nil {
		logger.Errorf("failed to create room: %v", err)
		os.Exit(1)
	}

	host := created.Room.Host
	logger.Infof("room %s ready, join as any of %v", created.RoomID, playerNames)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	ticker := time.NewTicker(cfg.CallInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sc:
			logger.Info("shutting down")
			return
		case <-ticker.C:
			callOut, err := svc.CallNextNumber(context.Background(), &roomService.CallNextNumberInput{
				RoomID:     created.RoomID,
				CallerName: host,
			})
			if err != nil {
				if err == roomService.ErrGameComplete {
					logger.Infof("room %s: game over", created.RoomID)
					return
				}
				logger.Errorf("call failed: %v", err)
				return
			}

			if callOut.Exhausted {
				logger.Infof("room %s: no more numbers to call", created.RoomID)
				return
			}

			for _, name := range playerNames {
				syncOut, err := svc.SyncPlayer(context.Background(), &roomService.SyncPlayerInput{
					RoomID:     created.RoomID,
					PlayerName: name,
				})
				if err != nil {
					logger.Errorf("sync failed for %s: %v", name, err)
					return
				}

				for _, kind := range syncOut.NewlyWon {
					if kind == achievements.KindFullHousie {
						place := achievements.Ordinal(len(syncOut.Achievements.FullHousieWinners))
						logger.Infof("%s takes %s place in full housie", name, place)
					} else {
						logger.Infof("%s wins %s", name, kind)
					}
				}
			}
		}
	}
}
