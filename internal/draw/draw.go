package draw

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_drawer.go github.com/Yashavanth-L/tambola-next-lvl/internal/draw Drawer

// Drawer picks the next number to call from the remaining pool.
type Drawer interface {
	// Pick returns one element of candidates chosen uniformly at random.
	// candidates must be non-empty.
	Pick(candidates []int) int
}

// Config for the drawer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomDrawer implements Drawer with a private rand source
type randomDrawer struct {
	random *rand.Rand
}

// New creates a new drawer
func New(cfg *Config) *randomDrawer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &randomDrawer{
		random: rand.New(source),
	}
}

// Pick returns a uniformly random element of candidates.
func (d *randomDrawer) Pick(candidates []int) int {
	return candidates[d.random.Intn(len(candidates))]
}
