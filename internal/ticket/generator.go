package ticket

import (
	"math/rand"
	"time"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/Yashavanth-L/tambola-next-lvl/internal/ticket Generator

// Generator produces fresh random tickets.
type Generator interface {
	// Generate returns a new valid ticket
	Generate() models.Ticket
}

// Config for the ticket generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomGenerator implements Generator with a private rand source
type randomGenerator struct {
	random *rand.Rand
}

// New creates a new ticket generator
func New(cfg *Config) *randomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &randomGenerator{
		random: rand.New(source),
	}
}

// ColumnBand returns the inclusive range of numbers column c may hold.
func ColumnBand(c int) (low, high int) {
	switch c {
	case 0:
		return 1, 9
	case models.TicketCols - 1:
		return 80, 90
	default:
		return c * 10, c*10 + 9
	}
}

// Generate builds a ticket by shuffling each column's band, picking 5
// columns per row, and filling each column's chosen rows from its pool.
// Every random choice admits a feasible assignment: a column is never
// asked for more numbers than its band holds, and numbers only land in
// rows that chose the column.
func (g *randomGenerator) Generate() models.Ticket {
	// Shuffled pool per column; draw order across the ticket.
	var pools [models.TicketCols][]int
	for c := 0; c < models.TicketCols; c++ {
		low, high := ColumnBand(c)
		pool := make([]int, 0, high-low+1)
		for n := low; n <= high; n++ {
			pool = append(pool, n)
		}
		g.random.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		pools[c] = pool
	}

	// Each row independently picks 5 of the 9 columns.
	var chosen [models.TicketRows][models.TicketCols]bool
	for r := 0; r < models.TicketRows; r++ {
		for _, c := range g.random.Perm(models.TicketCols)[:models.NumbersPerRow] {
			chosen[r][c] = true
		}
	}

	var t models.Ticket
	for c := 0; c < models.TicketCols; c++ {
		fill := 0
		for r := 0; r < models.TicketRows; r++ {
			if chosen[r][c] {
				fill++
			}
		}

		for i := 0; i < fill; i++ {
			candidates := make([]int, 0, models.TicketRows)
			for r := 0; r < models.TicketRows; r++ {
				if chosen[r][c] && t[r][c] == 0 {
					candidates = append(candidates, r)
				}
			}
			row := candidates[g.random.Intn(len(candidates))]

			pool := pools[c]
			t[row][c] = pool[len(pool)-1]
			pools[c] = pool[:len(pool)-1]
		}
	}

	return t
}
