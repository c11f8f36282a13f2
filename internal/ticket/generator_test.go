package ticket

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/models"
)

func TestColumnBand(t *testing.T) {
	low, high := ColumnBand(0)
	require.Equal(t, 1, low)
	require.Equal(t, 9, high)

	low, high = ColumnBand(4)
	require.Equal(t, 40, low)
	require.Equal(t, 49, high)

	low, high = ColumnBand(8)
	require.Equal(t, 80, low)
	require.Equal(t, 90, high)
}

func TestGenerateProducesValidTicket(t *testing.T) {
	gen := New(&Config{Seed: 42})

	ticket := gen.Generate()
	requireValidTicket(t, ticket)
}

// Generation must never produce an invalid ticket or run a column's pool
// dry, whatever the random choices land on.
func TestGenerateAlwaysValid(t *testing.T) {
	gen := New(&Config{Seed: 1})

	for i := 0; i < 10000; i++ {
		requireValidTicket(t, gen.Generate())
	}
}

func TestGenerateVariesAcrossCalls(t *testing.T) {
	gen := New(&Config{Seed: 7})

	first := gen.Generate()
	second := gen.Generate()
	require.NotEqual(t, first, second)
}

func requireValidTicket(t *testing.T, ticket models.Ticket) {
	t.Helper()

	total := 0
	seen := map[int]bool{}

	for r := 0; r < models.TicketRows; r++ {
		rowCount := 0
		for c := 0; c < models.TicketCols; c++ {
			val := ticket[r][c]
			if val == 0 {
				continue
			}

			rowCount++
			total++

			low, high := ColumnBand(c)
			require.GreaterOrEqual(t, val, low, "value %d out of band for column %d", val, c)
			require.LessOrEqual(t, val, high, "value %d out of band for column %d", val, c)

			require.False(t, seen[val], "value %d repeated on ticket", val)
			seen[val] = true
		}
		require.Equal(t, models.NumbersPerRow, rowCount, "row %d must hold exactly 5 numbers", r)
	}

	require.Equal(t, models.TicketNumbers, total)

	for c := 0; c < models.TicketCols; c++ {
		colCount := 0
		for r := 0; r < models.TicketRows; r++ {
			if ticket[r][c] != 0 {
				colCount++
			}
		}
		require.LessOrEqual(t, colCount, models.TicketRows, "column %d overfilled", c)
	}
}
